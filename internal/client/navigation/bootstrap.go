package navigation

import "context"

// State is the session state the app starts in.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// TokenGetter is the read side of the token store.
type TokenGetter interface {
	Token(ctx context.Context) (token string, ok bool, err error)
}

// Bootstrap picks the initial route from the presence of a stored token.
// It never touches the network. A storage failure yields the signed-out flow
// together with the error.
func Bootstrap(ctx context.Context, tokens TokenGetter) (State, Route, error) {
	_, ok, err := tokens.Token(ctx)
	if err != nil {
		return Unauthenticated, To(Login), err
	}
	if ok {
		return Authenticated, To(MainTabs), nil
	}
	return Unauthenticated, To(Login), nil
}

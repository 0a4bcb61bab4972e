package navigation

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrijs2005/genfit/internal/logging"
)

// Navigator is the screen stack. It starts on Splash until Start runs the
// bootstrap check, which happens once per Navigator.
type Navigator struct {
	tokens TokenGetter
	log    logging.Logger

	once sync.Once

	mu    sync.Mutex
	stack []Route
	tab   Tab
	state State
}

func NewNavigator(tokens TokenGetter, log logging.Logger) *Navigator {
	if log == nil {
		log = logging.Nop()
	}
	return &Navigator{
		tokens: tokens,
		log:    log.With("component", "navigation"),
		stack:  []Route{To(Splash)},
		tab:    TabHome,
	}
}

// Start runs Bootstrap on the first call and replaces the stack with the
// chosen route. Later calls only report the current state.
func (n *Navigator) Start(ctx context.Context) (Route, State) {
	n.once.Do(func() {
		state, route, err := Bootstrap(ctx, n.tokens)
		if err != nil {
			n.log.Error(ctx, "bootstrap: token lookup failed", "error", err)
		}
		n.log.Info(ctx, "bootstrap", "state", state.String(), "route", route.String())

		n.mu.Lock()
		n.state = state
		n.stack = []Route{route}
		n.tab = TabHome
		n.mu.Unlock()
	})
	return n.Current(), n.State()
}

// Current returns the top of the stack.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the stack, bottom first.
func (n *Navigator) Stack() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.stack)
}

func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Tab returns the selected MainTabs tab.
func (n *Navigator) Tab() Tab {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.tab
}

// Navigate pushes r. Navigating to the current screen with equal parameters
// is a no-op.
func (n *Navigator) Navigate(r Route) error {
	if err := r.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	top := n.stack[len(n.stack)-1]
	if reflect.DeepEqual(top, r) {
		return nil
	}
	n.stack = append(n.stack, r)
	return nil
}

// Reset replaces the whole stack with r.
func (n *Navigator) Reset(r Route) error {
	if err := r.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = []Route{r}
	if r.Name == MainTabs {
		n.tab = TabHome
	}
	return nil
}

// Back pops the stack; it reports false when already at the root.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// SelectTab switches tabs; it is only allowed while MainTabs is on top.
func (n *Navigator) SelectTab(t Tab) error {
	if !slices.Contains(Tabs, t) {
		return fmt.Errorf("%w: unknown tab %q", ErrInvalidRoute, t)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stack[len(n.stack)-1].Name != MainTabs {
		return fmt.Errorf("%w: tabs are only reachable from %s", ErrInvalidRoute, MainTabs)
	}
	n.tab = t
	return nil
}

// SignIn marks the session authenticated and resets the stack to next.
func (n *Navigator) SignIn(next Route) error {
	if err := n.Reset(next); err != nil {
		return err
	}
	n.mu.Lock()
	n.state = Authenticated
	n.mu.Unlock()
	return nil
}

// SignOut marks the session unauthenticated and resets the stack to Login.
func (n *Navigator) SignOut() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = Unauthenticated
	n.stack = []Route{To(Login)}
	n.tab = TabHome
}

package viewmodel

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/common"
)

type fakeSession struct {
	token    string
	userID   string
	beginErr  error
	endErr    error
	userIDErr error
}

func (f *fakeSession) Token(context.Context) (string, bool, error) {
	return f.token, f.token != "", nil
}

func (f *fakeSession) Begin(_ context.Context, token, userID string) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.token, f.userID = token, userID
	return nil
}

func (f *fakeSession) End(context.Context) error {
	if f.endErr != nil {
		return f.endErr
	}
	f.token, f.userID = "", ""
	return nil
}

func (f *fakeSession) UserID(context.Context) (string, error) {
	if f.userIDErr != nil {
		return "", f.userIDErr
	}
	if f.userID != "" {
		return f.userID, nil
	}
	if f.token == "" {
		return "", common.ErrNoToken
	}
	return "", common.ErrNoUserID
}

type fakeNav struct {
	stack    []navigation.Route
	signedIn bool
}

func (f *fakeNav) Navigate(r navigation.Route) error {
	if err := r.Validate(); err != nil {
		return err
	}
	f.stack = append(f.stack, r)
	return nil
}

func (f *fakeNav) Reset(r navigation.Route) error {
	f.stack = []navigation.Route{r}
	return nil
}

func (f *fakeNav) SignIn(r navigation.Route) error {
	f.signedIn = true
	return f.Reset(r)
}

func (f *fakeNav) SignOut() {
	f.signedIn = false
	f.stack = []navigation.Route{navigation.To(navigation.Login)}
}

func (f *fakeNav) current() navigation.Name {
	if len(f.stack) == 0 {
		return ""
	}
	return f.stack[len(f.stack)-1].Name
}

type fakeAPI struct {
	mu sync.Mutex

	user    *models.User
	meErr   error
	meGate  chan struct{}
	meCalls int

	auth        *models.AuthResult
	authErr     error
	lastLogin   [2]string
	lastReg     *models.RegisterRequest
	registered  int
	submitErr   error
	submittedID string
	submitted   *models.UserDetail
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	f.mu.Lock()
	f.meCalls++
	gate := f.meGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.meErr != nil {
		return nil, f.meErr
	}
	u := *f.user
	return &u, nil
}

func (f *fakeAPI) Login(_ context.Context, identifier, password string) (*models.AuthResult, error) {
	f.lastLogin = [2]string{identifier, password}
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.auth, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	f.registered++
	f.lastReg = &req
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.auth, nil
}

func (f *fakeAPI) SubmitUserDetail(_ context.Context, userID string, d models.UserDetail) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submittedID = userID
	f.submitted = &d
	return nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.meCalls
}

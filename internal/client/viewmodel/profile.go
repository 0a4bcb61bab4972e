package viewmodel

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/genfit/internal/client/bmi"
	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

// MsgNoUserData is shown when the account has no onboarding record yet.
const MsgNoUserData = "No user data available"

// ProfileData is the user card of the Home and Application screens.
type ProfileData struct {
	User models.User

	// HasInformation is false until the onboarding record exists.
	HasInformation bool

	// HasBMI is false when height or weight is missing.
	HasBMI bool
	BMI    float64
	Status bmi.Status
}

// Profile loads the signed-in user on mount.
type Profile struct {
	api UserFetcher
	log logging.Logger

	mu       sync.Mutex
	gen      uint64
	mounted  bool
	inflight bool
	result   Result[ProfileData]
}

func NewProfile(api UserFetcher, log logging.Logger) *Profile {
	if log == nil {
		log = logging.Nop()
	}
	return &Profile{api: api, log: log.With("screen", "profile")}
}

// Mount marks the screen visible and loads it.
func (p *Profile) Mount(ctx context.Context) Result[ProfileData] {
	p.mu.Lock()
	p.gen++
	p.mounted = true
	p.inflight = false
	p.mu.Unlock()

	return p.Load(ctx)
}

// Unmount marks the screen gone; a fetch still running is not cancelled but
// its result is dropped.
func (p *Profile) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.mounted = false
	p.inflight = false
}

// Result returns the last state.
func (p *Profile) Result() Result[ProfileData] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Load fetches the user unless a fetch is already running, in which case it
// returns the current (Loading) state.
func (p *Profile) Load(ctx context.Context) Result[ProfileData] {
	p.mu.Lock()
	if !p.mounted || p.inflight {
		res := p.result
		p.mu.Unlock()
		return res
	}
	p.inflight = true
	gen := p.gen
	p.result = Result[ProfileData]{Status: Loading}
	p.mu.Unlock()

	user, err := p.api.Me(ctx)

	var res Result[ProfileData]
	if err != nil {
		p.log.Error(ctx, "fetch user data failed", "error", err)
		res = Failed[ProfileData](err)
	} else {
		res = Succeeded(profileData(*user))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		p.log.Debug(ctx, "dropping stale profile result", "status", res.Status.String())
		return p.result
	}
	p.inflight = false
	p.result = res
	return res
}

func profileData(u models.User) ProfileData {
	d := ProfileData{User: u}
	info := u.UserInformation
	if info == nil {
		return d
	}
	d.HasInformation = true

	v, err := bmi.Calculate(info.Weight, info.Height)
	if err != nil {
		return d
	}
	d.HasBMI = true
	d.BMI = bmi.Round1(v)
	d.Status = bmi.NutritionalStatus(v)
	return d
}

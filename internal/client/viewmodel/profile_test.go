package viewmodel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/genfit/internal/client/bmi"
	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *models.User {
	return &models.User{
		ID: 7, Username: "abdul123", Email: "abdul@example.com",
		UserInformation: &models.UserInformation{FullName: "Abdul Abdullah", Height: 171, Weight: 64},
	}
}

func TestProfile_MountComputesBMI(t *testing.T) {
	p := NewProfile(&fakeAPI{user: sampleUser()}, nil)

	res := p.Mount(context.Background())
	require.Equal(t, Success, res.Status)
	assert.True(t, res.Data.HasInformation)
	assert.True(t, res.Data.HasBMI)
	assert.InDelta(t, 21.9, res.Data.BMI, 0.05)
	assert.Equal(t, bmi.Normal, res.Data.Status)
	assert.Equal(t, "Abdul Abdullah", res.Data.User.DisplayName())
	assert.Equal(t, res, p.Result())
}

func TestProfile_NoUserInformation(t *testing.T) {
	u := sampleUser()
	u.UserInformation = nil
	p := NewProfile(&fakeAPI{user: u}, nil)

	res := p.Mount(context.Background())
	require.Equal(t, Success, res.Status)
	assert.False(t, res.Data.HasInformation)
	assert.False(t, res.Data.HasBMI)
}

func TestProfile_MissingHeightSkipsBMI(t *testing.T) {
	u := sampleUser()
	u.UserInformation.Height = 0
	p := NewProfile(&fakeAPI{user: u}, nil)

	res := p.Mount(context.Background())
	require.Equal(t, Success, res.Status)
	assert.True(t, res.Data.HasInformation)
	assert.False(t, res.Data.HasBMI)
}

func TestProfile_FetchError(t *testing.T) {
	boom := errors.New("boom")
	p := NewProfile(&fakeAPI{meErr: boom}, nil)

	res := p.Mount(context.Background())
	assert.Equal(t, Failure, res.Status)
	assert.ErrorIs(t, res.Err, boom)
}

func TestProfile_LoadBeforeMountIsNoop(t *testing.T) {
	api := &fakeAPI{user: sampleUser()}
	p := NewProfile(api, nil)

	res := p.Load(context.Background())
	assert.Equal(t, Idle, res.Status)
	assert.Equal(t, 0, api.calls())
}

func TestProfile_SingleInFlightFetch(t *testing.T) {
	gate := make(chan struct{})
	api := &fakeAPI{user: sampleUser(), meGate: gate}
	p := NewProfile(api, nil)

	done := make(chan Result[ProfileData])
	go func() { done <- p.Mount(context.Background()) }()

	require.Eventually(t, func() bool { return api.calls() == 1 }, time.Second, time.Millisecond)

	res := p.Load(context.Background())
	assert.Equal(t, Loading, res.Status)
	assert.Equal(t, 1, api.calls())

	close(gate)
	assert.Equal(t, Success, (<-done).Status)
}

func TestProfile_StaleResultAfterUnmountIsDropped(t *testing.T) {
	gate := make(chan struct{})
	api := &fakeAPI{user: sampleUser(), meGate: gate}
	p := NewProfile(api, nil)

	done := make(chan Result[ProfileData])
	go func() { done <- p.Mount(context.Background()) }()
	require.Eventually(t, func() bool { return api.calls() == 1 }, time.Second, time.Millisecond)

	p.Unmount()
	close(gate)
	<-done

	assert.NotEqual(t, Success, p.Result().Status)
}

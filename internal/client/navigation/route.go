// Package navigation owns the screen stack of the client and the one-time
// startup decision between the signed-in and signed-out flows.
package navigation

import (
	"errors"
	"fmt"
)

// Name identifies a screen.
type Name string

const (
	Splash                       Name = "Splash"
	Information                  Name = "Information"
	Login                        Name = "Login"
	Register                     Name = "Register"
	UserDetail                   Name = "UserDetail"
	MainTabs                     Name = "MainTabs"
	LearningSession              Name = "LearningSession"
	GiziMaterial                 Name = "GiziMaterial"
	MentalHealthMaterial         Name = "MentalHealthMaterial"
	BMICalculator                Name = "BMICalculator"
	EditProfile                  Name = "EditProfile"
	Telehealth                   Name = "Telehealth"
	MedicalProfessionalSelection Name = "MedicalProfessionalSelection"
)

// Tab is a tab of the MainTabs screen.
type Tab string

const (
	TabHome        Tab = "Home"
	TabLearning    Tab = "Learning"
	TabForum       Tab = "Forum"
	TabApplication Tab = "Application"
)

// Tabs lists the MainTabs tabs in display order.
var Tabs = []Tab{TabHome, TabLearning, TabForum, TabApplication}

var ErrInvalidRoute = errors.New("invalid route")

// LearningSessionParams are the parameters of LearningSession.
type LearningSessionParams struct {
	Topic      string
	SegmentIDs []string
}

// MaterialParams are the parameters of GiziMaterial and MentalHealthMaterial.
type MaterialParams struct {
	ID string
}

// Route is a screen plus its typed parameters. Params is nil for screens that
// take none.
type Route struct {
	Name   Name
	Params any
}

// To returns a parameterless route.
func To(name Name) Route { return Route{Name: name} }

func NewLearningSession(topic string, segmentIDs ...string) Route {
	return Route{Name: LearningSession, Params: LearningSessionParams{Topic: topic, SegmentIDs: segmentIDs}}
}

func NewGiziMaterial(id string) Route {
	return Route{Name: GiziMaterial, Params: MaterialParams{ID: id}}
}

func NewMentalHealthMaterial(id string) Route {
	return Route{Name: MentalHealthMaterial, Params: MaterialParams{ID: id}}
}

// Validate checks that r names a known screen and carries the parameters that
// screen expects.
func (r Route) Validate() error {
	switch r.Name {
	case Splash, Information, Login, Register, UserDetail, MainTabs,
		BMICalculator, EditProfile, Telehealth, MedicalProfessionalSelection:
		if r.Params != nil {
			return fmt.Errorf("%w: %s takes no parameters", ErrInvalidRoute, r.Name)
		}
	case LearningSession:
		p, ok := r.Params.(LearningSessionParams)
		if !ok || p.Topic == "" {
			return fmt.Errorf("%w: %s needs a topic", ErrInvalidRoute, r.Name)
		}
	case GiziMaterial, MentalHealthMaterial:
		p, ok := r.Params.(MaterialParams)
		if !ok || p.ID == "" {
			return fmt.Errorf("%w: %s needs an id", ErrInvalidRoute, r.Name)
		}
	default:
		return fmt.Errorf("%w: unknown screen %q", ErrInvalidRoute, r.Name)
	}
	return nil
}

func (r Route) String() string {
	switch p := r.Params.(type) {
	case LearningSessionParams:
		return fmt.Sprintf("%s(%s)", r.Name, p.Topic)
	case MaterialParams:
		return fmt.Sprintf("%s(%s)", r.Name, p.ID)
	default:
		return string(r.Name)
	}
}

package viewmodel

import (
	"fmt"

	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

// MsgNoPreTest overlays the program cards until the pre-test is taken.
const MsgNoPreTest = "Anda belum melakukan pre-test"

// Program is one learning program card on the Home screen.
type Program struct {
	Topic     string
	Title     string
	Completed int
	Total     int

	// Material is the reading screen of the program, if it has one.
	Material navigation.Name
}

// Progress is the completed fraction in [0, 1].
func (p Program) Progress() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Completed) / float64(p.Total)
	return min(max(f, 0), 1)
}

// DefaultPrograms are the programs every account is enrolled in.
var DefaultPrograms = []Program{
	{Topic: "gizi", Title: "Gizi Seimbang", Completed: 0, Total: 10, Material: navigation.GiziMaterial},
	{Topic: "mental", Title: "Kesehatan Mental", Completed: 5, Total: 10, Material: navigation.MentalHealthMaterial},
	{Topic: "aktivitas", Title: "Aktivitas Fisik", Completed: 3, Total: 10},
	{Topic: "tidur", Title: "Pola Tidur", Completed: 8, Total: 10},
}

// Home is the first tab: the user's BMI card, the telehealth entry and the
// program cards.
type Home struct {
	*Profile

	nav        Navigator
	programs   []Program
	hasPreTest bool
}

func NewHome(api UserFetcher, nav Navigator, log logging.Logger) *Home {
	return &Home{
		Profile:  NewProfile(api, log),
		nav:      nav,
		programs: DefaultPrograms,
	}
}

func (h *Home) Programs() []Program { return h.programs }

// HasPreTest reports whether the program cards are unlocked.
func (h *Home) HasPreTest() bool { return h.hasPreTest }

// OpenTelehealth navigates to the telehealth screen.
func (h *Home) OpenTelehealth() error {
	return h.nav.Navigate(navigation.To(navigation.Telehealth))
}

// OpenProgram starts the learning session of the program for topic.
func (h *Home) OpenProgram(topic string) error {
	p, ok := h.program(topic)
	if !ok {
		return navigation.ErrInvalidRoute
	}
	return h.nav.Navigate(navigation.NewLearningSession(p.Topic))
}

// OpenMaterial opens reading material id of the program for topic.
func (h *Home) OpenMaterial(topic, id string) error {
	p, ok := h.program(topic)
	if !ok {
		return navigation.ErrInvalidRoute
	}
	switch p.Material {
	case navigation.GiziMaterial:
		return h.nav.Navigate(navigation.NewGiziMaterial(id))
	case navigation.MentalHealthMaterial:
		return h.nav.Navigate(navigation.NewMentalHealthMaterial(id))
	default:
		return fmt.Errorf("%w: %s has no material", navigation.ErrInvalidRoute, topic)
	}
}

func (h *Home) program(topic string) (Program, bool) {
	for _, p := range h.programs {
		if p.Topic == topic {
			return p, true
		}
	}
	return Program{}, false
}

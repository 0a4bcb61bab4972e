package viewmodel

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/genfit/internal/client/bmi"
	"github.com/dmitrijs2005/genfit/internal/common"
)

// BMIResult is the output of the calculator screen.
type BMIResult struct {
	BMI    float64
	Status bmi.Status
}

// BMICalculator is the stand-alone calculator reachable from the Application
// tab.
type BMICalculator struct{}

// Calculate parses weight (kg) and height (cm) as typed by the user; a comma
// is accepted as the decimal separator.
func (BMICalculator) Calculate(weight, height string) Result[BMIResult] {
	w, err := parseNumber(weight)
	if err != nil {
		return Failed[BMIResult](err)
	}
	h, err := parseNumber(height)
	if err != nil {
		return Failed[BMIResult](err)
	}

	v, err := bmi.Calculate(w, h)
	if err != nil {
		return Failed[BMIResult](err)
	}
	return Succeeded(BMIResult{BMI: bmi.Round1(v), Status: bmi.NutritionalStatus(v)})
}

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, common.ErrInvalidInput
	}
	return v, nil
}

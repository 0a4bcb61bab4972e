// Package bmi computes Body Mass Index and maps it to a nutritional status.
package bmi

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/genfit/internal/common"
)

// Status is a nutritional-status band. The zero value is Underweight.
type Status int

const (
	Underweight Status = iota
	Normal
	Overweight
	Obese
)

// Band lower bounds, inclusive. A value equal to a threshold belongs to the
// upper band.
const (
	NormalFrom     = 18.5
	OverweightFrom = 25.0
	ObeseFrom      = 30.0
)

func (s Status) String() string {
	switch s {
	case Underweight:
		return "underweight"
	case Normal:
		return "normal"
	case Overweight:
		return "overweight"
	case Obese:
		return "obese"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Label is the user-facing Indonesian name of the band.
func (s Status) Label() string {
	switch s {
	case Underweight:
		return "Kurus"
	case Normal:
		return "Ideal"
	case Overweight:
		return "Gemuk"
	case Obese:
		return "Obesitas"
	default:
		return s.String()
	}
}

// Calculate returns weight / (height/100)^2. Non-positive or non-finite
// inputs are rejected with common.ErrInvalidInput.
func Calculate(weightKg, heightCm float64) (float64, error) {
	if !finite(weightKg) || !finite(heightCm) {
		return 0, fmt.Errorf("%w: weight and height must be finite", common.ErrInvalidInput)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %v", common.ErrInvalidInput, heightCm)
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", common.ErrInvalidInput, weightKg)
	}

	m := heightCm / 100
	return weightKg / (m * m), nil
}

// NutritionalStatus maps any bmi, including NaN and infinities, to a band.
// NaN falls into Underweight.
func NutritionalStatus(bmi float64) Status {
	switch {
	case bmi >= ObeseFrom:
		return Obese
	case bmi >= OverweightFrom:
		return Overweight
	case bmi >= NormalFrom:
		return Normal
	default:
		return Underweight
	}
}

// Round1 rounds v to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AgeAt returns the age in whole years at now, one less when the birth month
// has not been reached yet this year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

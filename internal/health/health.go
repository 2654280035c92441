// Package health computes the onboarding health metrics: BMI, waist-to-height
// ratio, and the combined risk banding shown on the profile screen.
package health

import (
	"math"
	"time"
)

// Risk is the banded health-risk label derived from BMI and WHtR.
type Risk string

const (
	RiskHealthy  Risk = "HEALTHY"
	RiskModerate Risk = "MODERATE"
	RiskHigh     Risk = "HIGH"
)

// BMI computes body mass index from weight in kg and height in cm, rounded
// to one decimal place.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// BMICategory returns the standard WHO banding for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// WHtR computes the waist-to-height ratio (both in cm), rounded to two
// decimal places.
func WHtR(waistCm, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	return math.Round(waistCm/heightCm*100) / 100
}

// RiskFor combines BMI and WHtR into a single banded risk. WHtR dominates:
// central adiposity is the stronger predictor.
func RiskFor(bmi, whtr float64) Risk {
	switch {
	case whtr > 0.6:
		return RiskHigh
	case whtr > 0.5:
		return RiskModerate
	case bmi >= 30:
		return RiskHigh
	case bmi >= 25:
		return RiskModerate
	default:
		return RiskHealthy
	}
}

// CurrentDay returns which plan day a start date puts the user on today,
// capped at day 365. Day 1 is the start date itself.
func CurrentDay(startDate string, now time.Time) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 1
	}
	days := int(now.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	if days > 365 {
		return 365
	}
	return days
}

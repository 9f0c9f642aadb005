// Package dashboard derives the account usage panel from injected figures.
package dashboard

import "math"

// Account holds the raw usage figures of the signed-in account.
type Account struct {
	Name               string  `yaml:"name" json:"name" validate:"required"`
	Plan               string  `yaml:"plan" json:"plan" validate:"required"`
	TranscriptionsUsed int     `yaml:"transcriptions_used" json:"transcriptions_used" validate:"min=0"`
	TranscriptionLimit int     `yaml:"transcription_limit" json:"transcription_limit" validate:"min=0"`
	MinutesUsed        int     `yaml:"minutes_used" json:"minutes_used" validate:"min=0"`
	MinutesLimit       int     `yaml:"minutes_limit" json:"minutes_limit" validate:"min=0"`
	AverageAccuracy    float64 `yaml:"average_accuracy" json:"average_accuracy" validate:"min=0,max=100"`
	MonthlyGrowth      float64 `yaml:"monthly_growth" json:"monthly_growth"`
}

// DefaultAccount is the demo account shown on a fresh dashboard.
func DefaultAccount() Account {
	return Account{
		Name:               "John Doe",
		Plan:               "Pro",
		TranscriptionsUsed: 47,
		TranscriptionLimit: 100,
		MinutesUsed:        1250,
		MinutesLimit:       5000,
		AverageAccuracy:    94.2,
		MonthlyGrowth:      23,
	}
}

// Usage is Account plus the figures the panel derives from it.
type Usage struct {
	Account
	TranscriptionPercent    float64 `json:"transcription_percent"`
	MinutesPercent          float64 `json:"minutes_percent"`
	TranscriptionsRemaining int     `json:"transcriptions_remaining"`
	MinutesRemaining        int     `json:"minutes_remaining"`
}

// Compute derives percentages and remaining counts. A zero limit yields 0%
// used and nothing remaining.
func Compute(a Account) Usage {
	return Usage{
		Account:                 a,
		TranscriptionPercent:    percent(a.TranscriptionsUsed, a.TranscriptionLimit),
		MinutesPercent:          percent(a.MinutesUsed, a.MinutesLimit),
		TranscriptionsRemaining: max(a.TranscriptionLimit-a.TranscriptionsUsed, 0),
		MinutesRemaining:        max(a.MinutesLimit-a.MinutesUsed, 0),
	}
}

func percent(used, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Round(float64(used)/float64(limit)*1000) / 10
}

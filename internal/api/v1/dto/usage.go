package dto

import "voxscribe/internal/app/dashboard"

// UsageResponse is the account usage panel
type UsageResponse struct {
	Name                    string  `json:"name" example:"John Doe"`
	Plan                    string  `json:"plan" example:"Pro"`
	TranscriptionsUsed      int     `json:"transcriptions_used" example:"47"`
	TranscriptionLimit      int     `json:"transcription_limit" example:"100"`
	TranscriptionPercent    float64 `json:"transcription_percent" example:"47"`
	TranscriptionsRemaining int     `json:"transcriptions_remaining" example:"53"`
	MinutesUsed             int     `json:"minutes_used" example:"1250"`
	MinutesLimit            int     `json:"minutes_limit" example:"5000"`
	MinutesPercent          float64 `json:"minutes_percent" example:"25"`
	MinutesRemaining        int     `json:"minutes_remaining" example:"3750"`
	AverageAccuracy         float64 `json:"average_accuracy" example:"94.2"`
	MonthlyGrowth           float64 `json:"monthly_growth" example:"23"`
}

// ToUsageResponse converts computed usage
func ToUsageResponse(u dashboard.Usage) UsageResponse {
	return UsageResponse{
		Name:                    u.Name,
		Plan:                    u.Plan,
		TranscriptionsUsed:      u.TranscriptionsUsed,
		TranscriptionLimit:      u.TranscriptionLimit,
		TranscriptionPercent:    u.TranscriptionPercent,
		TranscriptionsRemaining: u.TranscriptionsRemaining,
		MinutesUsed:             u.MinutesUsed,
		MinutesLimit:            u.MinutesLimit,
		MinutesPercent:          u.MinutesPercent,
		MinutesRemaining:        u.MinutesRemaining,
		AverageAccuracy:         u.AverageAccuracy,
		MonthlyGrowth:           u.MonthlyGrowth,
	}
}

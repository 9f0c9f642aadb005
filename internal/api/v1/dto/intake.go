package dto

import (
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/model"
)

// IntakeStatusResponse is the current pipeline state
type IntakeStatusResponse struct {
	State        string `json:"state" example:"uploading"`
	Progress     int    `json:"progress" example:"40"`
	Busy         bool   `json:"busy"`
	SubmissionID string `json:"submission_id,omitempty"`
	FileName     string `json:"file_name,omitempty"`
	Estimate     string `json:"estimate,omitempty" example:"2-3 minutes"`
	Error        string `json:"error,omitempty"`
}

// SubmitResponse acknowledges an accepted upload
type SubmitResponse struct {
	SubmissionID string               `json:"submission_id"`
	FileName     string               `json:"file_name"`
	Size         int64                `json:"size"`
	MIMEType     string               `json:"mime_type,omitempty"`
	Status       IntakeStatusResponse `json:"status"`
}

// ResultResponse is one transcription result
type ResultResponse struct {
	Text              string  `json:"text"`
	Confidence        float64 `json:"confidence" example:"0.95"`
	ConfidencePercent int     `json:"confidence_percent" example:"95"`
	Duration          int     `json:"duration" example:"45"`
	DurationLabel     string  `json:"duration_label" example:"0m"`
	SourceName        string  `json:"source_name" example:"meeting.mp3"`
}

// ToIntakeStatusResponse converts a pipeline snapshot
func ToIntakeStatusResponse(s intake.Snapshot) IntakeStatusResponse {
	resp := IntakeStatusResponse{
		State:        string(s.State),
		Progress:     s.Progress,
		Busy:         s.Busy,
		SubmissionID: s.SubmissionID,
		FileName:     s.FileName,
		Estimate:     s.Estimate,
	}
	if s.Err != nil {
		resp.Error = s.Err.Error()
	}
	return resp
}

// ToResultResponse converts a result record
func ToResultResponse(r model.Result) ResultResponse {
	return ResultResponse{
		Text:              r.Text,
		Confidence:        r.Confidence,
		ConfidencePercent: history.ConfidencePercent(r.Confidence),
		Duration:          r.Duration,
		DurationLabel:     history.FormatDuration(r.Duration),
		SourceName:        r.SourceName,
	}
}

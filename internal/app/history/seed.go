package history

import (
	"time"

	"voxscribe/internal/app/model"
)

// DefaultEntries returns the demo history shown on a fresh dashboard.
func DefaultEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{
			ID: "1",
			Result: model.Result{
				SourceName: "meeting-recording-2024.mp3",
				Text:       "Welcome to our quarterly business review meeting. Today we'll be discussing our performance metrics, upcoming projects, and strategic initiatives for the next quarter...",
				Confidence: 0.96,
				Duration:   1800,
			},
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Status:    model.StatusCompleted,
		},
		{
			ID: "2",
			Result: model.Result{
				SourceName: "interview-candidate-john.wav",
				Text:       "Thank you for taking the time to interview with us today. Let's start by having you tell us a bit about your background and experience in software development...",
				Confidence: 0.94,
				Duration:   2400,
			},
			CreatedAt: time.Date(2024, 1, 14, 14, 15, 0, 0, time.UTC),
			Status:    model.StatusCompleted,
		},
		{
			ID: "3",
			Result: model.Result{
				SourceName: "podcast-episode-12.m4a",
				Text:       "Welcome back to Tech Talk, the podcast where we dive deep into the latest trends in technology and innovation. I'm your host Sarah, and today we're discussing artificial intelligence...",
				Confidence: 0.98,
				Duration:   3600,
			},
			CreatedAt: time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC),
			Status:    model.StatusCompleted,
		},
		{
			ID: "4",
			Result: model.Result{
				SourceName: "lecture-machine-learning.mp3",
				Text:       "Today's lecture will cover the fundamentals of machine learning algorithms. We'll start with supervised learning techniques and then move on to unsupervised methods...",
				Confidence: 0.92,
				Duration:   5400,
			},
			CreatedAt: time.Date(2024, 1, 12, 16, 45, 0, 0, time.UTC),
			Status:    model.StatusCompleted,
		},
		{
			ID: "5",
			Result: model.Result{
				SourceName: "client-call-project-alpha.wav",
				Text:       "Good morning everyone. Let's review the progress on Project Alpha. The development team has completed the initial phase and we're ready to move into testing...",
				Confidence: 0.95,
				Duration:   1200,
			},
			CreatedAt: time.Date(2024, 1, 11, 11, 20, 0, 0, time.UTC),
			Status:    model.StatusCompleted,
		},
	}
}

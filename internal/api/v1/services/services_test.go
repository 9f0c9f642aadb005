package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"voxscribe/internal/api/v1/dto"
	"voxscribe/internal/app/dashboard"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/model"
)

func fastPipeline(processor intake.Processor) *intake.Pipeline {
	cfg := intake.DefaultConfig()
	cfg.Schedule.Tick = time.Millisecond
	cfg.Schedule.FinalizeDelay = 0
	return intake.NewPipeline(cfg, processor, nil, nil)
}

func TestIntakeServiceKeepsLatestResult(t *testing.T) {
	p := fastPipeline(intake.NewSimulatedProcessor(5 * time.Millisecond))
	svc := NewIntakeService(p, nil, nil)

	_, err := svc.LatestResult(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoResult)

	ctx, cancel := context.WithCancel(context.Background())
	resp, err := svc.Submit(ctx, intake.FileHandle{Name: "standup.mp3", Size: 2048, MIMEType: "audio/mpeg"})
	require.NoError(t, err)
	cancel() // the submission must survive the request context
	assert.NotEmpty(t, resp.SubmissionID)
	assert.True(t, resp.Status.Busy)

	require.Eventually(t, func() bool {
		_, err := svc.LatestResult(context.Background())
		return err == nil
	}, 2*time.Second, 5*time.Millisecond)

	result, err := svc.LatestResult(context.Background())
	require.NoError(t, err)
	assert.Equal(t, intake.SampleText, result.Text)
	assert.Equal(t, 95, result.ConfidencePercent)
	assert.Equal(t, "standup.mp3", result.SourceName)

	payload, err := svc.ExportResult(context.Background(), "vtt")
	require.NoError(t, err)
	assert.Equal(t, "standup.vtt", payload.FileName)
	assert.Equal(t, intake.SampleText, string(payload.Data))

	_, err = svc.ExportResult(context.Background(), "doc")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestIntakeServiceBusyAndCancel(t *testing.T) {
	block := make(chan struct{})
	p := fastPipeline(intake.ProcessorFunc(func(ctx context.Context, f intake.FileHandle) (model.Result, error) {
		select {
		case <-ctx.Done():
			return model.Result{}, ctx.Err()
		case <-block:
			return model.Result{Text: "x", SourceName: f.Name}, nil
		}
	}))
	defer close(block)
	svc := NewIntakeService(p, nil, nil)

	assert.ErrorIs(t, svc.Cancel(context.Background()), apperrors.ErrNotRunning)

	_, err := svc.Submit(context.Background(), intake.FileHandle{Name: "a.wav", Size: 1})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), intake.FileHandle{Name: "b.wav", Size: 1})
	assert.ErrorIs(t, err, apperrors.ErrBusy)

	require.NoError(t, svc.Cancel(context.Background()))
	require.Eventually(t, func() bool {
		return !svc.Status(context.Background()).Busy
	}, 2*time.Second, 5*time.Millisecond)

	status := svc.Status(context.Background())
	assert.Equal(t, "idle", status.State)
	assert.NotEmpty(t, status.Error)
}

func TestIntakeServiceValidation(t *testing.T) {
	svc := NewIntakeService(fastPipeline(intake.NewSimulatedProcessor(0)), nil, nil)

	_, err := svc.Submit(context.Background(), intake.FileHandle{Name: "notes.txt", Size: 10})
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, svc.Status(context.Background()).Busy)
}

func TestHistoryServiceList(t *testing.T) {
	svc := NewHistoryService(history.NewStore(history.DefaultEntries(), nil, nil), 2, nil, nil)

	resp, err := svc.ListHistory(context.Background(), dto.ListHistoryQuery{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.Page, "beyond last clamps to last")
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 5, resp.Pagination.Total)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "5", resp.Entries[0].ID)
	assert.Equal(t, "Showing 5 to 5 of 5 transcriptions", resp.Pagination.Summary)

	resp, err = svc.ListHistory(context.Background(), dto.ListHistoryQuery{Query: "podcast", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "podcast-episode-12.m4a", resp.Entries[0].SourceName)
	assert.Equal(t, "1h 0m", resp.Entries[0].DurationLabel)
	assert.Equal(t, 98, resp.Entries[0].ConfidencePercent)

	resp, err = svc.ListHistory(context.Background(), dto.ListHistoryQuery{Query: "xyz", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, "No transcriptions found", resp.Pagination.Summary)
}

func TestHistoryServiceEntryActions(t *testing.T) {
	store := history.NewStore(history.DefaultEntries(), nil, nil)
	svc := NewHistoryService(store, 10, nil, nil)

	ack, err := svc.DeleteEntry(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "meeting-recording-2024.mp3 has been removed from your history.", ack.Description)
	assert.Equal(t, 5, store.Len())

	view, err := svc.ViewEntry(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Opening transcription", view.Title)

	_, err = svc.ViewEntry(context.Background(), "99")
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)

	payload, err := svc.ExportEntry(context.Background(), "3", "srt")
	require.NoError(t, err)
	assert.Equal(t, "podcast-episode-12.srt", payload.FileName)
	assert.Equal(t, export.MIMEType, payload.MIMEType)
	entry, _ := store.Get("3")
	assert.Equal(t, entry.Text, string(payload.Data))

	_, err = svc.ExportEntry(context.Background(), "99", "txt")
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestHistoryServiceExportExcel(t *testing.T) {
	svc := NewHistoryService(history.NewStore(history.DefaultEntries(), nil, nil), 10, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportExcel(context.Background(), ".wav", &buf))

	book, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, book.Sheets[0].Rows, 3)
}

func TestUsageService(t *testing.T) {
	svc := NewUsageService(dashboard.DefaultAccount())

	usage, err := svc.GetUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 53, usage.TranscriptionsRemaining)
	assert.Equal(t, 25.0, usage.MinutesPercent)
}

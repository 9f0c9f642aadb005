package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/model"
)

// MP3Header is enough of an ID3v2 tag for content sniffing to report audio/mpeg
var MP3Header = append([]byte("ID3\x03\x00\x00\x00\x00\x00\x0a"), make([]byte, 54)...)

// HistoryEntries generates n completed entries, newest first
func HistoryEntries(n int) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, n)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range entries {
		entries[i] = model.HistoryEntry{
			ID: fmt.Sprintf("entry-%03d", i+1),
			Result: model.Result{
				SourceName: fmt.Sprintf("recording-%03d.mp3", i+1),
				Text:       fmt.Sprintf("Transcript body for recording %d.", i+1),
				Confidence: 0.9,
				Duration:   60 * (i + 1),
			},
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			Status:    model.StatusCompleted,
		}
	}
	return entries
}

// FastIntakeConfig returns the default rules with a millisecond schedule
func FastIntakeConfig() intake.Config {
	cfg := intake.DefaultConfig()
	cfg.Schedule.Tick = time.Millisecond
	cfg.Schedule.FinalizeDelay = time.Millisecond
	cfg.Timeout = 5 * time.Second
	return cfg
}

// WriteAudioFile writes an MP3-looking file into dir and returns its path
func WriteAudioFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, MP3Header, 0o644); err != nil {
		t.Fatalf("Failed to write audio fixture: %v", err)
	}
	return path
}

// UploadPart is one file in a multipart body
type UploadPart struct {
	Field       string
	FileName    string
	ContentType string
	Content     []byte
}

// MultipartBody builds a multipart/form-data body and returns it with its
// Content-Type header value
func MultipartBody(t *testing.T, parts ...UploadPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, p := range parts {
		field := p.Field
		if field == "" {
			field = "file"
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, p.FileName))
		if p.ContentType != "" {
			header.Set("Content-Type", p.ContentType)
		}
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("Failed to create multipart part: %v", err)
		}
		if _, err := part.Write(p.Content); err != nil {
			t.Fatalf("Failed to write multipart part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

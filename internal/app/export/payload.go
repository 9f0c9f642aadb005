package export

import (
	"path/filepath"
	"strings"

	"voxscribe/internal/app/model"
)

// MIMEType is the content type hint attached to every transcript payload.
// srt and vtt payloads carry plain text without cue timing.
const MIMEType = "text/plain"

const fallbackBaseName = "transcription"

// Payload is a transcript ready to be delivered.
type Payload struct {
	Data     []byte
	FileName string
	MIMEType string
	Format   Format
}

// FileName replaces the last extension of source with the format's one:
// "meeting.mp3" becomes "meeting.srt".
func FileName(source string, f Format) string {
	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = fallbackBaseName
	}
	return base + "." + f.String()
}

// Build packages text under a file name derived from source.
func Build(text, source string, f Format) Payload {
	return Payload{
		Data:     []byte(text),
		FileName: FileName(source, f),
		MIMEType: MIMEType,
		Format:   f,
	}
}

// ForResult builds the payload of a freshly produced result.
func ForResult(r model.Result, f Format) Payload {
	return Build(r.Text, r.SourceName, f)
}

// ForEntry builds the payload of a history entry.
func ForEntry(e model.HistoryEntry, f Format) Payload {
	return Build(e.Text, e.SourceName, f)
}

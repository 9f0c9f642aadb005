// Package export turns transcripts into downloadable payloads and hands them
// to a delivery collaborator.
package export

import (
	"strings"

	"github.com/samber/lo"
	apperrors "voxscribe/internal/app/errors"
)

// Format is the extension tag of an exported transcript.
type Format string

const (
	FormatTXT Format = "txt"
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatTXT, FormatSRT, FormatVTT}

// ParseFormat accepts "txt", "srt" or "vtt" in any case. An empty string
// selects txt.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatTXT, nil
	}
	f := Format(s)
	if !lo.Contains(Formats, f) {
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "format %q", s)
	}
	return f, nil
}

func (f Format) String() string {
	return string(f)
}

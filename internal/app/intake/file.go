package intake

import (
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
	apperrors "voxscribe/internal/app/errors"
)

// MiB is one mebibyte in bytes.
const MiB int64 = 1024 * 1024

// DefaultAllowedTypes is the audio allow-list accepted by default.
var DefaultAllowedTypes = []string{"mp3", "wav", "m4a", "ogg", "flac"}

// DefaultMaxSize is the default upload ceiling.
const DefaultMaxSize = 100 * MiB

// FileHandle describes one file supplied by a drop, picker or upload.
type FileHandle struct {
	Name string
	Size int64
	// MIMEType is the host-supplied or sniffed content type. Empty when unknown.
	MIMEType string
}

// Category returns the lower-cased extension of the file name without the dot.
func (f FileHandle) Category() string {
	ext := path.Ext(f.Name)
	if len(ext) <= 1 {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// Rules are the intake constraints.
type Rules struct {
	AllowedTypes []string `yaml:"allowed_types" validate:"required,min=1,dive,alphanum"`
	MaxSize      int64    `yaml:"max_size" validate:"gt=0"`
}

// DefaultRules returns the audio allow-list with a 100 MiB ceiling.
func DefaultRules() Rules {
	return Rules{
		AllowedTypes: append([]string(nil), DefaultAllowedTypes...),
		MaxSize:      DefaultMaxSize,
	}
}

// generic container types some hosts report for audio files
var containerMIMETypes = []string{
	"application/octet-stream",
	"application/ogg",
	"video/mp4",
	"video/ogg",
}

// Validate checks f against the rules and returns a *ValidationError on failure.
func (r Rules) Validate(f FileHandle) error {
	details := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		details["name"] = "file name is required"
	}

	category := f.Category()
	allowed := lo.Map(r.AllowedTypes, func(t string, _ int) string { return strings.ToLower(t) })
	if !lo.Contains(allowed, category) {
		details["type"] = fmt.Sprintf("type %q is not accepted (allowed: %s)", category, strings.Join(allowed, ", "))
	} else if !acceptableMIME(f.MIMEType) {
		details["type"] = fmt.Sprintf("content type %q is not audio", f.MIMEType)
	}

	if f.Size < 0 {
		details["size"] = "size must not be negative"
	} else if f.Size > r.MaxSize {
		details["size"] = fmt.Sprintf("%d bytes exceeds the %d byte limit", f.Size, r.MaxSize)
	}

	if len(details) == 0 {
		return nil
	}
	return &apperrors.ValidationError{
		Message: fmt.Sprintf("file %q rejected", f.Name),
		Details: details,
	}
}

func acceptableMIME(mimeType string) bool {
	if mimeType == "" {
		return true
	}
	base := strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	return strings.HasPrefix(base, "audio/") || lo.Contains(containerMIMETypes, base)
}

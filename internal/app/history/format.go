package history

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters shown in a row preview.
const PreviewLength = 80

// FormatDuration renders seconds as "1h 30m" or "20m".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDate renders t like "Jan 15, 2024, 10:30 AM".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// Preview returns the first PreviewLength characters followed by "...".
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text + "..."
	}
	runes := []rune(text)
	return string(runes[:PreviewLength]) + "..."
}

// ConfidencePercent rounds a [0,1] confidence to a whole percentage.
func ConfidencePercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

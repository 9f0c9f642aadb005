package intake

import "time"

// Schedule drives the synthetic progress indicator. Progress climbs by Step
// every Tick up to Cap while processing runs, jumps to 100 once the result is
// ready, and the result is handed off after FinalizeDelay.
type Schedule struct {
	Tick          time.Duration `yaml:"tick" validate:"gt=0"`
	Step          int           `yaml:"step" validate:"min=1,max=100"`
	Cap           int           `yaml:"cap" validate:"min=0,max=99"`
	FinalizeDelay time.Duration `yaml:"finalize_delay" validate:"min=0"`
}

// DefaultSchedule returns +10 every 200ms capped at 90, with a 500ms finalize.
func DefaultSchedule() Schedule {
	return Schedule{
		Tick:          200 * time.Millisecond,
		Step:          10,
		Cap:           90,
		FinalizeDelay: 500 * time.Millisecond,
	}
}

func (s Schedule) next(progress int) int {
	progress += s.Step
	if progress > s.Cap {
		return s.Cap
	}
	return progress
}

// EstimateLabel returns the remaining-time hint shown next to progress.
func EstimateLabel(progress int) string {
	switch {
	case progress < 50:
		return "2-3 minutes"
	case progress < 90:
		return "1-2 minutes"
	default:
		return "< 1 minute"
	}
}

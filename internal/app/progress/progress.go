// Package progress renders intake progress as a terminal bar.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"voxscribe/internal/app/intake"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type Bar struct {
	bar     *mpb.Bar
	enabled bool

	mu       sync.Mutex
	estimate string
}

func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &Manager{
		container: container,
		enabled:   true,
	}
}

// CreateBar adds a 0..100 bar labelled with description.
func (pm *Manager) CreateBar(description string) *Bar {
	if !pm.enabled || pm.container == nil {
		return &Bar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	pb := &Bar{enabled: true}
	pb.bar = pm.container.AddBar(100,
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.NewPercentage("%d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(
				decor.Any(func(decor.Statistics) string { return pb.Estimate() }, decor.WCSyncSpace), "done",
			),
		),
	)
	return pb
}

// Set moves the bar to percent.
func (pb *Bar) Set(percent int, estimate string) {
	if !pb.enabled || pb.bar == nil {
		return
	}
	pb.mu.Lock()
	pb.estimate = estimate
	pb.mu.Unlock()
	pb.bar.SetCurrent(int64(percent))
}

// Estimate returns the last estimate label.
func (pb *Bar) Estimate() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.estimate
}

func (pb *Bar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

// Abort stops the bar in place, leaving it on screen.
func (pb *Bar) Abort() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Abort(false)
	}
}

func (pm *Manager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *Manager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

// Track mirrors pipeline snapshots onto a new bar until the submission ends.
// The returned function detaches the bar; call it once the submission is done.
func (pm *Manager) Track(p *intake.Pipeline, description string) func() {
	bar := pm.CreateBar(description)
	var once sync.Once
	unsubscribe := p.Observe(func(s intake.Snapshot) {
		switch {
		case s.Busy:
			bar.Set(s.Progress, s.Estimate)
		case s.Err != nil:
			once.Do(bar.Abort)
		default:
			once.Do(bar.Complete)
		}
	})
	return func() {
		unsubscribe()
		once.Do(bar.Abort)
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

package intake

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/metrics"
	"voxscribe/internal/app/model"
	"voxscribe/internal/app/retry"
)

// Config holds pipeline settings
type Config struct {
	Rules    Rules         `yaml:"rules"`
	Schedule Schedule      `yaml:"schedule"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	Retry    retry.Config  `yaml:"retry"`
}

// DefaultConfig returns the default rules and schedule with a two minute
// timeout and no retries.
func DefaultConfig() Config {
	return Config{
		Rules:    DefaultRules(),
		Schedule: DefaultSchedule(),
		Timeout:  2 * time.Minute,
		Retry:    retry.DefaultConfig(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if len(c.Rules.AllowedTypes) == 0 {
		c.Rules.AllowedTypes = def.Rules.AllowedTypes
	}
	if c.Rules.MaxSize <= 0 {
		c.Rules.MaxSize = def.Rules.MaxSize
	}
	if c.Schedule == (Schedule{}) {
		c.Schedule = def.Schedule
	}
	if c.Schedule.Tick <= 0 {
		c.Schedule.Tick = def.Schedule.Tick
	}
	if c.Schedule.Step <= 0 {
		c.Schedule.Step = def.Schedule.Step
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.Retry.MaxAttempts < 1 {
		c.Retry = def.Retry
	}
	return c
}

// ResultConsumer receives each successful Result exactly once.
type ResultConsumer func(model.Result)

// Observer is notified after every state or progress change.
type Observer func(Snapshot)

// Snapshot is a point-in-time view of the pipeline.
type Snapshot struct {
	State        State
	Progress     int
	Busy         bool
	SubmissionID string
	FileName     string
	Estimate     string
	// Err is the error of the last submission, cleared by the next Submit.
	Err error
}

// Pipeline accepts one file at a time, drives the progress schedule and hands
// the Result to registered consumers.
type Pipeline struct {
	cfg       Config
	processor Processor
	logger    *zap.Logger
	metrics   *metrics.Collector

	mu       sync.Mutex
	state    State
	progress int
	current  *Submission
	lastErr  error
	cancel   context.CancelFunc

	subMu     sync.RWMutex
	consumers []ResultConsumer
	observers map[int]Observer
	nextObs   int
}

// NewPipeline creates an idle pipeline. logger and m may be nil; zero fields
// of cfg take their DefaultConfig values.
func NewPipeline(cfg Config, processor Processor, logger *zap.Logger, m *metrics.Collector) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		cfg:       cfg.withDefaults(),
		processor: processor,
		logger:    logger,
		metrics:   m,
		state:     StateIdle,
		observers: make(map[int]Observer),
	}
}

// OnResult registers a downstream consumer.
func (p *Pipeline) OnResult(fn ResultConsumer) {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	p.consumers = append(p.consumers, fn)
}

// Observe registers fn for state and progress changes and returns a function
// that removes it.
func (p *Pipeline) Observe(fn Observer) func() {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	id := p.nextObs
	p.nextObs++
	p.observers[id] = fn
	return func() {
		p.subMu.Lock()
		defer p.subMu.Unlock()
		delete(p.observers, id)
	}
}

// Submit validates file and, when the pipeline is idle, starts processing it.
//
// ctx scopes the whole submission, not only this call: cancelling it aborts
// processing. Callers serving short-lived requests should detach it first.
// A pipeline that is not idle returns ErrBusy without touching the in-flight
// submission.
func (p *Pipeline) Submit(ctx context.Context, file FileHandle) (*Submission, error) {
	p.mu.Lock()
	if p.state.busy() {
		inflight := p.current
		p.mu.Unlock()
		p.metrics.SubmissionRejected("busy")
		fields := []zap.Field{zap.String("file", file.Name)}
		if inflight != nil {
			fields = append(fields, zap.String("in_flight", inflight.ID))
		}
		p.logger.Warn("Submission rejected, pipeline busy", fields...)
		return nil, apperrors.ErrBusy
	}
	sub := newSubmission(file)
	p.transitionLocked(StateValidating)
	p.current = sub
	p.progress = 0
	p.lastErr = nil
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	if err := p.cfg.Rules.Validate(file); err != nil {
		p.mu.Lock()
		p.transitionLocked(StateIdle)
		p.current = nil
		p.lastErr = err
		snap = p.snapshotLocked()
		p.mu.Unlock()
		p.notify(snap)

		p.metrics.SubmissionRejected("validation")
		p.logger.Info("Submission rejected",
			zap.String("file", file.Name),
			zap.Int64("size", file.Size),
			zap.Error(err),
		)
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)

	p.mu.Lock()
	p.transitionLocked(StateUploading)
	p.cancel = cancel
	snap = p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	p.logger.Info("Submission accepted",
		zap.String("submission_id", sub.ID),
		zap.String("file", file.Name),
		zap.Int64("size", file.Size),
	)

	go p.run(runCtx, cancel, sub)
	return sub, nil
}

// Cancel aborts the in-flight submission.
func (p *Pipeline) Cancel() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.busy() || p.cancel == nil {
		return apperrors.ErrNotRunning
	}
	p.logger.Info("Cancelling submission", zap.String("submission_id", p.current.ID))
	p.cancel()
	return nil
}

// Status returns a snapshot of the pipeline.
func (p *Pipeline) Status() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Busy reports whether intake is currently disabled.
func (p *Pipeline) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.busy()
}

func (p *Pipeline) run(ctx context.Context, cancel context.CancelFunc, sub *Submission) {
	defer cancel()

	stopTicker := p.startTicker(ctx)
	var result model.Result
	attempts, err := retry.Do(ctx, p.cfg.Retry, func(ctx context.Context) error {
		r, err := p.processor.Process(ctx, sub.File)
		if err != nil {
			return err
		}
		if r.Text == "" {
			return retry.Permanent(errors.New("processor returned an empty transcript"))
		}
		result = r
		return nil
	})
	stopTicker()

	if err == nil {
		err = p.finalize(ctx)
	}
	if err != nil {
		p.fail(sub, attempts, err)
		return
	}

	// the consumer sees the result before the submission resolves
	p.emit(result)

	p.mu.Lock()
	p.transitionLocked(StateIdle)
	p.progress = 0
	p.current = nil
	p.cancel = nil
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	p.metrics.SubmissionFinished("completed", time.Since(sub.StartedAt))
	p.logger.Info("Submission completed",
		zap.String("submission_id", sub.ID),
		zap.String("file", sub.File.Name),
		zap.Int("attempts", attempts),
		zap.Duration("elapsed", time.Since(sub.StartedAt)),
	)
	sub.finish(result, nil)
}

func (p *Pipeline) finalize(ctx context.Context) error {
	p.mu.Lock()
	p.transitionLocked(StateFinalizing)
	p.progress = 100
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	if p.cfg.Schedule.FinalizeDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.cfg.Schedule.FinalizeDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Pipeline) fail(sub *Submission, attempts int, cause error) {
	perr := &apperrors.ProcessingError{Source: sub.File.Name, Attempts: attempts, Err: cause}

	p.mu.Lock()
	p.transitionLocked(StateIdle)
	p.progress = 0
	p.current = nil
	p.cancel = nil
	p.lastErr = perr
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	outcome := "failed"
	if errors.Is(cause, context.Canceled) {
		outcome = "cancelled"
	}
	p.metrics.SubmissionFinished(outcome, time.Since(sub.StartedAt))
	p.logger.Error("Submission failed",
		zap.String("submission_id", sub.ID),
		zap.String("file", sub.File.Name),
		zap.String("outcome", outcome),
		zap.Int("attempts", attempts),
		zap.Error(cause),
	)
	sub.finish(model.Result{}, perr)
}

// startTicker advances progress on the schedule until stopped, until ctx is
// done or until the cap is reached.
func (p *Pipeline) startTicker(ctx context.Context) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(p.cfg.Schedule.Tick)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.mu.Lock()
				if p.state != StateUploading {
					p.mu.Unlock()
					return
				}
				p.progress = p.cfg.Schedule.next(p.progress)
				reachedCap := p.progress >= p.cfg.Schedule.Cap
				snap := p.snapshotLocked()
				p.mu.Unlock()
				p.notify(snap)
				if reachedCap {
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func (p *Pipeline) emit(result model.Result) {
	p.subMu.RLock()
	consumers := append([]ResultConsumer(nil), p.consumers...)
	p.subMu.RUnlock()

	for _, consume := range consumers {
		consume(result)
	}
}

func (p *Pipeline) notify(snap Snapshot) {
	p.metrics.SetProgress(snap.Progress, snap.Busy)

	p.subMu.RLock()
	observers := make([]Observer, 0, len(p.observers))
	for _, obs := range p.observers {
		observers = append(observers, obs)
	}
	p.subMu.RUnlock()

	for _, obs := range observers {
		obs(snap)
	}
}

func (p *Pipeline) transitionLocked(to State) {
	if !isValidTransition(p.state, to) {
		p.logger.DPanic("Invalid intake transition",
			zap.String("from", string(p.state)),
			zap.String("to", string(to)),
		)
	}
	p.state = to
}

func (p *Pipeline) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    p.state,
		Progress: p.progress,
		Busy:     p.state.busy(),
		Estimate: EstimateLabel(p.progress),
		Err:      p.lastErr,
	}
	if p.current != nil {
		snap.SubmissionID = p.current.ID
		snap.FileName = p.current.File.Name
	}
	return snap
}

package intake

import (
	"context"
	"time"

	"voxscribe/internal/app/model"
)

// Processor turns an accepted file into a Result. Implementations must honor
// ctx cancellation.
type Processor interface {
	Process(ctx context.Context, file FileHandle) (model.Result, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, file FileHandle) (model.Result, error)

func (f ProcessorFunc) Process(ctx context.Context, file FileHandle) (model.Result, error) {
	return f(ctx, file)
}

// SampleText is the canned transcription returned by the simulated processor.
const SampleText = "Welcome to our premium audio transcription service. This is a sample transcription that demonstrates how your audio content will be converted to accurate text using our advanced AI technology. The system can handle various audio formats and provides high-quality results with confidence scores."

// SimulatedProcessor waits a fixed latency and returns a canned result.
type SimulatedProcessor struct {
	Delay      time.Duration
	Text       string
	Confidence float64
	Duration   int
}

// NewSimulatedProcessor returns a processor with the sample transcript.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{
		Delay:      delay,
		Text:       SampleText,
		Confidence: 0.95,
		Duration:   45,
	}
}

func (p *SimulatedProcessor) Process(ctx context.Context, file FileHandle) (model.Result, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return model.Result{}, ctx.Err()
	case <-timer.C:
	}

	return model.Result{
		Text:       p.Text,
		Confidence: p.Confidence,
		Duration:   p.Duration,
		SourceName: file.Name,
	}, nil
}

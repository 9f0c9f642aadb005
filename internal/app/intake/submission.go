package intake

import (
	"context"
	"time"

	"github.com/google/uuid"
	"voxscribe/internal/app/model"
)

// Submission is the handle for one accepted file. It resolves exactly once,
// either with a Result or with a *ProcessingError.
type Submission struct {
	ID        string
	File      FileHandle
	StartedAt time.Time

	done   chan struct{}
	result model.Result
	err    error
}

func newSubmission(file FileHandle) *Submission {
	return &Submission{
		ID:        uuid.New().String(),
		File:      file,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// Done is closed once the submission has resolved.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission resolves or ctx is done. Giving up on the
// wait does not cancel the submission; use Pipeline.Cancel for that.
func (s *Submission) Wait(ctx context.Context) (model.Result, error) {
	select {
	case <-ctx.Done():
		return model.Result{}, ctx.Err()
	case <-s.done:
		return s.result, s.err
	}
}

func (s *Submission) finish(result model.Result, err error) {
	s.result = result
	s.err = err
	close(s.done)
}

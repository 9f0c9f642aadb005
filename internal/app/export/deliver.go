package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/metrics"
)

// Deliverer hands a payload to the host: a download, a file on disk.
type Deliverer interface {
	Deliver(ctx context.Context, p Payload) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, p Payload) error

func (f DelivererFunc) Deliver(ctx context.Context, p Payload) error {
	return f(ctx, p)
}

// DirDeliverer writes payloads into a directory, creating it when missing.
type DirDeliverer struct {
	Dir string
}

func (d DirDeliverer) Deliver(ctx context.Context, p Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(d.Path(p), p.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Path returns where p would be written.
func (d DirDeliverer) Path(p Payload) string {
	return filepath.Join(d.Dir, p.FileName)
}

// Deliver sends p through d. Any rejection is reported as an ExportError.
func Deliver(ctx context.Context, d Deliverer, p Payload, m *metrics.Collector) error {
	err := d.Deliver(ctx, p)
	if err != nil && !apperrors.IsExportError(err) {
		err = &apperrors.ExportError{FileName: p.FileName, Err: err}
	}
	m.ExportFinished(p.Format.String(), err)
	return err
}

package contracts

import "context"

type PatientIDGenerator interface {
	// Next returns the next candidate patient identifier (P-####).
	Next(ctx context.Context) (string, error)
	// SyncTo moves the counter forward so it is at least seq.
	SyncTo(ctx context.Context, seq int64) error
}

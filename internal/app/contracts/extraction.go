package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
)

// ExtractionEngine turns document bytes into structured fields. It never
// returns a Go error: failures are reported as models.ExtractionFailed.
type ExtractionEngine interface {
	Extract(ctx context.Context, content []byte, fileType, declaredType string) models.ExtractionResult
}

package store

import (
	"context"
	"errors"

	"github.com/vvstudio/visual-intake/models"
)

// ErrNotFound is returned when an update targets an id that was never
// created.
var ErrNotFound = errors.New("submission not found")

// SubmissionStore owns record identity and timestamps: implementations
// assign the id and both timestamps on create and advance UpdatedAt on
// every update.
type SubmissionStore interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context) ([]models.Submission, error)
	Update(ctx context.Context, id string, input models.UpdateSubmissionInput) (*models.Submission, error)
}

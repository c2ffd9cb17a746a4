package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvstudio/visual-intake/models"
	"gorm.io/gorm"
)

// GormStore persists submissions in Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, submission *models.Submission) error {
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

func (s *GormStore) Update(ctx context.Context, id string, input models.UpdateSubmissionInput) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load submission %s: %w", id, err)
	}

	input.Apply(&submission)

	// Save writes the whole row and bumps UpdatedAt, so a body that
	// only cleared fields still advances the timestamp.
	if err := s.db.WithContext(ctx).Save(&submission).Error; err != nil {
		return nil, fmt.Errorf("save submission %s: %w", id, err)
	}
	return &submission, nil
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vvstudio/visual-intake/models"
)

// MemoryStore keeps submissions in process memory. It backs the
// STORE=memory development mode and the handler tests.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[string]models.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[string]models.Submission)}
}

func (s *MemoryStore) Create(_ context.Context, submission *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	s.submissions[submission.ID] = *submission
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions := make([]models.Submission, 0, len(s.submissions))
	for _, submission := range s.submissions {
		submissions = append(submissions, submission)
	}
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	return submissions, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, input models.UpdateSubmissionInput) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission, exists := s.submissions[id]
	if !exists {
		return nil, ErrNotFound
	}

	input.Apply(&submission)
	submission.UpdatedAt = time.Now().UTC()

	s.submissions[id] = submission
	return &submission, nil
}

package attempts

import (
	"context"
	"errors"
	"fmt"

	journalRepo "github.com/HarsHvardhnn/centrum-booking-service/internal/infra/storage/journal"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts/models"
)

// maxListLimit caps reception list queries.
const maxListLimit = 100

// Service exposes journal reads to the reception endpoints.
type Service struct {
	repo   AttemptRepository
	logger Logger
}

// NewService creates the attempts service.
func NewService(repo AttemptRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID fetches one journaled attempt.
func (s *Service) GetByID(ctx context.Context, id string) (*models.AttemptResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: attempt id is required", ErrInvalidInput)
	}

	attempt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, journalRepo.ErrAttemptNotFound) {
			s.logger.Warn("GetByID: attempt id=%s not found", id)
			return nil, ErrAttemptNotFound
		}
		s.logger.Error("GetByID: repository error for attempt id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAttempt(attempt), nil
}

// ListRecentByDoctor returns the newest attempts for a doctor.
func (s *Service) ListRecentByDoctor(ctx context.Context, doctorID string, limit uint64) (*models.AttemptListResponse, error) {
	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctor id is required", ErrInvalidInput)
	}
	if limit == 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	list, err := s.repo.ListRecentByDoctor(ctx, doctorID, limit)
	if err != nil {
		s.logger.Error("ListRecentByDoctor: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ListRecentByDoctor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRecentByDoctor: fetched %d attempts for doctor=%s", len(list), doctorID)
	return models.FromDomainAttempts(list), nil
}

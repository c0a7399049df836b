package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// LearnerService manages the learner roster.
type LearnerService interface {
	// Add registers a new learner and returns the assigned "L<n>" ID.
	Add(ctx context.Context, name string, gender domain.Gender, age int, emergencyContact string, grade domain.Grade) (string, error)

	// Get resolves a learner by ID, returning (nil, nil) when none exists.
	Get(ctx context.Context, id string) (*domain.Learner, error)

	List(ctx context.Context) ([]domain.Learner, error)
}

type learnerService struct {
	learnerRepo repository.LearnerRepository
	logger      *zap.Logger
}

// NewLearnerService creates a new instance of learnerService.
func NewLearnerService(learnerRepo repository.LearnerRepository, logger *zap.Logger) LearnerService {
	return &learnerService{learnerRepo: learnerRepo, logger: logger}
}

func (s *learnerService) Add(ctx context.Context, name string, gender domain.Gender, age int, emergencyContact string, grade domain.Grade) (string, error) {
	count, err := s.learnerRepo.Count(ctx)
	if err != nil {
		return "", err
	}

	learner := &domain.Learner{
		ID:               fmt.Sprintf("L%d", count+1),
		Name:             name,
		Gender:           gender,
		Age:              age,
		EmergencyContact: emergencyContact,
		CurrentGrade:     grade,
	}
	if err := s.learnerRepo.Create(ctx, learner); err != nil {
		return "", err
	}

	s.logger.Info("learner added",
		zap.String("learner_id", learner.ID),
		zap.String("name", learner.Name),
		zap.Stringer("grade", learner.CurrentGrade),
	)
	return learner.ID, nil
}

func (s *learnerService) Get(ctx context.Context, id string) (*domain.Learner, error) {
	learner, err := s.learnerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return learner, nil
}

func (s *learnerService) List(ctx context.Context) ([]domain.Learner, error) {
	return s.learnerRepo.List(ctx)
}

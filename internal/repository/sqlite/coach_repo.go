package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// coachRepository implements repository.CoachRepository.
type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository backed by sqlite.
func NewCoachRepository(db *gorm.DB) repository.CoachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *domain.Coach) (string, error) {
	if coach.ID == "" {
		coach.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(coach).Error; err != nil {
		return "", err
	}
	return coach.ID, nil
}

func (r *coachRepository) GetByName(ctx context.Context, name string) (*domain.Coach, error) {
	var coach domain.Coach
	err := r.db.WithContext(ctx).First(&coach, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) List(ctx context.Context) ([]domain.Coach, error) {
	var coaches []domain.Coach
	if err := r.db.WithContext(ctx).Order("created_at").Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

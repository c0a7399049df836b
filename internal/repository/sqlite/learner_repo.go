package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// learnerRepository implements repository.LearnerRepository.
type learnerRepository struct {
	db *gorm.DB
}

// NewLearnerRepository creates a new learner repository backed by sqlite.
func NewLearnerRepository(db *gorm.DB) repository.LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) Create(ctx context.Context, learner *domain.Learner) error {
	return r.db.WithContext(ctx).Create(learner).Error
}

func (r *learnerRepository) GetByID(ctx context.Context, id string) (*domain.Learner, error) {
	var learner domain.Learner
	err := r.db.WithContext(ctx).First(&learner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &learner, nil
}

// List returns all learners in registration order.
func (r *learnerRepository) List(ctx context.Context) ([]domain.Learner, error) {
	var learners []domain.Learner
	if err := r.db.WithContext(ctx).Order("created_at").Find(&learners).Error; err != nil {
		return nil, err
	}
	return learners, nil
}

func (r *learnerRepository) Update(ctx context.Context, learner *domain.Learner) error {
	return r.db.WithContext(ctx).Save(learner).Error
}

func (r *learnerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Learner{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

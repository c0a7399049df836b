package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// reviewRepository implements repository.ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository backed by sqlite.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return "", err
	}
	return review.ID, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var review domain.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// GetByLessonID returns every review ever submitted for a lesson, oldest
// first.
func (r *reviewRepository) GetByLessonID(ctx context.Context, lessonID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

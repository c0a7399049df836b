package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// bookingRepository implements repository.BookingRepository.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking ledger backed by sqlite.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Learner").Preload("Lesson").Preload("Lesson.Coach").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetByLearnerID returns a learner's bookings, oldest first.
func (r *bookingRepository) GetByLearnerID(ctx context.Context, learnerID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Learner").Preload("Lesson").Preload("Lesson.Coach").
		Where("learner_id = ?", learnerID).
		Order("created_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Learner").Preload("Lesson").Preload("Lesson.Coach").
		Order("created_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error
}

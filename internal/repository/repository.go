package repository

import (
	"context"
	"time"

	"hjss/swim-school/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// LearnerRepository defines the interface for interacting with learner data.
type LearnerRepository interface {
	Create(ctx context.Context, learner *domain.Learner) error
	GetByID(ctx context.Context, id string) (*domain.Learner, error)
	List(ctx context.Context) ([]domain.Learner, error) // registration order
	Update(ctx context.Context, learner *domain.Learner) error
	Count(ctx context.Context) (int64, error)
}

// CoachRepository defines the interface for interacting with coach data.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (string, error)
	GetByName(ctx context.Context, name string) (*domain.Coach, error)
	List(ctx context.Context) ([]domain.Coach, error)
}

// LessonRepository defines the interface for interacting with the timetable.
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) (uint, error)
	GetByID(ctx context.Context, id uint) (*domain.Lesson, error)
	GetByDateTime(ctx context.Context, date time.Time, timeSlot string) (*domain.Lesson, error)
	List(ctx context.Context) ([]domain.Lesson, error) // timetable insertion order
	Update(ctx context.Context, lesson *domain.Lesson) error
}

// BookingRepository defines the interface for interacting with the booking
// ledger. It is the single source of truth for booking state.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByLearnerID(ctx context.Context, learnerID string) ([]domain.Booking, error) // creation order
	List(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// ReviewRepository defines the interface for interacting with review data.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByLessonID(ctx context.Context, lessonID uint) ([]domain.Review, error)
}

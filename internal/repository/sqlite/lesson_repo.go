package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// lessonRepository implements repository.LessonRepository.
type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new timetable repository backed by sqlite.
func NewLessonRepository(db *gorm.DB) repository.LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *domain.Lesson) (uint, error) {
	lesson.Date = domain.DateOnly(lesson.Date)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(lesson).Error; err != nil {
		return 0, err
	}
	return lesson.ID, nil
}

func (r *lessonRepository) GetByID(ctx context.Context, id uint) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).Preload("Coach").First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// GetByDateTime resolves a lesson by its (date, time slot) pair, the way a
// learner picks one off the printed timetable.
func (r *lessonRepository) GetByDateTime(ctx context.Context, date time.Time, timeSlot string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).Preload("Coach").
		Where("date = ? AND time_slot = ?", domain.DateOnly(date), timeSlot).
		First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// List returns the whole timetable in insertion order.
func (r *lessonRepository) List(ctx context.Context) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	if err := r.db.WithContext(ctx).Preload("Coach").Order("id").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepository) Update(ctx context.Context, lesson *domain.Lesson) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(lesson).Error
}

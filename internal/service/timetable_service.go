package service

import (
	"context"
	"errors"
	"time"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// TimetableService answers read-only queries over the lesson timetable.
type TimetableService interface {
	// List returns future lessons matching every provided filter. A nil day,
	// zero grade or empty coach name means "any". Order is timetable
	// insertion order, and the result is never nil.
	List(ctx context.Context, day *time.Weekday, grade domain.Grade, coachName string) ([]domain.Lesson, error)

	// FindLesson resolves a lesson by exact date and time slot. It returns
	// (nil, nil) when no lesson matches.
	FindLesson(ctx context.Context, date time.Time, timeSlot string) (*domain.Lesson, error)
}

type timetableService struct {
	lessonRepo repository.LessonRepository
}

// NewTimetableService creates a new instance of timetableService.
func NewTimetableService(lessonRepo repository.LessonRepository) TimetableService {
	return &timetableService{lessonRepo: lessonRepo}
}

func (s *timetableService) List(ctx context.Context, day *time.Weekday, grade domain.Grade, coachName string) ([]domain.Lesson, error) {
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	filtered := make([]domain.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if !lesson.Date.After(today) {
			continue // past lessons never show on the timetable
		}
		if day != nil && lesson.Date.Weekday() != *day {
			continue
		}
		if grade != 0 && lesson.Grade != grade {
			continue
		}
		if coachName != "" && lesson.Coach.Name != coachName {
			continue
		}
		filtered = append(filtered, lesson)
	}
	return filtered, nil
}

func (s *timetableService) FindLesson(ctx context.Context, date time.Time, timeSlot string) (*domain.Lesson, error) {
	lesson, err := s.lessonRepo.GetByDateTime(ctx, date, timeSlot)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lesson, nil
}

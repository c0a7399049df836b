package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
	"hjss/swim-school/internal/repository/sqlite"
	"hjss/swim-school/internal/service"
)

// env wires the full service stack over a fresh in-memory database.
type env struct {
	ctx context.Context

	coachRepo   repository.CoachRepository
	learnerRepo repository.LearnerRepository
	lessonRepo  repository.LessonRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository

	timetable service.TimetableService
	bookings  service.BookingService
	reports   service.ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	e := &env{
		ctx:         context.Background(),
		coachRepo:   sqlite.NewCoachRepository(db),
		learnerRepo: sqlite.NewLearnerRepository(db),
		lessonRepo:  sqlite.NewLessonRepository(db),
		bookingRepo: sqlite.NewBookingRepository(db),
		reviewRepo:  sqlite.NewReviewRepository(db),
	}
	e.timetable = service.NewTimetableService(e.lessonRepo)
	e.bookings = service.NewBookingService(e.learnerRepo, e.lessonRepo, e.bookingRepo, e.reviewRepo, zap.NewNop())
	e.reports = service.NewReportService(e.coachRepo, e.lessonRepo, e.learnerRepo, e.bookingRepo, e.reviewRepo)
	return e
}

func (e *env) addCoach(t *testing.T, name string) domain.Coach {
	t.Helper()
	coach := domain.Coach{Name: name}
	if _, err := e.coachRepo.Create(e.ctx, &coach); err != nil {
		t.Fatalf("create coach %s: %v", name, err)
	}
	return coach
}

func (e *env) addLearner(t *testing.T, id string, grade domain.Grade) *domain.Learner {
	t.Helper()
	learner := &domain.Learner{
		ID:               id,
		Name:             "Learner " + id,
		Gender:           domain.GenderFemale,
		Age:              8,
		EmergencyContact: "07000 000000",
		CurrentGrade:     grade,
	}
	if err := e.learnerRepo.Create(e.ctx, learner); err != nil {
		t.Fatalf("create learner %s: %v", id, err)
	}
	return learner
}

func (e *env) addLesson(t *testing.T, coach domain.Coach, grade domain.Grade, date time.Time, slot string, capacity int) *domain.Lesson {
	t.Helper()
	lesson := &domain.Lesson{
		Grade:          grade,
		Date:           date,
		TimeSlot:       slot,
		CoachID:        coach.ID,
		Coach:          coach,
		Capacity:       capacity,
		AvailableSlots: capacity,
	}
	if _, err := e.lessonRepo.Create(e.ctx, lesson); err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	return lesson
}

// addBooking inserts a booking directly into the ledger, bypassing the
// rules engine, for tests that need a particular starting state.
func (e *env) addBooking(t *testing.T, id string, learner *domain.Learner, lesson *domain.Lesson, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	booking := &domain.Booking{
		ID:          id,
		BookingDate: lesson.Date,
		LearnerID:   learner.ID,
		LessonID:    lesson.ID,
		Status:      status,
	}
	if err := e.bookingRepo.Create(e.ctx, booking); err != nil {
		t.Fatalf("create booking %s: %v", id, err)
	}
	return booking
}

func (e *env) lessonSlots(t *testing.T, id uint) int {
	t.Helper()
	lesson, err := e.lessonRepo.GetByID(e.ctx, id)
	if err != nil {
		t.Fatalf("get lesson %d: %v", id, err)
	}
	return lesson.AvailableSlots
}

func (e *env) learnerGrade(t *testing.T, id string) domain.Grade {
	t.Helper()
	learner, err := e.learnerRepo.GetByID(e.ctx, id)
	if err != nil {
		t.Fatalf("get learner %s: %v", id, err)
	}
	return learner.CurrentGrade
}

func daysFromToday(days int) time.Time {
	return domain.Today().AddDate(0, 0, days)
}

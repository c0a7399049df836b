package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
	"hjss/swim-school/internal/repository/sqlite"

	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func mustCreateCoach(t *testing.T, repo repository.CoachRepository, name string) domain.Coach {
	t.Helper()
	coach := domain.Coach{Name: name}
	if _, err := repo.Create(context.Background(), &coach); err != nil {
		t.Fatalf("create coach: %v", err)
	}
	return coach
}

func TestCoachRepository(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewCoachRepository(db)
	ctx := context.Background()

	created := mustCreateCoach(t, repo, "Helen")
	if created.ID == "" {
		t.Fatal("Create left the coach ID empty")
	}

	coach, err := repo.GetByName(ctx, "Helen")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if coach.ID != created.ID {
		t.Errorf("GetByName ID = %s, want %s", coach.ID, created.ID)
	}

	if _, err := repo.GetByName(ctx, "Nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByName(Nobody) error = %v, want ErrNotFound", err)
	}
}

func TestLessonGetByDateTime(t *testing.T) {
	db := openDB(t)
	coaches := sqlite.NewCoachRepository(db)
	lessons := sqlite.NewLessonRepository(db)
	ctx := context.Background()

	coach := mustCreateCoach(t, coaches, "Helen")
	date := time.Date(2026, time.September, 7, 15, 30, 0, 0, time.UTC) // time of day is dropped on insert
	lesson := &domain.Lesson{
		Grade: domain.Grade2, Date: date, TimeSlot: "16:00",
		CoachID: coach.ID, Capacity: 4, AvailableSlots: 4,
	}
	if _, err := lessons.Create(ctx, lesson); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := lessons.GetByDateTime(ctx, date, "16:00")
	if err != nil {
		t.Fatalf("GetByDateTime: %v", err)
	}
	if found.ID != lesson.ID {
		t.Errorf("GetByDateTime ID = %d, want %d", found.ID, lesson.ID)
	}
	if found.Coach.Name != "Helen" {
		t.Errorf("coach not loaded: %+v", found.Coach)
	}
	if !found.Date.Equal(domain.DateOnly(date)) {
		t.Errorf("date = %v, want the day normalized to midnight", found.Date)
	}

	if _, err := lessons.GetByDateTime(ctx, date, "17:00"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByDateTime(empty slot) error = %v, want ErrNotFound", err)
	}
}

func TestLessonListInsertionOrder(t *testing.T) {
	db := openDB(t)
	coaches := sqlite.NewCoachRepository(db)
	lessons := sqlite.NewLessonRepository(db)
	ctx := context.Background()

	coach := mustCreateCoach(t, coaches, "Helen")
	dates := []time.Time{
		time.Date(2026, time.September, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		lesson := &domain.Lesson{Grade: domain.Grade1, Date: date, TimeSlot: "16:00", CoachID: coach.ID, Capacity: 4, AvailableSlots: 4}
		if _, err := lessons.Create(ctx, lesson); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	listed, err := lessons.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("List returned %d lessons, want 3", len(listed))
	}
	for i, lesson := range listed {
		if !lesson.Date.Equal(dates[i]) {
			t.Errorf("lesson %d date = %v, want insertion order date %v", i, lesson.Date, dates[i])
		}
	}
}

func TestBookingRepository(t *testing.T) {
	db := openDB(t)
	coaches := sqlite.NewCoachRepository(db)
	learners := sqlite.NewLearnerRepository(db)
	lessons := sqlite.NewLessonRepository(db)
	bookings := sqlite.NewBookingRepository(db)
	ctx := context.Background()

	coach := mustCreateCoach(t, coaches, "Helen")
	learner := &domain.Learner{ID: "L1", Name: "John Doe", Gender: domain.GenderMale, Age: 6, CurrentGrade: domain.Grade1}
	if err := learners.Create(ctx, learner); err != nil {
		t.Fatalf("create learner: %v", err)
	}

	lesson := &domain.Lesson{Grade: domain.Grade1, Date: domain.Today(), TimeSlot: "16:00", CoachID: coach.ID, Capacity: 4, AvailableSlots: 4}
	if _, err := lessons.Create(ctx, lesson); err != nil {
		t.Fatalf("create lesson: %v", err)
	}

	booking := &domain.Booking{ID: "B1", BookingDate: lesson.Date, LearnerID: learner.ID, LessonID: lesson.ID, Status: domain.StatusBooked}
	if err := bookings.Create(ctx, booking); err != nil {
		t.Fatalf("Create: %v", err)
	}

	loaded, err := bookings.GetByID(ctx, "B1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.Learner.Name != "John Doe" {
		t.Errorf("learner not loaded: %+v", loaded.Learner)
	}
	if loaded.Lesson.Coach.Name != "Helen" {
		t.Errorf("lesson coach not loaded: %+v", loaded.Lesson)
	}

	if _, err := bookings.GetByID(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByID(missing) error = %v, want ErrNotFound", err)
	}

	byLearner, err := bookings.GetByLearnerID(ctx, learner.ID)
	if err != nil {
		t.Fatalf("GetByLearnerID: %v", err)
	}
	if len(byLearner) != 1 || byLearner[0].ID != "B1" {
		t.Fatalf("GetByLearnerID = %+v, want the single booking B1", byLearner)
	}

	loaded.Status = domain.StatusCancelled
	if err := bookings.Update(ctx, loaded); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := bookings.GetByID(ctx, "B1")
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if updated.Status != domain.StatusCancelled {
		t.Errorf("status = %s, want %s", updated.Status, domain.StatusCancelled)
	}
}

func TestLearnerRepositoryCount(t *testing.T) {
	db := openDB(t)
	learners := sqlite.NewLearnerRepository(db)
	ctx := context.Background()

	count, err := learners.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("Count = %d, want 0 on an empty roster", count)
	}

	for i, id := range []string{"L1", "L2", "L3"} {
		learner := &domain.Learner{ID: id, Name: "Learner " + id, Gender: domain.GenderFemale, Age: 5 + i, CurrentGrade: domain.Grade1}
		if err := learners.Create(ctx, learner); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	count, err = learners.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Fatalf("Count = %d, want 3", count)
	}

	if _, err := learners.GetByID(ctx, "L9"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByID(L9) error = %v, want ErrNotFound", err)
	}
}

func TestReviewRepository(t *testing.T) {
	db := openDB(t)
	reviews := sqlite.NewReviewRepository(db)
	ctx := context.Background()

	review := &domain.Review{
		BookingID: "B1", LessonID: 1, LearnerID: "L1",
		GradeValue: 1, Rating: domain.RatingSatisfied,
		LessonDate: domain.Today(), ReviewDate: domain.Today(),
	}
	id, err := reviews.Create(ctx, review)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty review ID")
	}

	loaded, err := reviews.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.Rating != domain.RatingSatisfied {
		t.Errorf("rating = %s, want %s", loaded.Rating, domain.RatingSatisfied)
	}

	byLesson, err := reviews.GetByLessonID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByLessonID: %v", err)
	}
	if len(byLesson) != 1 {
		t.Fatalf("GetByLessonID returned %d reviews, want 1", len(byLesson))
	}

	if _, err := reviews.GetByID(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

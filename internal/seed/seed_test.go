package seed_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
	"hjss/swim-school/internal/repository/sqlite"
	"hjss/swim-school/internal/seed"
)

type fixture struct {
	coachRepo   repository.CoachRepository
	lessonRepo  repository.LessonRepository
	learnerRepo repository.LearnerRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
}

func runSeeder(t *testing.T, weeks, capacity int) *fixture {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	f := &fixture{
		coachRepo:   sqlite.NewCoachRepository(db),
		lessonRepo:  sqlite.NewLessonRepository(db),
		learnerRepo: sqlite.NewLearnerRepository(db),
		bookingRepo: sqlite.NewBookingRepository(db),
		reviewRepo:  sqlite.NewReviewRepository(db),
	}

	seeder := seed.New(f.coachRepo, f.lessonRepo, f.learnerRepo, f.bookingRepo, f.reviewRepo, zap.NewNop())
	if err := seeder.Run(context.Background(), weeks, capacity); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return f
}

func TestSeedCounts(t *testing.T) {
	f := runSeeder(t, 4, 4)
	ctx := context.Background()

	coaches, err := f.coachRepo.List(ctx)
	if err != nil {
		t.Fatalf("list coaches: %v", err)
	}
	if len(coaches) != 4 {
		t.Errorf("coaches = %d, want 4", len(coaches))
	}

	lessons, err := f.lessonRepo.List(ctx)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	// 11 past-week lessons plus 11 per future week.
	if want := 11 + 11*4; len(lessons) != want {
		t.Errorf("lessons = %d, want %d", len(lessons), want)
	}

	count, err := f.learnerRepo.Count(ctx)
	if err != nil {
		t.Fatalf("count learners: %v", err)
	}
	if count != 15 {
		t.Errorf("learners = %d, want 15", count)
	}

	bookings, err := f.bookingRepo.List(ctx)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 5 {
		t.Errorf("bookings = %d, want 5", len(bookings))
	}
}

func TestSeedPastWeekIsInThePast(t *testing.T) {
	f := runSeeder(t, 1, 4)

	lessons, err := f.lessonRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}

	today := domain.Today()
	for i, lesson := range lessons {
		if i < 11 {
			if !lesson.Date.Before(today) {
				t.Errorf("lesson %d dated %s, want before today", i, lesson.Date.Format(domain.DateLayout))
			}
		} else {
			if !lesson.Date.After(today) {
				t.Errorf("lesson %d dated %s, want after today", i, lesson.Date.Format(domain.DateLayout))
			}
		}
	}
}

func TestSeedBookingStatusesAndSlots(t *testing.T) {
	f := runSeeder(t, 1, 4)
	ctx := context.Background()

	bookings, err := f.bookingRepo.List(ctx)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	byID := make(map[string]domain.Booking, len(bookings))
	for _, booking := range bookings {
		byID[booking.ID] = booking
	}

	// The first three bookings are attended with a review attached; the last
	// two are still open.
	for _, id := range []string{"B1L1", "B2L2", "B3L3"} {
		booking, found := byID[id]
		if !found {
			t.Fatalf("booking %s not seeded", id)
		}
		if booking.Status != domain.StatusAttended {
			t.Errorf("%s status = %s, want %s", id, booking.Status, domain.StatusAttended)
		}
		if booking.ReviewID == nil {
			t.Errorf("%s has no review", id)
			continue
		}
		if _, err := f.reviewRepo.GetByID(ctx, *booking.ReviewID); err != nil {
			t.Errorf("%s review lookup: %v", id, err)
		}
	}
	for _, id := range []string{"B4L4", "B5L5"} {
		booking, found := byID[id]
		if !found {
			t.Fatalf("booking %s not seeded", id)
		}
		if booking.Status != domain.StatusBooked {
			t.Errorf("%s status = %s, want %s", id, booking.Status, domain.StatusBooked)
		}
	}

	lessons, err := f.lessonRepo.List(ctx)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	// Attendance frees the seat again, so the first three lessons are back to
	// capacity while the two still-open bookings each hold one.
	for i := 0; i < 3; i++ {
		if lessons[i].AvailableSlots != 4 {
			t.Errorf("lesson %d slots = %d, want 4", i, lessons[i].AvailableSlots)
		}
	}
	for i := 3; i < 5; i++ {
		if lessons[i].AvailableSlots != 3 {
			t.Errorf("lesson %d slots = %d, want 3", i, lessons[i].AvailableSlots)
		}
	}
}

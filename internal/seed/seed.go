package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// Seeder populates the school with its default coaches, timetable, learners
// and a handful of bookings so the console has data to work with from the
// first prompt.
type Seeder struct {
	coachRepo   repository.CoachRepository
	lessonRepo  repository.LessonRepository
	learnerRepo repository.LearnerRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	logger      *zap.Logger
}

// New creates a Seeder over the given repositories.
func New(
	coachRepo repository.CoachRepository,
	lessonRepo repository.LessonRepository,
	learnerRepo repository.LearnerRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		coachRepo:   coachRepo,
		lessonRepo:  lessonRepo,
		learnerRepo: learnerRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// Run loads the fixture data: a timetable covering the previous week plus
// the given number of future weeks, 15 learners, 5 bookings on the past
// week's lessons, and 3 of those marked attended with reviews.
func (s *Seeder) Run(ctx context.Context, weeks, capacity int) error {
	coaches, err := s.coaches(ctx)
	if err != nil {
		return err
	}

	lessons, err := s.timetable(ctx, coaches, weeks, capacity)
	if err != nil {
		return err
	}

	learners, err := s.learners(ctx)
	if err != nil {
		return err
	}

	bookings, err := s.bookings(ctx, lessons, learners)
	if err != nil {
		return err
	}

	if err := s.reviews(ctx, bookings); err != nil {
		return err
	}

	s.logger.Info("seed data loaded",
		zap.Int("coaches", len(coaches)),
		zap.Int("lessons", len(lessons)),
		zap.Int("learners", len(learners)),
		zap.Int("bookings", len(bookings)),
	)
	return nil
}

func (s *Seeder) coaches(ctx context.Context) ([]domain.Coach, error) {
	coaches := []domain.Coach{
		{Name: "Shivani"},
		{Name: "John"},
		{Name: "Helen"},
		{Name: "Alice"},
	}
	for i := range coaches {
		if _, err := s.coachRepo.Create(ctx, &coaches[i]); err != nil {
			return nil, err
		}
	}
	return coaches, nil
}

// slot is one timetable entry template: grade, weekday, time and coach index.
type slot struct {
	grade domain.Grade
	day   time.Weekday
	time  string
	coach int
}

// The previous week's pattern seeds lessons that can be marked attended.
var pastWeek = []slot{
	{domain.Grade1, time.Monday, "16:00", 0},
	{domain.Grade2, time.Monday, "17:00", 1},
	{domain.Grade3, time.Monday, "18:00", 2},
	{domain.Grade1, time.Wednesday, "16:00", 0},
	{domain.Grade2, time.Wednesday, "17:00", 1},
	{domain.Grade3, time.Wednesday, "18:00", 2},
	{domain.Grade1, time.Friday, "16:00", 0},
	{domain.Grade2, time.Friday, "17:00", 1},
	{domain.Grade3, time.Friday, "18:00", 2},
	{domain.Grade1, time.Saturday, "14:00", 0},
	{domain.Grade2, time.Saturday, "15:00", 1},
}

// The repeating weekly pattern for future weeks covers all five grades.
var futureWeek = []slot{
	{domain.Grade1, time.Monday, "16:00", 0},
	{domain.Grade2, time.Monday, "17:00", 1},
	{domain.Grade3, time.Monday, "18:00", 2},
	{domain.Grade4, time.Wednesday, "16:00", 2},
	{domain.Grade5, time.Wednesday, "17:00", 0},
	{domain.Grade1, time.Wednesday, "18:00", 1},
	{domain.Grade2, time.Friday, "16:00", 3},
	{domain.Grade3, time.Friday, "17:00", 2},
	{domain.Grade4, time.Friday, "18:00", 3},
	{domain.Grade5, time.Saturday, "14:00", 1},
	{domain.Grade1, time.Saturday, "15:00", 3},
}

func (s *Seeder) timetable(ctx context.Context, coaches []domain.Coach, weeks, capacity int) ([]*domain.Lesson, error) {
	today := domain.Today()
	var lessons []*domain.Lesson

	add := func(tpl slot, date time.Time) error {
		lesson := &domain.Lesson{
			Grade:          tpl.grade,
			Date:           date,
			TimeSlot:       tpl.time,
			CoachID:        coaches[tpl.coach].ID,
			Coach:          coaches[tpl.coach],
			Capacity:       capacity,
			AvailableSlots: capacity,
		}
		if _, err := s.lessonRepo.Create(ctx, lesson); err != nil {
			return err
		}
		lessons = append(lessons, lesson)
		return nil
	}

	for _, tpl := range pastWeek {
		if err := add(tpl, previousWeekday(today, tpl.day)); err != nil {
			return nil, err
		}
	}
	for week := 0; week < weeks; week++ {
		base := today.AddDate(0, 0, 7*week)
		for _, tpl := range futureWeek {
			if err := add(tpl, nextWeekday(base, tpl.day)); err != nil {
				return nil, err
			}
		}
	}
	return lessons, nil
}

func (s *Seeder) learners(ctx context.Context) ([]domain.Learner, error) {
	learners := []domain.Learner{
		{ID: "L1", Name: "John Doe", Gender: domain.GenderMale, Age: 4, EmergencyContact: "Emergency Contact 1", CurrentGrade: domain.Grade1},
		{ID: "L2", Name: "Jane Smith", Gender: domain.GenderFemale, Age: 5, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L3", Name: "Emily Johnson", Gender: domain.GenderFemale, Age: 6, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade2},
		{ID: "L4", Name: "Michael Williams", Gender: domain.GenderMale, Age: 7, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade4},
		{ID: "L5", Name: "Sarah Brown", Gender: domain.GenderFemale, Age: 8, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade5},
		{ID: "L6", Name: "David Jones", Gender: domain.GenderMale, Age: 9, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L7", Name: "Jessica Davis", Gender: domain.GenderFemale, Age: 10, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L8", Name: "Daniel Miller", Gender: domain.GenderMale, Age: 11, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L9", Name: "Amanda Wilson", Gender: domain.GenderFemale, Age: 10, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L10", Name: "James Taylor", Gender: domain.GenderMale, Age: 9, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L11", Name: "Ashley Anderson", Gender: domain.GenderFemale, Age: 8, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L12", Name: "Robert Martinez", Gender: domain.GenderMale, Age: 7, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L13", Name: "Jennifer Lee", Gender: domain.GenderFemale, Age: 6, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L14", Name: "William Clark", Gender: domain.GenderMale, Age: 5, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
		{ID: "L15", Name: "Christopher Hall", Gender: domain.GenderMale, Age: 4, EmergencyContact: "Emergency Contact 2", CurrentGrade: domain.Grade1},
	}
	for i := range learners {
		if err := s.learnerRepo.Create(ctx, &learners[i]); err != nil {
			return nil, err
		}
	}
	return learners, nil
}

// bookings puts the first five learners on the first five lessons of the
// past week, taking a seat on each.
func (s *Seeder) bookings(ctx context.Context, lessons []*domain.Lesson, learners []domain.Learner) ([]*domain.Booking, error) {
	ids := []string{"B1L1", "B2L2", "B3L3", "B4L4", "B5L5"}
	bookings := make([]*domain.Booking, 0, len(ids))

	for i, id := range ids {
		lesson := lessons[i]
		booking := &domain.Booking{
			ID:          id,
			BookingDate: domain.Today(),
			LearnerID:   learners[i].ID,
			LessonID:    lesson.ID,
			Status:      domain.StatusBooked,
		}
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return nil, err
		}

		lesson.AvailableSlots--
		if err := s.lessonRepo.Update(ctx, lesson); err != nil {
			return nil, err
		}
		booking.Lesson = *lesson
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// reviews marks the first three seeded bookings attended and attaches a
// review to each, freeing the seats again.
func (s *Seeder) reviews(ctx context.Context, bookings []*domain.Booking) error {
	fixtures := []struct {
		rating  domain.Rating
		comment string
	}{
		{domain.RatingSatisfied, "Great lesson!"},
		{domain.RatingVerySatisfied, "Fantastic coaching!"},
		{domain.RatingOK, "Enjoyed the session!"},
	}

	for i, fixture := range fixtures {
		booking := bookings[i]
		booking.Status = domain.StatusAttended

		lesson := booking.Lesson
		lesson.AvailableSlots++
		if err := s.lessonRepo.Update(ctx, &lesson); err != nil {
			return err
		}

		review := &domain.Review{
			BookingID:  booking.ID,
			LessonID:   booking.LessonID,
			LearnerID:  booking.LearnerID,
			GradeValue: int(lesson.Grade),
			Rating:     fixture.rating,
			LessonDate: lesson.Date,
			ReviewDate: domain.Today(),
			Comment:    fixture.comment,
		}
		reviewID, err := s.reviewRepo.Create(ctx, review)
		if err != nil {
			return err
		}

		booking.ReviewID = &reviewID
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return err
		}
	}
	return nil
}

// previousWeekday finds the closest given weekday strictly before from.
func previousWeekday(from time.Time, day time.Weekday) time.Time {
	d := from.AddDate(0, 0, -1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// nextWeekday finds the closest given weekday strictly after from.
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

package service

import (
	"context"
	"time"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// CoachRating is one row of the coach ratings report.
type CoachRating struct {
	CoachName     string
	AverageRating float64
}

// LearnerMonthlySummary is one row of the monthly booking summary.
type LearnerMonthlySummary struct {
	LearnerID    string
	LearnerName  string
	CurrentGrade domain.Grade
	Booked       int
	Changed      int
	Cancelled    int
	Attended     int
}

// BookingDetail is one row of the detailed monthly learner report.
type BookingDetail struct {
	LearnerID string
	BookingID string
	Grade     domain.Grade
	Date      time.Time
	TimeSlot  string
	CoachName string
	Status    domain.BookingStatus
	Review    string // rating name, or "-" when the booking has no review
}

// ReportService derives read-only aggregations from the ledger and
// timetable.
type ReportService interface {
	// CoachRatings averages review ratings per coach over every lesson they
	// taught. Coaches without reviews report an average of 0.
	CoachRatings(ctx context.Context) ([]CoachRating, error)

	// MonthlySummary counts each learner's bookings by status for lessons
	// dated inside the given month of the current year.
	MonthlySummary(ctx context.Context, month time.Month) ([]LearnerMonthlySummary, error)

	// DetailedReport lists each learner's bookings for lessons dated inside
	// the given month of the current year.
	DetailedReport(ctx context.Context, month time.Month) ([]BookingDetail, error)
}

type reportService struct {
	coachRepo   repository.CoachRepository
	lessonRepo  repository.LessonRepository
	learnerRepo repository.LearnerRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
}

// NewReportService creates a new instance of reportService.
func NewReportService(
	coachRepo repository.CoachRepository,
	lessonRepo repository.LessonRepository,
	learnerRepo repository.LearnerRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
) ReportService {
	return &reportService{
		coachRepo:   coachRepo,
		lessonRepo:  lessonRepo,
		learnerRepo: learnerRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

// monthBounds returns the first and last day of the month in the current
// year. Both report flavors treat the last day as exclusive.
func monthBounds(month time.Month) (start, end time.Time) {
	now := time.Now()
	start = time.Date(now.Year(), month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func (s *reportService) CoachRatings(ctx context.Context) ([]CoachRating, error) {
	coaches, err := s.coachRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(coaches))
	counts := make(map[string]int, len(coaches))
	for _, lesson := range lessons {
		reviews, err := s.reviewRepo.GetByLessonID(ctx, lesson.ID)
		if err != nil {
			return nil, err
		}
		for _, review := range reviews {
			totals[lesson.Coach.Name] += int(review.Rating)
			counts[lesson.Coach.Name]++
		}
	}

	ratings := make([]CoachRating, 0, len(coaches))
	for _, coach := range coaches {
		var avg float64
		if counts[coach.Name] > 0 {
			avg = float64(totals[coach.Name]) / float64(counts[coach.Name])
		}
		ratings = append(ratings, CoachRating{CoachName: coach.Name, AverageRating: avg})
	}
	return ratings, nil
}

func (s *reportService) MonthlySummary(ctx context.Context, month time.Month) ([]LearnerMonthlySummary, error) {
	start, end := monthBounds(month)

	learners, err := s.learnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]LearnerMonthlySummary, 0, len(learners))
	for _, learner := range learners {
		row := LearnerMonthlySummary{
			LearnerID:    learner.ID,
			LearnerName:  learner.Name,
			CurrentGrade: learner.CurrentGrade,
		}

		bookings, err := s.bookingRepo.GetByLearnerID(ctx, learner.ID)
		if err != nil {
			return nil, err
		}
		for _, booking := range bookings {
			date := booking.Lesson.Date
			if date.Before(start) || !date.Before(end) {
				continue
			}
			// A change keeps the booking BOOKED, so the changed column never
			// accumulates.
			switch booking.Status {
			case domain.StatusBooked:
				row.Booked++
			case domain.StatusCancelled:
				row.Cancelled++
			case domain.StatusAttended:
				row.Attended++
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *reportService) DetailedReport(ctx context.Context, month time.Month) ([]BookingDetail, error) {
	start, end := monthBounds(month)

	learners, err := s.learnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var rows []BookingDetail
	for _, learner := range learners {
		bookings, err := s.bookingRepo.GetByLearnerID(ctx, learner.ID)
		if err != nil {
			return nil, err
		}
		for _, booking := range bookings {
			date := booking.Lesson.Date
			if !(date.Equal(start) || (date.After(start) && date.Before(end))) {
				continue
			}

			reviewLabel := "-"
			if booking.ReviewID != nil {
				review, err := s.reviewRepo.GetByID(ctx, *booking.ReviewID)
				if err != nil {
					return nil, err
				}
				reviewLabel = review.Rating.String()
			}

			rows = append(rows, BookingDetail{
				LearnerID: learner.ID,
				BookingID: booking.ID,
				Grade:     booking.Lesson.Grade,
				Date:      booking.Lesson.Date,
				TimeSlot:  booking.Lesson.TimeSlot,
				CoachName: booking.Lesson.Coach.Name,
				Status:    booking.Status,
				Review:    reviewLabel,
			})
		}
	}
	return rows, nil
}

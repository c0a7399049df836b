package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/repository"
)

// BookingService is the booking rules engine. It owns every transition of a
// booking's lifecycle and the capacity/grade side effects that go with it.
type BookingService interface {
	// Create books a lesson for a learner and returns the new booking ID.
	// Lesson and learner are resolved by the caller; nil means the lookup
	// failed upstream.
	Create(ctx context.Context, lesson *domain.Lesson, learner *domain.Learner) (string, error)

	// Change repoints an existing booking at a different lesson. The booking
	// keeps its ID and stays BOOKED.
	Change(ctx context.Context, bookingID string, newLesson *domain.Lesson) (string, error)

	// Cancel marks a booking CANCELLED and frees its seat.
	Cancel(ctx context.Context, bookingID string) (string, error)

	// MarkAttended marks a booking ATTENDED once its lesson date has passed.
	MarkAttended(ctx context.Context, bookingID string) (string, error)

	// SubmitReview records a rating for an attended booking.
	SubmitReview(ctx context.Context, learner *domain.Learner, bookingID string, rating int) (string, error)

	// Get resolves a booking by ID, returning (nil, nil) when none exists.
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)

	// List returns every booking in the ledger, oldest first.
	List(ctx context.Context) ([]domain.Booking, error)
}

type bookingService struct {
	learnerRepo repository.LearnerRepository
	lessonRepo  repository.LessonRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	logger      *zap.Logger
}

// NewBookingService creates a new instance of bookingService.
func NewBookingService(
	learnerRepo repository.LearnerRepository,
	lessonRepo repository.LessonRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	logger *zap.Logger,
) BookingService {
	return &bookingService{
		learnerRepo: learnerRepo,
		lessonRepo:  lessonRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// eligible reports whether a learner at learnerGrade may take a lesson at
// lessonGrade: the learner's own grade or exactly one above it, or any grade
// at or below their own.
func eligible(learnerGrade, lessonGrade domain.Grade) bool {
	return (learnerGrade <= lessonGrade && lessonGrade <= learnerGrade+1) ||
		learnerGrade >= lessonGrade
}

// newBookingID concatenates the learner ID with the wall clock in unix
// milliseconds. Unique within a single run, which is all the ledger needs.
func newBookingID(learnerID string) string {
	return learnerID + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (s *bookingService) Create(ctx context.Context, lesson *domain.Lesson, learner *domain.Learner) (string, error) {
	if lesson == nil || learner == nil {
		return "", fmt.Errorf("%w: lesson or learner not found, retry with valid details", ErrInvalidLesson)
	}

	if lesson.AvailableSlots <= 0 {
		return "", fmt.Errorf("%w for lesson %s on %s", ErrNoSlotsAvailable, lesson.Grade, lesson.Date.Format(domain.DateLayout))
	}

	if !eligible(learner.CurrentGrade, lesson.Grade) {
		return "", fmt.Errorf("%w: learner cannot book this lesson, it is either too advanced or not available for their grade", ErrInvalidBooking)
	}

	existing, err := s.bookingRepo.GetByLearnerID(ctx, learner.ID)
	if err != nil {
		return "", err
	}
	for _, b := range existing {
		if b.Lesson.Grade == lesson.Grade && domain.SameDay(b.Lesson.Date, lesson.Date) {
			return "", fmt.Errorf("%w for the lesson with booking id %s", ErrAlreadyRegistered, b.ID)
		}
	}

	booking := &domain.Booking{
		ID:          newBookingID(learner.ID),
		BookingDate: lesson.Date,
		LearnerID:   learner.ID,
		LessonID:    lesson.ID,
		Status:      domain.StatusBooked,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return "", err
	}

	// Booking one grade above promotes the learner to that grade.
	if lesson.Grade == learner.CurrentGrade+1 {
		learner.CurrentGrade = lesson.Grade
		if err := s.learnerRepo.Update(ctx, learner); err != nil {
			return "", err
		}
	}

	lesson.AvailableSlots--
	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return "", err
	}

	s.logger.Info("lesson booked",
		zap.String("booking_id", booking.ID),
		zap.String("learner_id", learner.ID),
		zap.Stringer("grade", lesson.Grade),
		zap.String("date", lesson.Date.Format(domain.DateLayout)),
		zap.Int("slots_left", lesson.AvailableSlots),
	)
	return booking.ID, nil
}

func (s *bookingService) Change(ctx context.Context, bookingID string, newLesson *domain.Lesson) (string, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if newLesson == nil {
		return "", fmt.Errorf("%w: lesson not found, retry with valid details", ErrInvalidLesson)
	}
	learner := booking.Learner

	if booking.Lesson.Date.Before(domain.Today()) {
		return "", fmt.Errorf("%w: learner %s has already attended the session %s on %s, change not allowed",
			ErrInvalidDate, learner.ID, booking.Lesson.Grade, booking.Lesson.Date.Format(domain.DateLayout))
	}

	if !eligible(learner.CurrentGrade, newLesson.Grade) {
		return "", fmt.Errorf("%w: learner cannot book this lesson, it is either too advanced or not available for their grade", ErrInvalidBooking)
	}

	// Checked against the fixed capacity, not the remaining slots.
	if newLesson.Capacity <= 0 {
		return "", fmt.Errorf("%w for lesson %s on %s", ErrNoSlotsAvailable, newLesson.Grade, newLesson.Date.Format(domain.DateLayout))
	}

	existing, err := s.bookingRepo.GetByLearnerID(ctx, learner.ID)
	if err != nil {
		return "", err
	}
	for _, b := range existing {
		if b.Lesson.Grade == newLesson.Grade && domain.SameDay(b.Lesson.Date, newLesson.Date) {
			return "", fmt.Errorf("%w for the lesson with booking id %s", ErrAlreadyRegistered, b.ID)
		}
	}

	// Hand the seat on the old lesson back before taking one on the new.
	oldLesson := booking.Lesson
	oldLesson.AvailableSlots++
	if err := s.lessonRepo.Update(ctx, &oldLesson); err != nil {
		return "", err
	}

	booking.LessonID = newLesson.ID
	booking.Lesson = *newLesson
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return "", err
	}

	if newLesson.Grade == learner.CurrentGrade+1 {
		learner.CurrentGrade = newLesson.Grade
		if err := s.learnerRepo.Update(ctx, &learner); err != nil {
			return "", err
		}
	}

	newLesson.AvailableSlots--
	if err := s.lessonRepo.Update(ctx, newLesson); err != nil {
		return "", err
	}

	s.logger.Info("booking changed",
		zap.String("booking_id", booking.ID),
		zap.String("learner_id", learner.ID),
		zap.Stringer("grade", newLesson.Grade),
		zap.String("date", newLesson.Date.Format(domain.DateLayout)),
	)
	return fmt.Sprintf("your booking %s has been successfully changed to lesson %s on %s",
		booking.ID, newLesson.Grade, newLesson.Date.Format(domain.DateLayout)), nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}

	if booking.Status == domain.StatusAttended {
		return "", fmt.Errorf("%w: booking %s is already attended", ErrInvalidBooking, booking.ID)
	}
	if booking.BookingDate.Before(domain.Today()) {
		return "", fmt.Errorf("%w: lesson already attended, cancel rejected", ErrInvalidDate)
	}

	booking.Status = domain.StatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return "", err
	}

	lesson := booking.Lesson
	lesson.AvailableSlots++
	if err := s.lessonRepo.Update(ctx, &lesson); err != nil {
		return "", err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", booking.ID),
		zap.String("learner_id", booking.LearnerID),
	)
	return fmt.Sprintf("your booking %s for lesson %s on %s has been cancelled successfully",
		booking.ID, lesson.Grade, lesson.Date.Format(domain.DateLayout)), nil
}

func (s *bookingService) MarkAttended(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}

	if booking.Status == domain.StatusCancelled {
		return "", fmt.Errorf("%w: booking %s is cancelled and cannot be changed", ErrInvalidBooking, booking.ID)
	}
	if booking.Lesson.Date.After(domain.Today()) {
		return "", fmt.Errorf("%w: cannot mark attended, the lesson has not started yet", ErrInvalidBooking)
	}

	booking.Status = domain.StatusAttended
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return "", err
	}

	// The seat comes back once the session has happened; available slots
	// track reservations that are still open.
	lesson := booking.Lesson
	lesson.AvailableSlots++
	if err := s.lessonRepo.Update(ctx, &lesson); err != nil {
		return "", err
	}

	s.logger.Info("booking attended",
		zap.String("booking_id", booking.ID),
		zap.String("learner_id", booking.LearnerID),
	)
	return fmt.Sprintf("learner %s has attended the lesson %s on %s",
		booking.LearnerID, lesson.Grade, lesson.Date.Format(domain.DateLayout)), nil
}

func (s *bookingService) SubmitReview(ctx context.Context, learner *domain.Learner, bookingID string, rating int) (string, error) {
	if learner == nil {
		return "", fmt.Errorf("%w: learner does not exist", ErrInvalidLearner)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}

	if booking.LearnerID != learner.ID {
		return "", fmt.Errorf("%w: learner %s is invalid for booking %s", ErrInvalidLearner, learner.ID, booking.ID)
	}
	if booking.Status != domain.StatusAttended {
		return "", fmt.Errorf("%w: lesson %s has not been attended by learner %s", ErrInvalidDate, booking.Lesson.Grade, learner.ID)
	}

	parsed, err := domain.ParseRating(rating)
	if err != nil {
		return "", fmt.Errorf("%w: rating can only be between 1 and 5", ErrInvalidRating)
	}

	review := &domain.Review{
		BookingID:  booking.ID,
		LessonID:   booking.LessonID,
		LearnerID:  learner.ID,
		GradeValue: int(booking.Lesson.Grade),
		Rating:     parsed,
		LessonDate: booking.Lesson.Date,
		ReviewDate: domain.Today(),
	}
	reviewID, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return "", err
	}

	// The booking points at its latest review; the lesson accumulates all of
	// them through the reviews table.
	booking.ReviewID = &reviewID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return "", err
	}

	s.logger.Info("review submitted",
		zap.String("booking_id", booking.ID),
		zap.String("learner_id", learner.ID),
		zap.Stringer("rating", parsed),
	)
	return fmt.Sprintf("learner %s has rated %d for lesson %s", learner.ID, rating, booking.Lesson.Grade), nil
}

func (s *bookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// getBooking loads a booking or reports it as an invalid booking.
func (s *bookingService) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s not found", ErrInvalidBooking, id)
		}
		return nil, err
	}
	return booking, nil
}

package domain

import "time"

// BookingStatus is the closed set of booking states. A change of lesson
// keeps the booking BOOKED; there is no way back out of CANCELLED or
// ATTENDED.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "BOOKED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusAttended  BookingStatus = "ATTENDED"
)

// Booking ties a learner to a lesson. The ID concatenates the learner ID
// with the creation clock in unix milliseconds, which keeps it unique for
// the lifetime of the process.
//
// BookingDate carries the date of the lesson that was booked, not the wall
// clock at creation; the cancellation window check reads it. A change of
// lesson repoints LessonID but leaves BookingDate alone.
type Booking struct {
	ID          string `gorm:"primaryKey"`
	BookingDate time.Time
	LearnerID   string
	Learner     Learner
	LessonID    uint
	Lesson      Lesson
	Status      BookingStatus
	ReviewID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

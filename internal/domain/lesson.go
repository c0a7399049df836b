package domain

import "time"

// TimeSlotLayout is the wire format for a lesson's time of day.
const TimeSlotLayout = "15:04"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Lesson is one slot on the timetable. Lessons are looked up by their
// (date, time slot) pair; the numeric key exists only to give the arena a
// primary key and to keep the timetable in insertion order.
//
// Invariant: 0 <= AvailableSlots <= Capacity. Capacity is fixed at creation;
// AvailableSlots moves with bookings, cancellations and attendance.
type Lesson struct {
	ID             uint `gorm:"primaryKey"`
	Grade          Grade
	Date           time.Time // date only, normalized to midnight UTC
	TimeSlot       string    // "16:00"
	CoachID        string
	Coach          Coach
	Capacity       int
	AvailableSlots int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DateOnly strips the time of day so lesson dates compare by calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar day, normalized like lesson dates.
func Today() time.Time {
	return DateOnly(time.Now())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

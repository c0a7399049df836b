package domain

import (
	"fmt"
	"time"
)

// Rating is the 1..5 satisfaction scale attached to a review.
type Rating int

const (
	RatingVeryDissatisfied Rating = iota + 1
	RatingDissatisfied
	RatingOK
	RatingSatisfied
	RatingVerySatisfied
)

func (r Rating) Valid() bool {
	return r >= RatingVeryDissatisfied && r <= RatingVerySatisfied
}

func (r Rating) String() string {
	switch r {
	case RatingVeryDissatisfied:
		return "VERY_DISSATISFIED"
	case RatingDissatisfied:
		return "DISSATISFIED"
	case RatingOK:
		return "OK"
	case RatingSatisfied:
		return "SATISFIED"
	case RatingVerySatisfied:
		return "VERY_SATISFIED"
	}
	return fmt.Sprintf("RATING_%d", int(r))
}

// ParseRating converts a user-supplied rating number into a Rating.
func ParseRating(value int) (Rating, error) {
	r := Rating(value)
	if !r.Valid() {
		return 0, fmt.Errorf("rating must be between 1 and 5, got %d", value)
	}
	return r, nil
}

// Review is a learner's rating of an attended lesson. Reviews are immutable
// once written: a booking points at its latest review, while the lesson
// keeps every review ever submitted for it.
type Review struct {
	ID         string `gorm:"primaryKey"`
	BookingID  string `gorm:"index"`
	LessonID   uint   `gorm:"index"`
	LearnerID  string
	GradeValue int
	Rating     Rating
	LessonDate time.Time
	ReviewDate time.Time
	Comment    string
	CreatedAt  time.Time
}

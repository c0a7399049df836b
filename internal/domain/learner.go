package domain

import "time"

// Gender of a learner, captured at registration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalizes a user-supplied gender string.
func ParseGender(value string) (Gender, bool) {
	switch Gender(value) {
	case GenderMale, GenderFemale:
		return Gender(value), true
	}
	return "", false
}

// Learner is a child enrolled at the school. IDs take the form "L<n>" and
// are assigned in registration order; learners are never deleted.
// CurrentGrade only ever moves up, one grade at a time, when the learner
// books a lesson one grade above their own.
type Learner struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Gender           Gender
	Age              int // 4..11, validated at the console before it gets here
	EmergencyContact string
	CurrentGrade     Grade
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package domain

import "fmt"

// Grade is one rung of the swim grade ladder. Learners and lessons both
// carry a grade; a learner may book lessons at their grade or below, or
// exactly one grade above it.
type Grade int

const (
	Grade1 Grade = iota + 1
	Grade2
	Grade3
	Grade4
	Grade5
)

func (g Grade) Valid() bool {
	return g >= Grade1 && g <= Grade5
}

func (g Grade) String() string {
	return fmt.Sprintf("GRADE_%d", int(g))
}

// ParseGrade converts a user-supplied grade number into a Grade.
func ParseGrade(value int) (Grade, error) {
	g := Grade(value)
	if !g.Valid() {
		return 0, fmt.Errorf("grade must be between 1 and 5, got %d", value)
	}
	return g, nil
}

package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hjss/swim-school/internal/domain"
)

// readLine prompts and returns the next non-empty input line, trimmed.
// ok is false once input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			return "", false
		}
		line := strings.TrimSpace(c.in.Text())
		if line != "" {
			return line, true
		}
	}
}

// readInt re-prompts until the user enters an integer.
func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

// readIntInRange re-prompts until the user enters an integer in [lo, hi].
func (c *Console) readIntInRange(prompt string, lo, hi int) (int, bool) {
	for {
		n, ok := c.readInt(prompt)
		if !ok {
			return 0, false
		}
		if n < lo || n > hi {
			fmt.Fprintf(c.out, "Please enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, true
	}
}

// readDate re-prompts until the user enters a yyyy-mm-dd date.
func (c *Console) readDate(prompt string) (time.Time, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return time.Time{}, false
		}
		date, err := time.Parse(domain.DateLayout, line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid date format. Please enter the date as yyyy-mm-dd.")
			continue
		}
		return domain.DateOnly(date), true
	}
}

// lessonTimes the school runs on weekdays; Saturdays are earlier.
var (
	weekdayTimes  = []string{"16:00", "17:00", "18:00"}
	saturdayTimes = []string{"14:00", "15:00"}
)

// readTimeSlot shows the slots available on the chosen day and re-prompts
// until the user picks one of them.
func (c *Console) readTimeSlot(date time.Time) (string, bool) {
	available := weekdayTimes
	if date.Weekday() == time.Saturday {
		available = saturdayTimes
	}

	fmt.Fprintln(c.out, "Available time slots:")
	for _, slot := range available {
		fmt.Fprintln(c.out, formatTimeSlot(slot))
	}

	for {
		line, ok := c.readLine("Enter time (hh:mm): ")
		if !ok {
			return "", false
		}
		parsed, err := time.Parse(domain.TimeSlotLayout, line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid time format. Please enter the time as hh:mm.")
			continue
		}
		slot := parsed.Format(domain.TimeSlotLayout)
		for _, want := range available {
			if slot == want {
				return slot, true
			}
		}
		fmt.Fprintln(c.out, "Invalid time slot. Please enter a valid time slot.")
	}
}

// readWeekday re-prompts until the user names a day of the week.
func (c *Console) readWeekday(prompt string) (time.Weekday, bool) {
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		if day, found := days[strings.ToLower(line)]; found {
			return day, true
		}
		fmt.Fprintln(c.out, "Invalid day. Please try again.")
	}
}

// readGrade re-prompts until the user enters a grade 1..5.
func (c *Console) readGrade(prompt string) (domain.Grade, bool) {
	for {
		n, ok := c.readInt(prompt)
		if !ok {
			return 0, false
		}
		grade, err := domain.ParseGrade(n)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid grade! Please enter a grade between 1 and 5.")
			continue
		}
		return grade, true
	}
}

// readGender re-prompts until the user enters male or female.
func (c *Console) readGender(prompt string) (domain.Gender, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return "", false
		}
		if gender, valid := domain.ParseGender(strings.ToLower(line)); valid {
			return gender, true
		}
		fmt.Fprintln(c.out, "Invalid gender. Please enter male or female.")
	}
}

// readMonth re-prompts until the user enters a month number 1..12.
func (c *Console) readMonth(prompt string) (time.Month, bool) {
	n, ok := c.readIntInRange(prompt, 1, 12)
	if !ok {
		return 0, false
	}
	return time.Month(n), true
}

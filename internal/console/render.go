package console

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/service"
)

// newTable returns a tabwriter configured for the console tables.
func (c *Console) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

// formatTimeSlot renders "16:00" as "16:00 (4:00 PM)" for readability.
func formatTimeSlot(slot string) string {
	t, err := time.Parse(domain.TimeSlotLayout, slot)
	if err != nil {
		return slot
	}
	return fmt.Sprintf("%s (%s)", slot, t.Format("3:04 PM"))
}

func (c *Console) renderTimetable(lessons []domain.Lesson) {
	if len(lessons) == 0 {
		fmt.Fprintln(c.out, "No lessons found.")
		return
	}
	table := c.newTable()
	fmt.Fprintln(table, "Grade\tDay\tDate\tTime\tCoach\tAvailable Slots")
	for _, lesson := range lessons {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%d\n",
			lesson.Grade,
			lesson.Date.Weekday(),
			lesson.Date.Format(domain.DateLayout),
			formatTimeSlot(lesson.TimeSlot),
			lesson.Coach.Name,
			lesson.AvailableSlots,
		)
	}
	table.Flush()
}

// viewBookings prints the ledger; with bookedOnly set, only bookings still
// open for change, cancellation or attendance.
func (c *Console) viewBookings(ctx context.Context, bookedOnly bool) error {
	bookings, err := c.bookings.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Available Bookings:")
	table := c.newTable()
	fmt.Fprintln(table, "Booking ID\tLearner Name\tCurrent Grade\tBooked Grade\tLesson Date\tLesson Day\tLesson Time\tStatus")
	for _, booking := range bookings {
		if bookedOnly && booking.Status != domain.StatusBooked {
			continue
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			booking.ID,
			booking.Learner.Name,
			booking.Learner.CurrentGrade,
			booking.Lesson.Grade,
			booking.Lesson.Date.Format(domain.DateLayout),
			booking.Lesson.Date.Weekday(),
			formatTimeSlot(booking.Lesson.TimeSlot),
			booking.Status,
		)
	}
	table.Flush()
	return nil
}

func (c *Console) viewLearners(ctx context.Context) error {
	learners, err := c.learners.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Learners in the system:")
	table := c.newTable()
	fmt.Fprintln(table, "ID\tName\tGrade")
	for _, learner := range learners {
		fmt.Fprintf(table, "%s\t%s\t%s\n", learner.ID, learner.Name, learner.CurrentGrade)
	}
	table.Flush()
	return nil
}

func (c *Console) renderCoachRatings(ratings []service.CoachRating) {
	fmt.Fprintln(c.out, "------------ Coach Ratings Report --------------")
	table := c.newTable()
	fmt.Fprintln(table, "Coach Name\tAverage Rating")
	for _, rating := range ratings {
		fmt.Fprintf(table, "%s\t%.2f\n", rating.CoachName, rating.AverageRating)
	}
	table.Flush()
}

func (c *Console) renderSummary(rows []service.LearnerMonthlySummary) {
	fmt.Fprintln(c.out, "--------- Summary of Monthly Learner Bookings ---------")
	table := c.newTable()
	fmt.Fprintln(table, "Learner ID\tLearner Name\tCurrent Grade\tBooked\tChanged\tCancelled\tAttended")
	for _, row := range rows {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			row.LearnerID, row.LearnerName, row.CurrentGrade,
			row.Booked, row.Changed, row.Cancelled, row.Attended,
		)
	}
	table.Flush()
}

func (c *Console) renderDetails(rows []service.BookingDetail) {
	fmt.Fprintln(c.out, "--------- Detailed Monthly Learner Report ---------")
	table := c.newTable()
	fmt.Fprintln(table, "Learner ID\tBooking ID\tGrade\tLesson Date\tTime\tCoach\tStatus\tReview")
	for _, row := range rows {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.LearnerID, row.BookingID, row.Grade,
			row.Date.Format(domain.DateLayout), formatTimeSlot(row.TimeSlot),
			row.CoachName, row.Status, row.Review,
		)
	}
	table.Flush()
}

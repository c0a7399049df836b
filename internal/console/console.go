package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"hjss/swim-school/internal/domain"
	"hjss/swim-school/internal/service"
)

// Console drives the interactive menu over the service layer. It owns all
// raw-text parsing and re-prompting; the services only ever see validated
// primitives.
type Console struct {
	timetable service.TimetableService
	bookings  service.BookingService
	learners  service.LearnerService
	reports   service.ReportService

	in  *bufio.Scanner
	out io.Writer
}

// New creates a Console reading from in and writing to out.
func New(
	timetable service.TimetableService,
	bookings service.BookingService,
	learners service.LearnerService,
	reports service.ReportService,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		timetable: timetable,
		bookings:  bookings,
		learners:  learners,
		reports:   reports,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops on the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, ok := c.readInt("Select your option or 0 to exit: ")
		if !ok {
			return nil
		}
		if choice == 0 {
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			return err
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "_________________________________________________")
	fmt.Fprintln(c.out, "************* Welcome to HJSS *******************")
	fmt.Fprintln(c.out, "*************************************************")
	fmt.Fprintln(c.out, "Select an option:")
	fmt.Fprintln(c.out, " 1. View Whole Timetable")
	fmt.Fprintln(c.out, " 2. View Timetable by Day")
	fmt.Fprintln(c.out, " 3. View Timetable by Grade Level")
	fmt.Fprintln(c.out, " 4. View Timetable by Coach's Name")
	fmt.Fprintln(c.out, " 5. Book a Lesson")
	fmt.Fprintln(c.out, " 6. Change Booking")
	fmt.Fprintln(c.out, " 7. Cancel Booking")
	fmt.Fprintln(c.out, " 8. Mark Your Booking as Attended")
	fmt.Fprintln(c.out, " 9. Generate Monthly Booking Report")
	fmt.Fprintln(c.out, "10. Generate Average Rating Report for Coaches")
	fmt.Fprintln(c.out, "11. View all Bookings")
	fmt.Fprintln(c.out, "12. Add a new Learner")
	fmt.Fprintln(c.out, "13. View all Learners")
}

// dispatch runs one menu action. Business rule failures are printed and
// swallowed; only infrastructure errors propagate.
func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return c.viewTimetable(ctx, nil, 0, "")
	case 2:
		return c.viewTimetableByDay(ctx)
	case 3:
		return c.viewTimetableByGrade(ctx)
	case 4:
		return c.viewTimetableByCoach(ctx)
	case 5:
		return c.bookLesson(ctx)
	case 6:
		return c.changeBooking(ctx)
	case 7:
		return c.cancelBooking(ctx)
	case 8:
		return c.markAttended(ctx)
	case 9:
		return c.monthlyReport(ctx)
	case 10:
		return c.coachRatings(ctx)
	case 11:
		return c.viewBookings(ctx, false)
	case 12:
		return c.addLearner(ctx)
	case 13:
		return c.viewLearners(ctx)
	default:
		fmt.Fprintln(c.out, "Invalid option. Please try again.")
		return nil
	}
}

func (c *Console) viewTimetable(ctx context.Context, day *time.Weekday, grade domain.Grade, coachName string) error {
	lessons, err := c.timetable.List(ctx, day, grade, coachName)
	if err != nil {
		return err
	}
	c.renderTimetable(lessons)
	return nil
}

func (c *Console) viewTimetableByDay(ctx context.Context) error {
	day, ok := c.readWeekday("Enter day (Monday, Wednesday, Friday, Saturday): ")
	if !ok {
		return nil
	}
	return c.viewTimetable(ctx, &day, 0, "")
}

func (c *Console) viewTimetableByGrade(ctx context.Context) error {
	grade, ok := c.readGrade("Enter grade level (1-5): ")
	if !ok {
		return nil
	}
	return c.viewTimetable(ctx, nil, grade, "")
}

func (c *Console) viewTimetableByCoach(ctx context.Context) error {
	name, ok := c.readLine("Enter coach's name: ")
	if !ok {
		return nil
	}
	return c.viewTimetable(ctx, nil, 0, name)
}

func (c *Console) bookLesson(ctx context.Context) error {
	if err := c.viewLearners(ctx); err != nil {
		return err
	}
	if err := c.timetableDetour(ctx); err != nil {
		return err
	}

	learnerID, ok := c.readLine("Enter learner ID to proceed with the booking: ")
	if !ok {
		return nil
	}
	learner, err := c.learners.Get(ctx, learnerID)
	if err != nil {
		return err
	}

	lesson, ok, err := c.pickLesson(ctx)
	if err != nil || !ok {
		return err
	}

	bookingID, err := c.bookings.Create(ctx, lesson, learner)
	if err != nil {
		return c.printFailure(err)
	}
	fmt.Fprintf(c.out, "You have successfully booked the lesson. Booking ID: %s\n", bookingID)
	return nil
}

func (c *Console) changeBooking(ctx context.Context) error {
	if err := c.viewBookings(ctx, true); err != nil {
		return err
	}
	bookingID, ok := c.readLine("Enter booking ID to change: ")
	if !ok {
		return nil
	}
	if err := c.timetableDetour(ctx); err != nil {
		return err
	}

	lesson, ok, err := c.pickLesson(ctx)
	if err != nil || !ok {
		return err
	}

	msg, err := c.bookings.Change(ctx, bookingID, lesson)
	if err != nil {
		return c.printFailure(err)
	}
	fmt.Fprintln(c.out, msg)
	return nil
}

func (c *Console) cancelBooking(ctx context.Context) error {
	if err := c.viewBookings(ctx, true); err != nil {
		return err
	}
	bookingID, ok := c.readLine("Enter booking ID to cancel: ")
	if !ok {
		return nil
	}
	msg, err := c.bookings.Cancel(ctx, bookingID)
	if err != nil {
		return c.printFailure(err)
	}
	fmt.Fprintln(c.out, msg)
	return nil
}

func (c *Console) markAttended(ctx context.Context) error {
	if err := c.viewBookings(ctx, true); err != nil {
		return err
	}
	bookingID, ok := c.readLine("Enter booking ID: ")
	if !ok {
		return nil
	}
	msg, err := c.bookings.MarkAttended(ctx, bookingID)
	if err != nil {
		return c.printFailure(err)
	}
	fmt.Fprintln(c.out, msg)

	// Attendance flows straight into a review prompt.
	booking, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return nil
	}
	fmt.Fprintln(c.out, "Now please provide your rating for this booking:")
	fmt.Fprintln(c.out, "  1 VERY DISSATISFIED")
	fmt.Fprintln(c.out, "  2 DISSATISFIED")
	fmt.Fprintln(c.out, "  3 OK")
	fmt.Fprintln(c.out, "  4 SATISFIED")
	fmt.Fprintln(c.out, "  5 VERY SATISFIED")
	rating, ok := c.readInt("Enter rating (1 to 5): ")
	if !ok {
		return nil
	}
	msg, err = c.bookings.SubmitReview(ctx, &booking.Learner, bookingID, rating)
	if err != nil {
		return c.printFailure(err)
	}
	fmt.Fprintln(c.out, msg)
	return nil
}

func (c *Console) monthlyReport(ctx context.Context) error {
	fmt.Fprintln(c.out, "Select the type of report:")
	fmt.Fprintln(c.out, "1. Summary of bookings")
	fmt.Fprintln(c.out, "2. Detailed information for each booking")
	reportType, ok := c.readInt("Report type: ")
	if !ok {
		return nil
	}
	month, ok := c.readMonth("Enter month number (1-12) for the report: ")
	if !ok {
		return nil
	}

	switch reportType {
	case 1:
		rows, err := c.reports.MonthlySummary(ctx, month)
		if err != nil {
			return err
		}
		c.renderSummary(rows)
	case 2:
		rows, err := c.reports.DetailedReport(ctx, month)
		if err != nil {
			return err
		}
		c.renderDetails(rows)
	default:
		fmt.Fprintln(c.out, "Invalid option. Please try again.")
	}
	return nil
}

func (c *Console) coachRatings(ctx context.Context) error {
	ratings, err := c.reports.CoachRatings(ctx)
	if err != nil {
		return err
	}
	c.renderCoachRatings(ratings)
	return nil
}

func (c *Console) addLearner(ctx context.Context) error {
	name, ok := c.readLine("Enter learner name: ")
	if !ok {
		return nil
	}
	gender, ok := c.readGender("Enter learner gender (male/female): ")
	if !ok {
		return nil
	}
	age, ok := c.readIntInRange("Enter learner age (4 to 11): ", 4, 11)
	if !ok {
		return nil
	}
	contact, ok := c.readLine("Enter emergency contact: ")
	if !ok {
		return nil
	}
	grade, ok := c.readGrade("Enter learner grade (1-5): ")
	if !ok {
		return nil
	}

	id, err := c.learners.Add(ctx, name, gender, age, contact, grade)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "New learner with ID %s and name %s has been added.\n", id, name)
	return nil
}

// timetableDetour lets the user browse the timetable before committing to a
// date and time.
func (c *Console) timetableDetour(ctx context.Context) error {
	fmt.Fprintln(c.out, "To view the timetable first, select an option below, or 0 to proceed:")
	fmt.Fprintln(c.out, "1. View timetable by day")
	fmt.Fprintln(c.out, "2. View timetable by grade level")
	fmt.Fprintln(c.out, "3. View timetable by coach's name")
	choice, ok := c.readInt("Option: ")
	if !ok {
		return nil
	}
	switch choice {
	case 1:
		return c.viewTimetableByDay(ctx)
	case 2:
		return c.viewTimetableByGrade(ctx)
	case 3:
		return c.viewTimetableByCoach(ctx)
	}
	return nil
}

// pickLesson prompts for a date and time slot and resolves the lesson. The
// returned lesson may be nil; the rules engine reports that as an invalid
// lesson.
func (c *Console) pickLesson(ctx context.Context) (*domain.Lesson, bool, error) {
	date, ok := c.readDate("Enter date (yyyy-mm-dd): ")
	if !ok {
		return nil, false, nil
	}
	slot, ok := c.readTimeSlot(date)
	if !ok {
		return nil, false, nil
	}
	lesson, err := c.timetable.FindLesson(ctx, date, slot)
	if err != nil {
		return nil, false, err
	}
	return lesson, true, nil
}

// businessErrors are the recoverable failures the engine reports; anything
// else is an infrastructure problem and ends the session.
var businessErrors = []error{
	service.ErrInvalidLesson,
	service.ErrInvalidBooking,
	service.ErrInvalidLearner,
	service.ErrInvalidDate,
	service.ErrInvalidRating,
	service.ErrNoSlotsAvailable,
	service.ErrAlreadyRegistered,
}

// printFailure prints a business rule failure and keeps the session going;
// infrastructure errors propagate.
func (c *Console) printFailure(err error) error {
	for _, known := range businessErrors {
		if errors.Is(err, known) {
			fmt.Fprintln(c.out, err.Error())
			return nil
		}
	}
	return err
}

package service_test

import (
	"testing"

	"hjss/swim-school/internal/domain"
)

func TestTimetableListHidesPastLessons(t *testing.T) {
	e := newEnv(t)
	coach := e.addCoach(t, "Helen")
	e.addLesson(t, coach, domain.Grade1, daysFromToday(-3), "16:00", 4)
	e.addLesson(t, coach, domain.Grade1, daysFromToday(0), "16:00", 4)
	future := e.addLesson(t, coach, domain.Grade1, daysFromToday(3), "16:00", 4)

	lessons, err := e.timetable.List(e.ctx, nil, 0, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("List returned %d lessons, want 1 (past and today excluded)", len(lessons))
	}
	if lessons[0].ID != future.ID {
		t.Errorf("List returned lesson %d, want %d", lessons[0].ID, future.ID)
	}
}

func TestTimetableListFilters(t *testing.T) {
	e := newEnv(t)
	helen := e.addCoach(t, "Helen")
	john := e.addCoach(t, "John")

	// Two future weeks so each weekday appears at least once.
	g1 := e.addLesson(t, helen, domain.Grade1, daysFromToday(1), "16:00", 4)
	g2 := e.addLesson(t, john, domain.Grade2, daysFromToday(2), "17:00", 4)
	g3 := e.addLesson(t, helen, domain.Grade3, daysFromToday(3), "18:00", 4)

	byGrade, err := e.timetable.List(e.ctx, nil, domain.Grade2, "")
	if err != nil {
		t.Fatalf("List by grade: %v", err)
	}
	if len(byGrade) != 1 || byGrade[0].ID != g2.ID {
		t.Fatalf("List by grade = %v, want only lesson %d", lessonIDs(byGrade), g2.ID)
	}

	byCoach, err := e.timetable.List(e.ctx, nil, 0, "Helen")
	if err != nil {
		t.Fatalf("List by coach: %v", err)
	}
	if got := lessonIDs(byCoach); len(got) != 2 || got[0] != g1.ID || got[1] != g3.ID {
		t.Fatalf("List by coach = %v, want [%d %d] in timetable order", got, g1.ID, g3.ID)
	}

	day := g2.Date.Weekday()
	byDay, err := e.timetable.List(e.ctx, &day, 0, "")
	if err != nil {
		t.Fatalf("List by day: %v", err)
	}
	if len(byDay) != 1 || byDay[0].ID != g2.ID {
		t.Fatalf("List by day = %v, want only lesson %d", lessonIDs(byDay), g2.ID)
	}
}

func TestTimetableListEmptyIsNotNil(t *testing.T) {
	e := newEnv(t)

	lessons, err := e.timetable.List(e.ctx, nil, 0, "Nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if lessons == nil {
		t.Fatal("List returned nil, want an empty slice")
	}
	if len(lessons) != 0 {
		t.Fatalf("List returned %d lessons, want 0", len(lessons))
	}
}

func TestFindLesson(t *testing.T) {
	e := newEnv(t)
	coach := e.addCoach(t, "Helen")
	date := daysFromToday(3)
	want := e.addLesson(t, coach, domain.Grade1, date, "16:00", 4)
	e.addLesson(t, coach, domain.Grade2, date, "17:00", 4)

	lesson, err := e.timetable.FindLesson(e.ctx, date, "16:00")
	if err != nil {
		t.Fatalf("FindLesson: %v", err)
	}
	if lesson == nil || lesson.ID != want.ID {
		t.Fatalf("FindLesson = %+v, want lesson %d", lesson, want.ID)
	}
	if lesson.Coach.Name != "Helen" {
		t.Errorf("coach = %q, want Helen", lesson.Coach.Name)
	}

	missing, err := e.timetable.FindLesson(e.ctx, date, "18:00")
	if err != nil {
		t.Fatalf("FindLesson (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("FindLesson = %+v, want nil for an empty slot", missing)
	}
}

func lessonIDs(lessons []domain.Lesson) []uint {
	ids := make([]uint, 0, len(lessons))
	for _, lesson := range lessons {
		ids = append(ids, lesson.ID)
	}
	return ids
}

package board_test

import (
	"testing"
	"time"

	"github.com/fordlabs/peoplemover/board"
)

// =============================================================================
// DURATION TESTS
// =============================================================================

func TestDaysBetween_Inclusive(t *testing.T) {
	cases := []struct {
		name string
		from board.Date
		to   board.Date
		want int
	}{
		{"two months", board.NewDate(2019, time.October, 1), board.NewDate(2019, time.November, 30), 61},
		{"full december", board.NewDate(2019, time.December, 1), board.NewDate(2019, time.December, 31), 31},
		{"same day", board.NewDate(2020, time.January, 1), board.NewDate(2020, time.January, 1), 1},
	}

	for _, tc := range cases {
		if got := board.DaysBetween(tc.from, tc.to); got != tc.want {
			t.Errorf("%s: expected %d days, got %d", tc.name, tc.want, got)
		}
	}
}

func TestDaysBetween_OpenAssignmentAgainstNow(t *testing.T) {
	// GIVEN: An assignment starting 2020-01-01
	// WHEN: Evaluated at now = start + N days
	// THEN: Duration is N+1 (inclusive of both endpoints)

	start := board.NewDate(2020, time.January, 1)
	for n := 0; n < 10; n++ {
		now := start.AddDays(n)
		if got := board.DaysBetween(start, now); got != n+1 {
			t.Errorf("now = start+%d days: expected duration %d, got %d", n, n+1, got)
		}
	}
}

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseDate(t *testing.T) {
	d, err := board.ParseDate("2019-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(board.NewDate(2019, time.October, 1)) {
		t.Errorf("expected 2019-10-01, got %s", d)
	}

	if _, err := board.ParseDate("10/01/2019"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := board.ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestDateFormats(t *testing.T) {
	d := board.NewDate(2019, time.December, 31)
	if d.String() != "2019-12-31" {
		t.Errorf("wire format: got %s", d.String())
	}
	if d.FormatUS() != "12/31/2019" {
		t.Errorf("display format: got %s", d.FormatUS())
	}
}

// =============================================================================
// MONTH / WORKDAY TESTS
// =============================================================================

func TestStartOfMonth(t *testing.T) {
	d := board.NewDate(2020, time.February, 19)
	if !d.StartOfMonth().Equal(board.NewDate(2020, time.February, 1)) {
		t.Errorf("expected 2020-02-01, got %s", d.StartOfMonth())
	}
	if !d.EndOfMonth().Equal(board.NewDate(2020, time.February, 29)) {
		t.Errorf("expected leap-year 2020-02-29, got %s", d.EndOfMonth())
	}
}

func TestHighlightWorkday_WeekendSnapping(t *testing.T) {
	today := board.NewDate(2020, time.June, 1) // Monday, far from the targets

	// Saturday 2020-03-14 snaps back to Friday the 13th
	got := board.HighlightWorkday(board.NewDate(2020, time.March, 14), today)
	if !got.Equal(board.NewDate(2020, time.March, 13)) {
		t.Errorf("saturday: expected 2020-03-13, got %s", got)
	}

	// Sunday 2020-03-15 snaps forward to Monday the 16th
	got = board.HighlightWorkday(board.NewDate(2020, time.March, 15), today)
	if !got.Equal(board.NewDate(2020, time.March, 16)) {
		t.Errorf("sunday: expected 2020-03-16, got %s", got)
	}

	// A plain weekday stays put
	wednesday := board.NewDate(2020, time.March, 11)
	if got := board.HighlightWorkday(wednesday, today); !got.Equal(wednesday) {
		t.Errorf("weekday: expected %s, got %s", wednesday, got)
	}
}

func TestHighlightWorkday_TodayCollision(t *testing.T) {
	// GIVEN: The computed date equals today, mid-month (not the final ISO week)
	// THEN: Shift forward one workday

	today := board.NewDate(2020, time.March, 11) // Wednesday, week 2 of March
	got := board.HighlightWorkday(today, today)
	if !got.Equal(board.NewDate(2020, time.March, 12)) {
		t.Errorf("mid-month collision: expected 2020-03-12, got %s", got)
	}

	// GIVEN: Today falls in the final ISO week of its month
	// THEN: Shift backward one workday

	lastWeek := board.NewDate(2020, time.March, 31) // Tuesday, shares ISO week with March 31
	got = board.HighlightWorkday(lastWeek, lastWeek)
	if !got.Equal(board.NewDate(2020, time.March, 30)) {
		t.Errorf("final-week collision: expected 2020-03-30, got %s", got)
	}
}

func TestHighlightWorkday_CollisionSkipsWeekend(t *testing.T) {
	// Friday in a non-final week shifts forward over the weekend to Monday.
	friday := board.NewDate(2020, time.March, 13)
	got := board.HighlightWorkday(friday, friday)
	if !got.Equal(board.NewDate(2020, time.March, 16)) {
		t.Errorf("expected 2020-03-16 (Monday), got %s", got)
	}

	// Monday in the final ISO week shifts backward over the weekend to Friday.
	monday := board.NewDate(2020, time.March, 30)
	got = board.HighlightWorkday(monday, monday)
	if !got.Equal(board.NewDate(2020, time.March, 27)) {
		t.Errorf("expected 2020-03-27 (Friday), got %s", got)
	}
}

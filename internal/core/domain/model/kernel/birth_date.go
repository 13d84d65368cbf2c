package kernel

import (
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// BirthDateLayout is the layout used by BirthDate.String.
const BirthDateLayout = "02/01/2006"

// ErrBirthDateIsNotConstructed is returned when validating a zero-value BirthDate.
var ErrBirthDateIsNotConstructed = errs.NewValueIsRequiredError("birth date must be created via NewBirthDate")

// BirthDate is a calendar date that is not in the future. The time of day is
// discarded on construction.
type BirthDate struct {
	date  time.Time
	guard guard.ConstructorGuard
}

// NewBirthDate validates date against today's date as reported by clock.
// A nil clock falls back to SystemClock.
//
// Returns:
//   - ValueIsRequiredError when date is the zero time
//   - ValueIsOutOfRangeError when date falls after today
func NewBirthDate(date time.Time, clock Clock) (BirthDate, error) {
	if date.IsZero() {
		return BirthDate{}, errs.NewValueIsRequiredError("birthDate")
	}

	if clock == nil {
		clock = SystemClock{}
	}

	date = DateOf(date)
	today := DateOf(clock.Now().In(date.Location()))
	if date.After(today) {
		return BirthDate{}, errs.NewValueIsOutOfRangeError(
			"birthDate", date.Format(time.DateOnly), "", today.Format(time.DateOnly))
	}

	return BirthDate{date: date, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether b was built by NewBirthDate.
func (b BirthDate) Validate() error {
	return b.guard.Validate(ErrBirthDateIsNotConstructed)
}

// Date returns the date at midnight.
func (b BirthDate) Date() time.Time {
	return b.date
}

// Age returns the number of full years between the birth date and today as
// reported by clock, or by SystemClock when clock is nil.
func (b BirthDate) Age(clock Clock) int {
	if clock == nil {
		clock = SystemClock{}
	}
	today := DateOf(clock.Now().In(b.date.Location()))
	age := today.Year() - b.date.Year()
	if today.Month() < b.date.Month() || (today.Month() == b.date.Month() && today.Day() < b.date.Day()) {
		age--
	}
	return age
}

// IsEqual compares calendar dates.
func (b BirthDate) IsEqual(other BirthDate) bool {
	return b.date.Equal(other.date)
}

// String renders the date as dd/mm/yyyy.
func (b BirthDate) String() string {
	return b.date.Format(BirthDateLayout)
}

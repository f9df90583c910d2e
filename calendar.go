package zenity

import (
	"fmt"
	"time"
)

// Calendar configures a date-picker dialog. The selected date comes back as
// text, formatted with zenity's locale default or an explicit WithFormat
// pattern. Use ParseDates to receive a time.Time instead; structured parsing
// and a custom text format are mutually exclusive because the parser owns
// the format string.
type Calendar struct {
	text   *string
	day    *int
	month  *time.Month
	year   *int
	format *string
}

// NewCalendar returns an empty Calendar configuration.
func NewCalendar() Calendar {
	return Calendar{}
}

// WithText sets the body text.
func (c Calendar) WithText(text string) Calendar {
	c.text = &text
	return c
}

// WithDay preselects a day of the month. zenity ignores values that do not
// exist in the selected month.
func (c Calendar) WithDay(day int) Calendar {
	c.day = &day
	return c
}

// WithMonth preselects a month, emitted numerically as 1-12.
func (c Calendar) WithMonth(month time.Month) Calendar {
	c.month = &month
	return c
}

// WithYear preselects a year.
func (c Calendar) WithYear(year int) Calendar {
	c.year = &year
	return c
}

// WithFormat sets a strftime-style pattern for the returned text, e.g.
// "%A %d/%m/%y".
func (c Calendar) WithFormat(format string) Calendar {
	c.format = &format
	return c
}

// ParseDates switches the calendar to structured output: Show parses the
// selection into a time.Time. Any WithFormat value is dropped, since a
// custom text format would defeat the parser.
func (c Calendar) ParseDates() DateCalendar {
	c.format = nil
	return DateCalendar{calendar: c}
}

func (c Calendar) Args() []string {
	args := []string{"--calendar"}
	if c.text != nil {
		args = append(args, "--text="+*c.text)
	}
	if c.day != nil {
		args = append(args, fmt.Sprintf("--day=%d", *c.day))
	}
	if c.month != nil {
		args = append(args, fmt.Sprintf("--month=%d", int(*c.month)))
	}
	if c.year != nil {
		args = append(args, fmt.Sprintf("--year=%d", *c.year))
	}
	if c.format != nil {
		args = append(args, "--date-format="+*c.format)
	}
	return args
}

// Parse returns stdout unchanged.
func (c Calendar) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (c Calendar) Dialog() Dialog[string] {
	return New[string](c)
}

// The date format a DateCalendar requests from zenity and the time layout
// its Parse expects: day/month/two-digit-year.
const (
	dateOutputFormat = "%d/%m/%y"
	dateParseLayout  = "02/01/06"
)

// DateCalendar is a Calendar whose output is parsed into a time.Time. It
// pins zenity's --date-format so the output always matches the parser.
type DateCalendar struct {
	calendar Calendar
}

// WithText sets the body text.
func (c DateCalendar) WithText(text string) DateCalendar {
	c.calendar = c.calendar.WithText(text)
	return c
}

// WithDay preselects a day of the month.
func (c DateCalendar) WithDay(day int) DateCalendar {
	c.calendar = c.calendar.WithDay(day)
	return c
}

// WithMonth preselects a month, emitted numerically as 1-12.
func (c DateCalendar) WithMonth(month time.Month) DateCalendar {
	c.calendar = c.calendar.WithMonth(month)
	return c
}

// WithYear preselects a year.
func (c DateCalendar) WithYear(year int) DateCalendar {
	c.calendar = c.calendar.WithYear(year)
	return c
}

func (c DateCalendar) Args() []string {
	return append(c.calendar.Args(), "--date-format="+dateOutputFormat)
}

// Parse converts the selected date into a time.Time.
func (c DateCalendar) Parse(stdout string) (time.Time, error) {
	return time.Parse(dateParseLayout, stdout)
}

// Dialog wraps the configuration in a Dialog.
func (c DateCalendar) Dialog() Dialog[time.Time] {
	return New[time.Time](c)
}

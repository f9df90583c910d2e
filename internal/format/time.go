// Package format renders timestamps for history output according to the
// display_date and display_time config keys.
package format

import (
	"time"

	"github.com/dialog-tools/zenity/internal/config"
)

// configGet is swapped out in tests.
var configGet = config.Get

// DateTime formats a time with both date and time.
// Example output: "2024-01-23 15:04" or "23/01/2024 3:04 PM"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// Full formats with full date and time with seconds.
// Example output: "2024-01-23 15:04:05"
func Full(t time.Time) string {
	return Date(t) + " " + TimeFull(t)
}

// Date formats only the date portion.
func Date(t time.Time) string {
	return t.Format(dateLayout())
}

// Time formats only the time portion.
func Time(t time.Time) string {
	return t.Format(timeLayout())
}

// TimeFull formats the time portion with seconds.
func TimeFull(t time.Time) string {
	return t.Format(timeLayoutFull())
}

func dateLayout() string {
	displayDate, _ := configGet("display_date")
	switch displayDate {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	case "mm/dd/yyyy":
		return "01/02/2006"
	default:
		// Anything else is taken as a Go reference layout.
		return displayDate
	}
}

func timeLayout() string {
	displayTime, _ := configGet("display_time")
	if displayTime == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}

func timeLayoutFull() string {
	displayTime, _ := configGet("display_time")
	if displayTime == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

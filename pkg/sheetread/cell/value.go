// Package cell defines raw and normalized spreadsheet cell values.
//
// Raw values are what a workbook engine reports for a cell. Normalize maps
// every Raw to the Value set that consumers of a materialized sheet rely on.
// Both sets are closed: their marker methods are unexported, so the type
// switches in this package cover every case.
package cell

import (
	"fmt"
	"strings"
	"time"
)

// Raw is a cell value as reported by a workbook engine.
type Raw interface {
	raw()
}

// Value is a normalized cell value.
type Value interface {
	value()
}

// Int is a 64-bit integer cell. It is both a Raw and a Value.
type Int int64

// Float is a floating point cell. It is both a Raw and a Value.
type Float float64

// String is a text cell. It is both a Raw and a Value.
type String string

// Bool is a boolean cell. It is both a Raw and a Value.
type Bool bool

// Empty is the placeholder for an empty cell inside a sheet's used range.
const Empty = String("")

// Date is a calendar date without a time of day. Raw only.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateTime is a date with a time of day. The wall clock of the embedded
// time is the value; its location is never converted. Raw only.
type DateTime struct {
	time.Time
}

// Timestamp is a normalized point on the wall clock. Dates and date-times
// both normalize to Timestamp. Value only.
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02T15:04:05.999999999"

func (t Timestamp) String() string {
	return t.Time.Format(timestampLayout)
}

// Duration is an elapsed span of time not anchored to a calendar.
// It is both a Raw and a Value.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// TimeOfDay is a wall clock time with no date. It is both a Raw and a Value.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the clock reading of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond == 0 {
		return s
	}
	return s + "." + strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
}

func (Int) raw()       {}
func (Float) raw()     {}
func (String) raw()    {}
func (Bool) raw()      {}
func (Date) raw()      {}
func (DateTime) raw()  {}
func (Duration) raw()  {}
func (TimeOfDay) raw() {}

func (Int) value()       {}
func (Float) value()     {}
func (String) value()    {}
func (Bool) value()      {}
func (Timestamp) value() {}
func (Duration) value()  {}
func (TimeOfDay) value() {}

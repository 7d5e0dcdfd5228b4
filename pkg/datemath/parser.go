package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when a phrase matches no supported date form.
var ErrUnrecognized = errors.New("unrecognized date")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	ordinalRe    = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Layouts tried for absolute dates; month and weekday names match case-insensitively.
// Layouts without a year resolve to the base time's year.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday January 2 2006",
	"Mon Jan 2 2006",
}

var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
	"01/02",
	"1/2",
}

// Parser converts relative and absolute date phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date phrase to midnight of the day it names.
// The baseTime is used as the reference point (usually time.Now()).
// On failure baseTime is returned together with the error.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = normalize(phrase)
	if phrase == "" {
		return baseTime, ErrUnrecognized
	}

	switch phrase {
	case "today", "now":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "day after tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "next week":
		return p.StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(phrase, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(phrase, "next "), baseTime)
	}

	// A bare weekday means its next occurrence, today excluded.
	if _, ok := weekdays[phrase]; ok {
		return p.parseNextWeekday(phrase, baseTime)
	}

	return p.parseAbsolute(phrase, baseTime)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format %q: %w", phrase, ErrUnrecognized)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit %q: %w", unit, ErrUnrecognized)
}

// parseNextWeekday handles "monday", "friday" (as reached from "next friday").
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday %q: %w", dayName, ErrUnrecognized)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// parseAbsolute tries the calendar-date layouts.
func (p *Parser) parseAbsolute(phrase string, baseTime time.Time) (time.Time, error) {
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, phrase, p.location); err == nil {
			return p.StartOfDay(t), nil
		}
	}

	year := baseTime.In(p.location).Year()
	for _, layout := range yearlessLayouts {
		t, err := time.ParseInLocation(layout, phrase, p.location)
		if err != nil {
			continue
		}
		// time.Parse leaves year 0 for yearless layouts.
		withYear := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, p.location)
		if withYear.Month() != t.Month() {
			continue // e.g. feb 29 in a non-leap year
		}
		return withYear, nil
	}

	return baseTime, fmt.Errorf("%q: %w", phrase, ErrUnrecognized)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// At returns the given day at hour:minute in the parser's timezone.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// SameDay reports whether a and b fall on the same calendar day in the parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	return p.StartOfDay(a).Equal(p.StartOfDay(b))
}

// StartOfWeek returns midnight of the Sunday starting t's week.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func normalize(phrase string) string {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	phrase = strings.ReplaceAll(phrase, ",", " ")
	phrase = strings.TrimSuffix(phrase, ".")
	phrase = ordinalRe.ReplaceAllString(phrase, "$1")
	phrase = strings.TrimPrefix(phrase, "on ")
	return spacesRe.ReplaceAllString(strings.TrimSpace(phrase), " ")
}

package schedule

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FrequencyWeekly is the only frequency produced by this package.
const FrequencyWeekly = "WEEKLY"

// weekdayNames is Monday-first, matching the weekday index of the form.
var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ErrInvalidSlot is returned when a weekday/hour/minute triple is out of range.
var ErrInvalidSlot = errors.New("invalid schedule slot")

// WeekdayChoice is one entry of the weekday selector.
type WeekdayChoice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// WeekdayChoices returns the weekday selector entries, Monday first.
func WeekdayChoices() []WeekdayChoice {
	choices := make([]WeekdayChoice, 0, len(weekdayNames))
	for i, name := range weekdayNames {
		choices = append(choices, WeekdayChoice{Value: i, Label: name})
	}
	return choices
}

// WeekdayName returns the English name of a Monday-first weekday index.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[weekday]
}

// ValidateSlot checks the ranges accepted by the event form.
func ValidateSlot(weekday, hour, minute int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidSlot)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidSlot)
	}
	if minute < 0 || minute > 59 || minute%MinuteStep != 0 {
		return fmt.Errorf("%w: minute must be one of 0, 10, 20, 30, 40, 50", ErrInvalidSlot)
	}
	return nil
}

// Description holds everything derived from a weekly slot.
type Description struct {
	Phrase          string
	RuleName        string
	RuleDescription string
	Frequency       string
	Params          string
	Title           string
}

// Describe derives the rule and event attributes for a weekly slot posted on
// the named social network.
func Describe(weekday, hour, minute int, network string) Description {
	phrase := fmt.Sprintf(" every %s at %02d:%02d", WeekdayName(weekday), hour, minute)
	return Description{
		Phrase:          phrase,
		RuleName:        capitalize(strings.TrimSpace(phrase)),
		RuleDescription: "Event occurring" + phrase,
		Frequency:       FrequencyWeekly,
		Params:          Params{Weekday: weekday, Hour: hour, Minute: minute}.String(),
		Title:           network + " post" + phrase,
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

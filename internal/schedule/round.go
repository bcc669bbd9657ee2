// Package schedule builds weekly recurrence descriptors for publish events and
// provides the small time helpers used by the event form.
package schedule

import "time"

// MinuteStep is the granularity of the minute selector.
const MinuteStep = 10

// RoundTime rounds minute to the nearest multiple of MinuteStep using
// round-half-up. Minutes 55 to 59 roll over to the next hour, wrapping 23 to 0.
func RoundTime(hour, minute int) (int, int) {
	if minute >= 60-MinuteStep/2 {
		return (hour + 1) % 24, 0
	}
	return hour, (minute + MinuteStep/2) / MinuteStep * MinuteStep
}

// RoundClock rounds the wall-clock time of t.
func RoundClock(t time.Time) (int, int) {
	return RoundTime(t.Hour(), t.Minute())
}

// HourChoices returns the selectable hours, 0 through 23.
func HourChoices() []int {
	hours := make([]int, 0, 24)
	for h := 0; h < 24; h++ {
		hours = append(hours, h)
	}
	return hours
}

// MinuteChoices returns the selectable minutes: 0, 10, ..., 50.
func MinuteChoices() []int {
	minutes := make([]int, 0, 60/MinuteStep)
	for m := 0; m < 60; m += MinuteStep {
		minutes = append(minutes, m)
	}
	return minutes
}

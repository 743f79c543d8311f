// Package service implements the application services of the portfolio backend.
package service

import "time"

// Clock supplies the current instant. Lifecycle logic takes a Clock so
// tests can pin time instead of depending on the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock {
	return systemClock{}
}

package domain

import "time"

// ShiftSnapshot is a read-only view of the shift state, taken for
// display. The presentation layer polls it; it never mutates anything.
type ShiftSnapshot struct {
	Day          int
	Money        int
	Served       int
	MaxCustomers int
	OrderText    string   // empty when no customer is at the counter
	Selected     []string // ingredient IDs on the pizza in progress
}

// DayRecord summarizes one finished day of the run.
type DayRecord struct {
	Day     int
	Served  int
	Earned  int
	EndedAt time.Time
}

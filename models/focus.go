package models

import "time"

// FocusSession records one completed focus-timer run.
type FocusSession struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	DurationTarget      int       `json:"durationTarget"`
	DurationFocus       int       `json:"durationFocus"`
	DurationInterrupted int       `json:"durationInterrupted"`
	Created             time.Time `json:"created"`
	Updated             time.Time `json:"updated"`

	Todos []FocusTodo `json:"todos"`
}

// FocusTodo is the per-todo breakdown of a focus session.
type FocusTodo struct {
	ID            string `json:"id"`
	FocusID       string `json:"focus"`
	TodoID        string `json:"todo"`
	Duration      int    `json:"duration"`
	ProgressStart int    `json:"progressStart"`
	ProgressEnd   int    `json:"progressEnd"`
}

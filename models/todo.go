package models

import "time"

type Todo struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Estimation    int       `json:"estimation"`
	Total         int       `json:"total"`
	Progress      int       `json:"progress"`
	DurationFocus int       `json:"durationFocus"`
	Active        bool      `json:"active"`
	Archived      bool      `json:"archived"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

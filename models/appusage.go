package models

import "time"

type AppUsage struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user"`
	AppName  string    `json:"appName"`
	Start    time.Time `json:"start"`
	Duration int       `json:"duration"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

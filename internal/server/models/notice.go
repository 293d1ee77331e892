package models

import "time"

type Notice struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	PostedDate time.Time `json:"posted_date"`
}

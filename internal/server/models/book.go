package models

import "time"

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Publisher     string    `json:"publisher"`
	Edition       string    `json:"edition"`
	Pages         int       `json:"pages"`
	PublishedDate time.Time `json:"published_date"`
}

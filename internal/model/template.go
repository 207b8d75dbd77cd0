package model

import "time"

// Template is a full gallery row. HTMLContent is served verbatim: it is
// assumed to come from a trusted ingestion path and is not sanitized here.
type Template struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Link          string    `json:"link"`
	HTMLContent   string    `json:"html_content"`
	ContentLength int       `json:"content_length"`
	Author        string    `json:"author"`
	Views         int64     `json:"views"`
	Downloads     int64     `json:"downloads"`
	Rating        float64   `json:"rating"`
	IsFree        bool      `json:"isFree"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Status        string    `json:"status"`
}

// TemplateCard is the listing projection, everything the gallery grid needs
// without dragging html_content over the wire.
type TemplateCard struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Link        string    `json:"link"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	Views       int64     `json:"views"`
	Downloads   int64     `json:"downloads"`
	Rating      float64   `json:"rating"`
	IsFree      bool      `json:"isFree"`
}

const StatusActive = "active"

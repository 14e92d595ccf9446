package models

import "time"

// Search types recorded in the log.
const (
	TypeGeneral = "general"
)

// Entry is one recorded search. Query holds the raw term of a general search
// or the JSON encoded parameters of a category search.
type Entry struct {
	ID        int64     `json:"id"`
	Query     string    `json:"query"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

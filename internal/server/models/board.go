// Package models defines the BoardKeeper domain graph: users, boards with
// their positioned panels, and globally shared datasets.
package models

import "time"

// Board is a user-owned canvas. Panels are populated at read time, ordered
// by stacking index.
type Board struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Panels      []Panel   `json:"panels"`
}

// BoardExport locates an uploaded board snapshot.
type BoardExport struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

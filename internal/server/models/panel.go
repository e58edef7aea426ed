package models

import "time"

// Position is the top-left corner of a panel on its board.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the rendered extent of a panel.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Panel is a positioned, sized unit on a board. Data holds the bound
// dataset, materialized per request; it is nil when the panel is unbound or
// its dataset could not be resolved.
type Panel struct {
	ID        string         `json:"id"`
	BoardID   string         `json:"boardId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Position  Position       `json:"position"`
	Size      Size           `json:"size"`
	ZIndex    int            `json:"zIndex"`
	Active    bool           `json:"active"`
	DatasetID *string        `json:"datasetId"`
	Config    JSON           `json:"config"`
	Data      *GlobalDataset `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PanelRecord is the flat row shape of the panels table.
type PanelRecord struct {
	ID        string
	BoardID   string
	Type      string
	Title     string
	X         int
	Y         int
	Width     int
	Height    int
	ZIndex    int
	Active    bool
	DatasetID *string
	Config    string
	CreatedAt string
	UpdatedAt string
}

// CreatePanelInput carries the caller-supplied fields of a new panel. A nil
// Config defaults to an empty object.
type CreatePanelInput struct {
	BoardID   string   `json:"boardId"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Position  Position `json:"position"`
	Size      Size     `json:"size"`
	ZIndex    int      `json:"zIndex"`
	DatasetID *string  `json:"datasetId,omitempty"`
	Config    *JSON    `json:"config,omitempty"`
}

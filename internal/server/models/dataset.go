package models

import "time"

// GlobalDataset is a shared, unowned collection of rows. Columns describe
// the intended row shape but are not enforced.
type GlobalDataset struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	Columns   []string     `json:"columns"`
	Rows      []DatasetRow `json:"rows"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// DatasetRow is one append-only record of a dataset.
type DatasetRow struct {
	ID        string    `json:"id"`
	DatasetID string    `json:"datasetId"`
	Data      JSON      `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

// DatasetRecord is the flat row shape of the global_datasets table.
type DatasetRecord struct {
	ID        string
	Name      string
	Type      string
	Columns   string
	CreatedAt string
	UpdatedAt string
}

// DatasetRowRecord is the flat row shape of the dataset_data table.
type DatasetRowRecord struct {
	ID        string
	DatasetID string
	Data      string
	CreatedAt string
}

// Package rowcodec translates between the flat relational representation
// (integer columns, JSON stored as text, timestamps stored as text) and the
// typed domain graph in package models.
//
// Decoding of stored JSON is best-effort where the data is display-only:
// a malformed panel config becomes {} and a malformed dataset row is
// reported as absent, instead of failing the whole read.
package rowcodec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

// TimeLayout is fixed width so stored timestamps sort lexicographically in
// chronological order on every engine.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a timestamp written by FormatTime. RFC 3339 text written by
// other tools is accepted as well.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", common.ErrorInvalidData, s)
	}
	return t.UTC(), nil
}

// EncodeJSON renders v as JSON text for a TEXT column.
func EncodeJSON(v models.JSON) (string, error) {
	b, err := v.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInvalidData, err)
	}
	return string(b), nil
}

// DecodeJSON parses stored JSON text. ok is false when the text is
// malformed; callers decide whether that degrades or fails.
func DecodeJSON(text string) (models.JSON, bool) {
	v, err := models.ParseJSON([]byte(text))
	if err != nil {
		return models.JSON{}, false
	}
	return v, true
}

// DecodeConfig parses a stored panel config. Anything that is not a JSON
// object degrades to {}.
func DecodeConfig(text string) models.JSON {
	v, ok := DecodeJSON(text)
	if !ok || !v.IsObject() {
		return models.EmptyObject()
	}
	return v
}

// NormalizeConfig validates caller-supplied panel config: nil and JSON null
// become {}, any other non-object is rejected with ErrorInvalidData.
func NormalizeConfig(cfg *models.JSON) (models.JSON, error) {
	if cfg == nil || cfg.IsNull() {
		return models.EmptyObject(), nil
	}
	if !cfg.IsObject() {
		return models.JSON{}, fmt.Errorf("%w: panel config must be a JSON object", common.ErrorInvalidData)
	}
	return *cfg, nil
}

// EncodeColumns stores an ordered column list as a JSON array.
func EncodeColumns(columns []string) (string, error) {
	if columns == nil {
		columns = []string{}
	}
	b, err := json.Marshal(columns)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInvalidData, err)
	}
	return string(b), nil
}

// DecodeColumns reads a stored column list; malformed text yields an empty list.
func DecodeColumns(text string) []string {
	var cols []string
	if err := json.Unmarshal([]byte(text), &cols); err != nil || cols == nil {
		return []string{}
	}
	return cols
}

// PanelFromRecord builds the typed panel from its flat row. Data is left nil;
// dataset resolution belongs to the composition layer.
func PanelFromRecord(r models.PanelRecord) (models.Panel, error) {
	created, err := ParseTime(r.CreatedAt)
	if err != nil {
		return models.Panel{}, err
	}
	updated, err := ParseTime(r.UpdatedAt)
	if err != nil {
		return models.Panel{}, err
	}

	return models.Panel{
		ID:        r.ID,
		BoardID:   r.BoardID,
		Type:      r.Type,
		Title:     r.Title,
		Position:  models.Position{X: r.X, Y: r.Y},
		Size:      models.Size{Width: r.Width, Height: r.Height},
		ZIndex:    r.ZIndex,
		Active:    r.Active,
		DatasetID: r.DatasetID,
		Config:    DecodeConfig(r.Config),
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// PanelToRecord flattens p for storage.
func PanelToRecord(p models.Panel) (models.PanelRecord, error) {
	cfg, err := NormalizeConfig(&p.Config)
	if err != nil {
		return models.PanelRecord{}, err
	}
	text, err := EncodeJSON(cfg)
	if err != nil {
		return models.PanelRecord{}, err
	}

	return models.PanelRecord{
		ID:        p.ID,
		BoardID:   p.BoardID,
		Type:      p.Type,
		Title:     p.Title,
		X:         p.Position.X,
		Y:         p.Position.Y,
		Width:     p.Size.Width,
		Height:    p.Size.Height,
		ZIndex:    p.ZIndex,
		Active:    p.Active,
		DatasetID: p.DatasetID,
		Config:    text,
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTime(p.UpdatedAt),
	}, nil
}

// DatasetFromRecord builds a dataset header with an empty row list.
func DatasetFromRecord(r models.DatasetRecord) (models.GlobalDataset, error) {
	created, err := ParseTime(r.CreatedAt)
	if err != nil {
		return models.GlobalDataset{}, err
	}
	updated, err := ParseTime(r.UpdatedAt)
	if err != nil {
		return models.GlobalDataset{}, err
	}

	return models.GlobalDataset{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Columns:   DecodeColumns(r.Columns),
		Rows:      []models.DatasetRow{},
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// DatasetRowFromRecord decodes one stored row. ok is false when the payload
// or timestamp is unreadable and the row should be dropped.
func DatasetRowFromRecord(r models.DatasetRowRecord) (models.DatasetRow, bool) {
	data, ok := DecodeJSON(r.Data)
	if !ok {
		return models.DatasetRow{}, false
	}
	created, err := ParseTime(r.CreatedAt)
	if err != nil {
		return models.DatasetRow{}, false
	}
	return models.DatasetRow{
		ID:        r.ID,
		DatasetID: r.DatasetID,
		Data:      data,
		CreatedAt: created,
	}, true
}

// BoolToInt maps a flag to the 0/1 integer stored in the database.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

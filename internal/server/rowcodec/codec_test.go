package rowcodec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	updated = time.Date(2024, 11, 28, 12, 30, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func TestFormatTime_SortsChronologically(t *testing.T) {
	a := FormatTime(time.Date(2024, 1, 1, 0, 0, 5, 100000000, time.UTC))
	b := FormatTime(time.Date(2024, 1, 1, 0, 0, 5, 120000000, time.UTC))
	c := FormatTime(time.Date(2024, 1, 1, 0, 0, 5, 120000001, time.UTC))

	assert.Equal(t, "2024-01-01T00:00:05.100000000Z", a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestParseTime(t *testing.T) {
	local := time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("CET", 3600))

	got, err := ParseTime(FormatTime(local))
	require.NoError(t, err)
	assert.True(t, got.Equal(local))
	assert.Equal(t, time.UTC, got.Location())

	got, err = ParseTime("2024-11-28T10:00:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC), got)

	_, err = ParseTime("yesterday")
	assert.ErrorIs(t, err, common.ErrorInvalidData)
}

func TestDecodeConfig_DegradesToEmptyObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"curveType":"linear"}`, `{"curveType":"linear"}`},
		{"malformed", `{"curveType":`, `{}`},
		{"empty text", ``, `{}`},
		{"array", `[1,2]`, `{}`},
		{"null", `null`, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeConfig(tt.in).String())
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg, err := NormalizeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", cfg.String())

	null := models.JSON{}
	cfg, err = NormalizeConfig(&null)
	require.NoError(t, err)
	assert.Equal(t, "{}", cfg.String())

	obj := models.MustJSON(map[string]any{"legendPosition": "top"})
	cfg, err = NormalizeConfig(&obj)
	require.NoError(t, err)
	assert.Equal(t, `{"legendPosition":"top"}`, cfg.String())

	list := models.MustJSON([]any{"a"})
	_, err = NormalizeConfig(&list)
	assert.ErrorIs(t, err, common.ErrorInvalidData)
}

func TestColumns_RoundTripKeepsOrder(t *testing.T) {
	text, err := EncodeColumns([]string{"date", "Ingresos", "Egresos", "Beneficio"})
	require.NoError(t, err)
	assert.Equal(t, `["date","Ingresos","Egresos","Beneficio"]`, text)
	assert.Equal(t, []string{"date", "Ingresos", "Egresos", "Beneficio"}, DecodeColumns(text))

	text, err = EncodeColumns(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, text)

	assert.Equal(t, []string{}, DecodeColumns(`{broken`))
	assert.Equal(t, []string{}, DecodeColumns(`null`))
}

func TestPanelRecord_RoundTrip(t *testing.T) {
	p := models.Panel{
		ID:        "p1",
		BoardID:   "b1",
		Type:      "chart",
		Title:     "Ingresos vs Egresos",
		Position:  models.Position{X: 50, Y: 80},
		Size:      models.Size{Width: 900, Height: 400},
		ZIndex:    3,
		Active:    true,
		DatasetID: strPtr("ds1"),
		Config:    models.MustJSON(map[string]any{"curveType": "linear"}),
		CreatedAt: created,
		UpdatedAt: updated,
	}

	rec, err := PanelToRecord(p)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.X)
	assert.Equal(t, 80, rec.Y)
	assert.Equal(t, 900, rec.Width)
	assert.Equal(t, 400, rec.Height)
	assert.Equal(t, `{"curveType":"linear"}`, rec.Config)
	assert.Equal(t, "2024-11-28T10:00:00.000000000Z", rec.CreatedAt)

	back, err := PanelFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, p.Position, back.Position)
	assert.Equal(t, p.Size, back.Size)
	assert.Equal(t, p.Config.String(), back.Config.String())
	assert.Equal(t, "ds1", *back.DatasetID)
	assert.True(t, back.CreatedAt.Equal(created))
	assert.Nil(t, back.Data)
}

func TestPanelToRecord_DefaultsNullConfig(t *testing.T) {
	rec, err := PanelToRecord(models.Panel{ID: "p1", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, "{}", rec.Config)
}

func TestPanelFromRecord_BadTimestamp(t *testing.T) {
	_, err := PanelFromRecord(models.PanelRecord{ID: "p1", Config: "{}", CreatedAt: "never", UpdatedAt: "never"})
	assert.ErrorIs(t, err, common.ErrorInvalidData)
}

func TestDatasetRowFromRecord(t *testing.T) {
	row, ok := DatasetRowFromRecord(models.DatasetRowRecord{
		ID: "r1", DatasetID: "ds1", Data: `{"CPU":12,"Estado":"OK"}`, CreatedAt: FormatTime(created),
	})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"CPU": float64(12), "Estado": "OK"}, row.Data.Interface())

	_, ok = DatasetRowFromRecord(models.DatasetRowRecord{ID: "r2", Data: `{"CPU":`, CreatedAt: FormatTime(created)})
	assert.False(t, ok)

	_, ok = DatasetRowFromRecord(models.DatasetRowRecord{ID: "r3", Data: `1`, CreatedAt: "?"})
	assert.False(t, ok)
}

func TestDatasetFromRecord(t *testing.T) {
	ds, err := DatasetFromRecord(models.DatasetRecord{
		ID: "ds1", Name: "Ventas", Type: "table", Columns: `["a","b"]`,
		CreatedAt: FormatTime(created), UpdatedAt: FormatTime(updated),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)
	assert.NotNil(t, ds.Rows)
	assert.Empty(t, ds.Rows)
	assert.True(t, ds.UpdatedAt.Equal(updated))
}

func TestBoolToInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
}

// The golden file pins the wire shape of a composed board.
func TestComposedBoard_Golden(t *testing.T) {
	row, ok := DatasetRowFromRecord(models.DatasetRowRecord{
		ID: "r1", DatasetID: "ds1", Data: `{"date":"2024-01-01","Ingresos":45000}`, CreatedAt: FormatTime(created),
	})
	require.True(t, ok)

	stat, err := PanelFromRecord(models.PanelRecord{
		ID: "p1", BoardID: "b1", Type: "stat", Title: "Ingresos Totales",
		X: 50, Y: 50, Width: 280, Height: 180, ZIndex: 1,
		Config:    `{"valor":"$1.2M","tendencia":"up"}`,
		CreatedAt: FormatTime(created), UpdatedAt: FormatTime(created),
	})
	require.NoError(t, err)

	chart, err := PanelFromRecord(models.PanelRecord{
		ID: "p2", BoardID: "b1", Type: "chart", Title: "Finanzas",
		X: 400, Y: 50, Width: 900, Height: 400, ZIndex: 2, Active: true,
		DatasetID: strPtr("ds1"), Config: `not json`,
		CreatedAt: FormatTime(created), UpdatedAt: FormatTime(updated),
	})
	require.NoError(t, err)
	chart.Data = &models.GlobalDataset{
		ID: "ds1", Name: "Finanzas 2024", Type: "chart",
		Columns:   []string{"date", "Ingresos"},
		Rows:      []models.DatasetRow{row},
		CreatedAt: created, UpdatedAt: updated,
	}

	board := models.Board{
		ID: "b1", UserID: "u1", Title: "Resumen Ejecutivo", Description: "KPIs principales",
		Icon: "i-heroicons-presentation-chart-line", Color: "blue",
		CreatedAt: created, UpdatedAt: updated,
		Panels: []models.Panel{stat, chart},
	}

	out, err := json.MarshalIndent(board, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "composed_board", out)
}

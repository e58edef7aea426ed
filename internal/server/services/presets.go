package services

import "github.com/dmitrijs2005/boardkeeper/internal/server/models"

// PanelSizePreset holds the default size of a panel type and the bounds a
// resize is clamped to.
type PanelSizePreset struct {
	Default models.Size
	Min     models.Size
	Max     models.Size
}

var panelSizePresets = map[string]PanelSizePreset{
	"stat":     {Default: models.Size{Width: 280, Height: 200}, Min: models.Size{Width: 200, Height: 150}, Max: models.Size{Width: 600, Height: 400}},
	"chart":    {Default: models.Size{Width: 900, Height: 400}, Min: models.Size{Width: 300, Height: 250}, Max: models.Size{Width: 900, Height: 600}},
	"list":     {Default: models.Size{Width: 350, Height: 400}, Min: models.Size{Width: 280, Height: 300}, Max: models.Size{Width: 500, Height: 800}},
	"table":    {Default: models.Size{Width: 600, Height: 400}, Min: models.Size{Width: 400, Height: 300}, Max: models.Size{Width: 1200, Height: 800}},
	"map":      {Default: models.Size{Width: 500, Height: 450}, Min: models.Size{Width: 400, Height: 400}, Max: models.Size{Width: 1000, Height: 800}},
	"calendar": {Default: models.Size{Width: 450, Height: 500}, Min: models.Size{Width: 350, Height: 400}, Max: models.Size{Width: 800, Height: 900}},
	"notes":    {Default: models.Size{Width: 300, Height: 250}, Min: models.Size{Width: 250, Height: 200}, Max: models.Size{Width: 600, Height: 600}},
}

// PresetFor returns the size preset of a panel type. Types are an open set;
// ok is false for types without a preset.
func PresetFor(panelType string) (PanelSizePreset, bool) {
	p, ok := panelSizePresets[panelType]
	return p, ok
}

// DefaultPanelSize is the initial size for a new panel of panelType.
func DefaultPanelSize(panelType string) (models.Size, bool) {
	p, ok := PresetFor(panelType)
	return p.Default, ok
}

// ClampPanelSize keeps size within the preset bounds of panelType. Sizes of
// unknown types pass through unchanged.
func ClampPanelSize(panelType string, size models.Size) models.Size {
	p, ok := PresetFor(panelType)
	if !ok {
		return size
	}
	return models.Size{
		Width:  min(max(size.Width, p.Min.Width), p.Max.Width),
		Height: min(max(size.Height, p.Min.Height), p.Max.Height),
	}
}

package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "lotus")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Drag and drop
	Dragging   string `yaml:"dragging"`    // card being carried
	DropTarget string `yaml:"drop_target"` // column or card under the carried card

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the built-in scheme names
var Presets = []string{"default", "monochrome", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Dragging, preset.Dragging)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
	fill(&c.StatusBarBg, preset.StatusBarBg)
	fill(&c.StatusBarText, preset.StatusBarText)
}

// MergeFrom overrides every color that other sets
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	take := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	take(&c.Preset, other.Preset)
	take(&c.Accent, other.Accent)
	take(&c.ColumnBorder, other.ColumnBorder)
	take(&c.CardBorder, other.CardBorder)
	take(&c.CardBackground, other.CardBackground)
	take(&c.SelectedBorder, other.SelectedBorder)
	take(&c.SelectedBg, other.SelectedBg)
	take(&c.Dragging, other.Dragging)
	take(&c.DropTarget, other.DropTarget)
	take(&c.Title, other.Title)
	take(&c.Subtle, other.Subtle)
	take(&c.Normal, other.Normal)
	take(&c.InfoFg, other.InfoFg)
	take(&c.InfoBg, other.InfoBg)
	take(&c.WarningFg, other.WarningFg)
	take(&c.WarningBg, other.WarningBg)
	take(&c.ErrorFg, other.ErrorFg)
	take(&c.ErrorBg, other.ErrorBg)
	take(&c.StatusBarBg, other.StatusBarBg)
	take(&c.StatusBarText, other.StatusBarText)
}

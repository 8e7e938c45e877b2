package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Drag and drop
	PickUp string `yaml:"pick_up"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Board
	Search        string `yaml:"search"`
	Retry         string `yaml:"retry"`
	Refresh       string `yaml:"refresh"`
	ToggleDensity string `yaml:"toggle_density"`
	HideColumn    string `yaml:"hide_column"`
	PinColumn     string `yaml:"pin_column"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PickUp: "space",
		Drop:   "enter",
		Cancel: "esc",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Search:        "/",
		Retry:         "r",
		Refresh:       "R",
		ToggleDensity: "d",
		HideColumn:    "x",
		PinColumn:     "p",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.PickUp, defaults.PickUp)
	fill(&k.Drop, defaults.Drop)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.Search, defaults.Search)
	fill(&k.Retry, defaults.Retry)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ToggleDensity, defaults.ToggleDensity)
	fill(&k.HideColumn, defaults.HideColumn)
	fill(&k.PinColumn, defaults.PinColumn)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}

package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent: "#624C83",

		// UI element colors
		ColumnBorder:   "#8A8980",
		CardBorder:     "#C7C7AA",
		CardBackground: "#E7DBA0",
		SelectedBorder: "#4D699B",
		SelectedBg:     "#C9CBD1",

		// Drag and drop
		Dragging:   "#CC6D00",
		DropTarget: "#6F894E",

		// Text colors
		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		// Notification colors
		InfoFg:    "#4E8CA2",
		InfoBg:    "#C7D7E0",
		WarningFg: "#E98A00",
		WarningBg: "#F9D791",
		ErrorFg:   "#E82424",
		ErrorBg:   "#D9A594",

		// Status bar
		StatusBarBg:   "#624C83",
		StatusBarText: "#F2ECBC",
	}
}

package theme

// Purple palette.
var purpleLight = Theme{
	ID:     "purple-light",
	Name:   "Purple Light",
	IsDark: false,
	Colors: Colors{
		Primary:        "#8774e1",
		PrimaryDark:    "#6a5acd",
		Secondary:      "#54a0ff",
		Background:     "#f5f7fa",
		CardBackground: "#f8f9fa",
		ItemBackground: "#ffffff",
		TextPrimary:    "#333333",
		TextSecondary:  "#666666",
		BorderColor:    "rgba(0, 0, 0, 0.1)",
		Success:        "#4cd137",
		Danger:         "#d63031",
		Warning:        "#ffbe76",
	},
}

var purpleDark = Theme{
	ID:     "purple-dark",
	Name:   "Purple Dark",
	IsDark: true,
	Colors: Colors{
		Primary:        "#9b7dff",
		PrimaryDark:    "#8774e1",
		Secondary:      "#5aa3ff",
		Background:     "#121212",
		CardBackground: "#1e1e1e",
		ItemBackground: "#2c2c2c",
		TextPrimary:    "#f1f1f1",
		TextSecondary:  "#c7c7c7",
		BorderColor:    "rgba(255, 255, 255, 0.1)",
		Success:        "#5adb4c",
		Danger:         "#ff5252",
		Warning:        "#ffc14d",
	},
}

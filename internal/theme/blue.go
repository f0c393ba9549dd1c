package theme

// Blue palette.
var blueLight = Theme{
	ID:     "blue-light",
	Name:   "Blue Light",
	IsDark: false,
	Colors: Colors{
		Primary:        "#3498db",
		PrimaryDark:    "#2980b9",
		Secondary:      "#67e8f9",
		Background:     "#f0f5fa",
		CardBackground: "#f5f9ff",
		ItemBackground: "#ffffff",
		TextPrimary:    "#333333",
		TextSecondary:  "#666666",
		BorderColor:    "rgba(0, 0, 0, 0.1)",
		Success:        "#4cd137",
		Danger:         "#d63031",
		Warning:        "#ffbe76",
	},
}

var blueDark = Theme{
	ID:     "blue-dark",
	Name:   "Blue Dark",
	IsDark: true,
	Colors: Colors{
		Primary:        "#4fb3ff",
		PrimaryDark:    "#3498db",
		Secondary:      "#67e8f9",
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

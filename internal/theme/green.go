package theme

// Green palette.
var greenLight = Theme{
	ID:     "green-light",
	Name:   "Green Light",
	IsDark: false,
	Colors: Colors{
		Primary:        "#2ecc71",
		PrimaryDark:    "#27ae60",
		Secondary:      "#6decb9",
		Background:     "#f0faf5",
		CardBackground: "#f5fff9",
		ItemBackground: "#ffffff",
		TextPrimary:    "#333333",
		TextSecondary:  "#666666",
		BorderColor:    "rgba(0, 0, 0, 0.1)",
		Success:        "#4cd137",
		Danger:         "#d63031",
		Warning:        "#ffbe76",
	},
}

var greenDark = Theme{
	ID:     "green-dark",
	Name:   "Green Dark",
	IsDark: true,
	Colors: Colors{
		Primary:        "#42d77d",
		PrimaryDark:    "#2ecc71",
		Secondary:      "#6decb9",
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

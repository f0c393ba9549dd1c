package theme

// Default theme ids used when nothing valid is persisted.
const (
	DefaultLightID = "purple-light"
	DefaultDarkID  = "purple-dark"
)

// BuiltinThemes returns the shipped themes in registration order.
func BuiltinThemes() []Theme {
	return []Theme{
		purpleLight,
		purpleDark,
		blueLight,
		blueDark,
		greenLight,
		greenDark,
	}
}

// Builtin returns a registry of the shipped themes.
func Builtin() *Registry {
	r, err := NewRegistry(BuiltinThemes()...)
	if err != nil {
		// The shipped themes are complete and unique; see TestBuiltinRegistry.
		panic("theme: invalid builtin themes: " + err.Error())
	}
	return r
}

// Package theme owns the to-do front-end's color themes: a static registry of
// light/dark variants and a Manager that resolves, applies, and persists the
// active one.
package theme

import (
	"regexp"
	"strings"
)

// Mode suffixes used in theme ids (<palette>-<mode>).
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Role names a semantic color slot. The set is closed: every theme defines
// every role listed in Roles.
type Role string

const (
	RolePrimary        Role = "primary"
	RolePrimaryDark    Role = "primaryDark"
	RoleSecondary      Role = "secondary"
	RoleBackground     Role = "background"
	RoleCardBackground Role = "cardBackground"
	RoleItemBackground Role = "itemBackground"
	RoleTextPrimary    Role = "textPrimary"
	RoleTextSecondary  Role = "textSecondary"
	RoleBorderColor    Role = "borderColor"
	RoleSuccess        Role = "success"
	RoleDanger         Role = "danger"
	RoleWarning        Role = "warning"
)

// Roles lists the closed role set in application order.
var Roles = []Role{
	RolePrimary,
	RolePrimaryDark,
	RoleSecondary,
	RoleBackground,
	RoleCardBackground,
	RoleItemBackground,
	RoleTextPrimary,
	RoleTextSecondary,
	RoleBorderColor,
	RoleSuccess,
	RoleDanger,
	RoleWarning,
}

// Colors holds one value per role. Values are opaque (hex or rgba notation)
// and are passed through to surfaces untouched.
type Colors struct {
	Primary        string
	PrimaryDark    string
	Secondary      string
	Background     string
	CardBackground string
	ItemBackground string
	TextPrimary    string
	TextSecondary  string
	BorderColor    string
	Success        string
	Danger         string
	Warning        string
}

// Get returns the value for role, or "" for a role outside the closed set.
func (c Colors) Get(role Role) string {
	switch role {
	case RolePrimary:
		return c.Primary
	case RolePrimaryDark:
		return c.PrimaryDark
	case RoleSecondary:
		return c.Secondary
	case RoleBackground:
		return c.Background
	case RoleCardBackground:
		return c.CardBackground
	case RoleItemBackground:
		return c.ItemBackground
	case RoleTextPrimary:
		return c.TextPrimary
	case RoleTextSecondary:
		return c.TextSecondary
	case RoleBorderColor:
		return c.BorderColor
	case RoleSuccess:
		return c.Success
	case RoleDanger:
		return c.Danger
	case RoleWarning:
		return c.Warning
	}
	return ""
}

// Missing returns the roles with an empty value, in role order.
func (c Colors) Missing() []Role {
	var missing []Role
	for _, r := range Roles {
		if strings.TrimSpace(c.Get(r)) == "" {
			missing = append(missing, r)
		}
	}
	return missing
}

// Theme is an immutable named bundle of colors plus a light/dark flag.
type Theme struct {
	ID     string
	Name   string
	IsDark bool
	Colors Colors
}

// Palette returns the id portion before the first "-".
func (t Theme) Palette() string {
	return PaletteOf(t.ID)
}

// Counterpart returns the id of the same palette in the opposite mode.
func (t Theme) Counterpart() string {
	mode := ModeDark
	if t.IsDark {
		mode = ModeLight
	}
	return t.Palette() + "-" + mode
}

// PaletteOf returns the portion of id before its first "-" separator, or the
// whole id when there is none.
func PaletteOf(id string) string {
	base, _, _ := strings.Cut(id, "-")
	return base
}

var kebabBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Kebab converts a camelCase role name to kebab-case: primaryDark -> primary-dark.
func Kebab(name string) string {
	return strings.ToLower(kebabBoundary.ReplaceAllString(name, "$1-$2"))
}

// VariableName returns the visual variable name a role is applied under.
func VariableName(role Role) string {
	return "--" + Kebab(string(role))
}

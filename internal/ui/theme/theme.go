package theme

import (
	"image/color"

	"focustimer/internal/core/model"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to a single variant.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (pinned variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return pinned.Theme.Color(name, pinned.variant)
}

// For returns the Fyne theme for a settings theme. ThemeAuto follows the OS.
func For(selected model.Theme) fyne.Theme {
	switch selected {
	case model.ThemeDark:
		return variantTheme{Theme: fynetheme.DefaultTheme(), variant: fynetheme.VariantDark}
	case model.ThemeLight:
		return variantTheme{Theme: fynetheme.DefaultTheme(), variant: fynetheme.VariantLight}
	default:
		return fynetheme.DefaultTheme()
	}
}

// Apply sets the app theme from settings.
func Apply(app fyne.App, selected model.Theme) {
	app.Settings().SetTheme(For(selected))
}

package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// appTheme adapts a Palette to fyne.Theme. The palette decides every mapped
// color regardless of the system light/dark variant.
type appTheme struct {
	palette Palette
	base    fyne.Theme
}

// New builds a fyne theme from a palette. Fonts, icons and sizes come from
// fyne's default theme.
func New(p Palette) fyne.Theme {
	return &appTheme{
		palette: p,
		base:    fynetheme.DefaultTheme(),
	}
}

// ForTheme is shorthand for New(PaletteFor(t))
func ForTheme(t Theme) fyne.Theme {
	return New(PaletteFor(t))
}

func (a *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	p := a.palette
	switch name {
	case fynetheme.ColorNameBackground,
		fynetheme.ColorNameHeaderBackground:
		return p.Background
	case fynetheme.ColorNameMenuBackground,
		fynetheme.ColorNameOverlayBackground:
		return p.ListBackground
	case fynetheme.ColorNameForeground:
		return p.Foreground
	case fynetheme.ColorNameInputBackground:
		return p.InputBackground
	case fynetheme.ColorNameButton:
		return p.ButtonBackground
	case fynetheme.ColorNameHover,
		fynetheme.ColorNamePressed,
		fynetheme.ColorNameFocus,
		fynetheme.ColorNameSelection,
		fynetheme.ColorNameInputBorder:
		return p.Highlight
	case fynetheme.ColorNamePlaceHolder:
		return p.Placeholder
	case fynetheme.ColorNameDisabled,
		fynetheme.ColorNameSeparator:
		return p.Muted
	}
	return a.base.Color(name, a.variant())
}

func (a *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return a.base.Font(style)
}

func (a *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return a.base.Icon(name)
}

func (a *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return a.base.Size(name)
}

// variant picks the fyne variant that matches the palette's brightness so the
// unmapped colors (errors, shadows, scrollbars) stay readable.
func (a *appTheme) variant() fyne.ThemeVariant {
	bg := a.palette.Background
	if int(bg.R)+int(bg.G)+int(bg.B) < 3*0x80 {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"themed-todo/internal/assets"
	"themed-todo/internal/theme"
)

// Header shows the logo next to the window title
type Header struct {
	container *fyne.Container
	logo      *canvas.Image
	title     *canvas.Text
}

func NewHeader(title string) *Header {
	h := &Header{}

	h.logo = canvas.NewImageFromImage(assets.Placeholder(assets.LogoSize))
	h.logo.FillMode = canvas.ImageFillContain
	h.logo.SetMinSize(fyne.NewSize(assets.LogoSize, assets.LogoSize))

	h.title = canvas.NewText(title, theme.PaletteFor(theme.Light).Foreground)
	h.title.TextSize = 20
	h.title.TextStyle = fyne.TextStyle{Bold: true}

	h.container = container.NewHBox(h.logo, container.NewCenter(h.title))
	return h
}

func (h *Header) SetLogo(img image.Image) {
	h.logo.Image = img
	h.logo.Refresh()
}

func (h *Header) ApplyPalette(p theme.Palette) {
	h.title.Color = p.Foreground
	h.title.Refresh()
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

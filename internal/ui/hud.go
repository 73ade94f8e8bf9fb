//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the flight status panel to the right of the cockpit view. P
// toggles the parameter listing below the status.
type HUD struct {
	view       FlightView
	width      int
	panel      *ebiten.Image
	lastHeight int

	showParams bool
	status     []string
	params     []string
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(view FlightView, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{view: view, width: width, showParams: true}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text and handles the panel toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.showParams = !h.showParams
	}
	h.status = StatusLines(h.view)
	h.params = h.params[:0]
	if h.showParams {
		h.params = append(h.params, h.view.Parameters().Lines()...)
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, "Lava Flight", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight + lineHeight/2

	statusColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for _, line := range h.status {
		if strings.HasPrefix(line, "FLIGHT OVER") {
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 255, G: 90, B: 60, A: 255})
		} else {
			text.Draw(h.panel, line, face, panelPadding, y, statusColor)
		}
		y += lineHeight
	}

	if h.showParams {
		y += lineHeight / 2
		for _, line := range h.params {
			if y > height-panelPadding {
				break
			}
			col := color.RGBA{R: 160, G: 160, B: 170, A: 255}
			if !strings.HasPrefix(line, " ") {
				col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
			}
			text.Draw(h.panel, line, face, panelPadding, y, col)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

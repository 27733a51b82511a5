package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/RodEsp/schotter/internal/config"
)

var (
	panelBg      = color.RGBA{R: 28, G: 32, B: 40, A: 255}
	trackColor   = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	fillColor    = color.RGBA{R: 130, G: 150, B: 190, A: 255}
	knobColor    = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	buttonNormal = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHover  = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPress  = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	borderColor  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	focusBorder  = color.RGBA{R: 220, G: 200, B: 120, A: 255}
)

const maxSeedDigits = 18

// panel is the immediate-mode control overlay. All interactions mutate the
// field synchronously within the frame they happen in.
type panel struct {
	field *Field

	dispDragging bool
	rotDragging  bool

	randHovered   bool
	randPressed   bool
	exportHovered bool
	exportPressed bool

	seedFocused bool
	seedBuf     string
}

func newPanel(f *Field) *panel {
	return &panel{field: f}
}

func sliderRowY(i int) int {
	return config.PanelY + (i+1)*config.PanelRowStep
}

func buttonRowY() int {
	return config.PanelY + 3*config.PanelRowStep
}

func seedFieldX() int {
	return config.PanelX + config.ButtonWidth + 14
}

func exportButtonX() int {
	return config.PanelX + config.PanelWidth - config.ButtonWidth
}

// update runs one frame of panel interaction. onExport is invoked when the
// Export button is clicked.
func (p *panel) update(onExport func()) {
	mx, my := ebiten.CursorPosition()

	p.updateSlider(mx, my, 0, &p.dispDragging, &p.field.DispAdj)
	p.updateSlider(mx, my, 1, &p.rotDragging, &p.field.RotAdj)
	p.updateButtons(mx, my, onExport)
	p.updateSeedField(mx, my)
}

// updateSlider implements drag-to-set on one slider track: pressing inside
// the track grabs it, and the value follows the cursor until release.
func (p *panel) updateSlider(mx, my, row int, dragging *bool, value *float64) {
	y := sliderRowY(row)
	hit := inRect(mx, my, config.PanelX, y-4, config.SliderWidth, config.SliderHeight+8)

	if hit && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		*dragging = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		*dragging = false
	}
	if *dragging {
		*value = sliderValue(mx, config.PanelX, config.SliderWidth, 0, config.FactorMax)
	}
}

func (p *panel) updateButtons(mx, my int, onExport func()) {
	y := buttonRowY()

	p.randHovered = inRect(mx, my, config.PanelX, y, config.ButtonWidth, config.ButtonHeight)
	p.exportHovered = inRect(mx, my, exportButtonX(), y, config.ButtonWidth, config.ButtonHeight)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.randPressed = p.randHovered
		p.exportPressed = p.exportHovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if p.randPressed && p.randHovered {
			p.field.Randomize()
		}
		if p.exportPressed && p.exportHovered {
			onExport()
		}
		p.randPressed = false
		p.exportPressed = false
	}
}

// updateSeedField implements a click-to-focus numeric entry: digits append to
// the buffer, Enter commits, Escape reverts, and clicking anywhere outside
// the field commits as well.
func (p *panel) updateSeedField(mx, my int) {
	y := buttonRowY()
	hit := inRect(mx, my, seedFieldX(), y, config.SeedWidth, config.ButtonHeight)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case hit && !p.seedFocused:
			p.seedFocused = true
			p.seedBuf = strconv.FormatInt(p.field.Seed, 10)
		case !hit && p.seedFocused:
			p.commitSeed()
		}
	}

	if !p.seedFocused {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= '0' && r <= '9' && len(p.seedBuf) < maxSeedDigits {
			p.seedBuf += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.seedBuf) > 0 {
		p.seedBuf = p.seedBuf[:len(p.seedBuf)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		p.commitSeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.seedFocused = false
		p.seedBuf = ""
	}
}

// commitSeed applies the buffer to the field's seed. Positions are left
// alone: only the jitter changes on the next animation step.
func (p *panel) commitSeed() {
	if v, ok := parseSeed(p.seedBuf); ok {
		p.field.Seed = v
	}
	p.seedFocused = false
	p.seedBuf = ""
}

// focused reports whether the seed field currently captures the keyboard.
func (p *panel) focused() bool {
	return p.seedFocused
}

func (p *panel) draw(screen *ebiten.Image) {
	bandH := buttonRowY() + config.ButtonHeight + 10
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, float32(bandH), panelBg, false)

	ebitenutil.DebugPrintAt(screen, "Schotter Control Panel", config.PanelX, config.PanelY-4)

	p.drawSlider(screen, 0, "Displacement Factor", p.field.DispAdj)
	p.drawSlider(screen, 1, "Rotation Factor", p.field.RotAdj)

	p.drawButton(screen, config.PanelX, "Randomize", p.randHovered, p.randPressed)
	p.drawButton(screen, exportButtonX(), "Export...", p.exportHovered, p.exportPressed)
	p.drawSeedField(screen)
}

func (p *panel) drawSlider(screen *ebiten.Image, row int, label string, value float64) {
	x := float32(config.PanelX)
	y := float32(sliderRowY(row))

	frac := clamp01(value / config.FactorMax)
	fillW := frac * config.SliderWidth

	vector.DrawFilledRect(screen, x, y, config.SliderWidth, config.SliderHeight, trackColor, false)
	vector.DrawFilledRect(screen, x, y, float32(fillW), config.SliderHeight, fillColor, false)
	vector.DrawFilledCircle(screen, x+float32(fillW), y+config.SliderHeight/2, 7, knobColor, true)

	text := fmt.Sprintf("%s  %.2f", label, value)
	ebitenutil.DebugPrintAt(screen, text, config.PanelX+config.SliderWidth+14, sliderRowY(row)-2)
}

func (p *panel) drawButton(screen *ebiten.Image, x int, label string, hovered, pressed bool) {
	y := buttonRowY()

	bg := buttonNormal
	if pressed {
		bg = buttonPress
	} else if hovered {
		bg = buttonHover
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), config.ButtonWidth, config.ButtonHeight, bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.ButtonWidth, config.ButtonHeight, 1, borderColor, false)

	textW := len(label) * 6 // approximate debug glyph advance
	ebitenutil.DebugPrintAt(screen, label, x+(config.ButtonWidth-textW)/2, y+1)
}

func (p *panel) drawSeedField(screen *ebiten.Image) {
	x, y := seedFieldX(), buttonRowY()

	text := strconv.FormatInt(p.field.Seed, 10)
	border := borderColor
	if p.seedFocused {
		text = p.seedBuf + "_"
		border = focusBorder
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), config.SeedWidth, config.ButtonHeight, panelBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.SeedWidth, config.ButtonHeight, 1, border, false)
	ebitenutil.DebugPrintAt(screen, text, x+4, y+1)
	ebitenutil.DebugPrintAt(screen, "Seed", x+config.SeedWidth+8, y+1)
}

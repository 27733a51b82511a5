// Package game implements the schotter window: a grid of stones displaced
// and rotated by seeded noise that grows with row depth, a build-up
// animation that walks each stone from the origin to its grid slot, and an
// immediate-mode control panel for the adjustment parameters.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/RodEsp/schotter/internal/config"
)

// Game ties the field, the panel and the input handling into ebiten's game
// loop. Everything runs on the single loop goroutine; no locking anywhere.
type Game struct {
	field  *Field
	panel  *panel
	logger *log.Logger

	program          string
	start            time.Time
	captureRequested bool
}

// New creates the game with a fresh field. program names the window and
// prefixes capture files.
func New(program string, logger *log.Logger) *Game {
	f := NewField()
	return &Game{
		field:   f,
		panel:   newPanel(f),
		logger:  logger,
		program: program,
		start:   time.Now(),
	}
}

// Update runs one frame: panel interaction first so slider and seed edits
// land before this frame's animation step, then keyboard shortcuts, then one
// step over the whole field.
func (g *Game) Update() error {
	g.panel.update(g.export)
	g.handleKeys()
	g.field.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	drawField(screen, g.field)
	g.panel.draw(screen)

	if g.captureRequested {
		g.captureRequested = false
		name := captureName(g.program, time.Since(g.start).Seconds())
		if err := saveFrame(screen, name); err != nil {
			g.logger.Error("frame capture failed", "err", err)
		} else {
			g.logger.Info("captured frame", "path", name)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) export() {
	path, err := exportDialog(g.field)
	if err != nil {
		g.logger.Error("export failed", "err", err)
		return
	}
	if path == "" {
		return
	}
	g.logger.Info("exported scene", "path", path)
}

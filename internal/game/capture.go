package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/RodEsp/schotter/internal/config"
)

// captureName builds the capture file name by concatenating the program name,
// the elapsed application time in seconds, and the png extension.
func captureName(program string, elapsed float64) string {
	return fmt.Sprintf("%s%v.png", program, elapsed)
}

// saveFrame writes the rendered frame, panel included, as a PNG.
func saveFrame(screen *ebiten.Image, path string) error {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := &image.RGBA{Pix: pix, Stride: 4 * b.Dx(), Rect: b}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create capture file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode capture: %w", err)
	}
	return f.Close()
}

// exportScene renders the stones offscreen, without the panel, and saves the
// result as a PNG. The geometry matches the on-screen renderer exactly.
func exportScene(f *Field, path string) error {
	dc := gg.NewContext(config.WindowWidth, config.WindowHeight)
	dc.SetColor(background)
	dc.Clear()
	dc.SetColor(stoneColor)
	dc.SetLineWidth(config.LineWidth * config.Size)

	for i := range f.Stones {
		s := &f.Stones[i]
		cx, cy := screenPos(s.X+s.XOffset, s.Y+s.YOffset)
		dc.Push()
		dc.RotateAbout(s.Rotation, cx, cy)
		dc.DrawRectangle(cx-config.Size/2.0, cy-config.Size/2.0, config.Size, config.Size)
		dc.Stroke()
		dc.Pop()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save export: %w", err)
	}
	return nil
}

// exportDialog asks for a destination and writes the current scene there.
// Returns the chosen path, or "" when the dialog was canceled.
func exportDialog(f *Field) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Image"),
		zenity.Filename("schotter.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, exportScene(f, path)
}

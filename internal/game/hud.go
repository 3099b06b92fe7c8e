package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// hudText bundles the proportional faces the HUD draws with. The event log and
// inspector keep the fixed debug font so their columns line up.
type hudText struct {
	normal *text.GoTextFace
	small  *text.GoTextFace
}

func newHUDText() *hudText {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load HUD font: %v", err)
	}
	return &hudText{
		normal: &text.GoTextFace{Source: src, Size: 13},
		small:  &text.GoTextFace{Source: src, Size: 11},
	}
}

func (h *hudText) draw(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func (h *hudText) width(s string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(s, face, face.Size)
	return w
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	speedStr := "1x"
	if g.simSpeed == 0 {
		speedStr = "PAUSED"
	} else if g.simSpeed == 2 {
		speedStr = "2x"
	} else if g.simSpeed == 4 {
		speedStr = "4x"
	} else if g.simSpeed != 1 {
		speedStr = fmt.Sprintf("%.1fx", g.simSpeed)
	}

	var lines []string
	if g.world != nil && g.player != nil {
		col, row := g.world.WorldToGrid(g.player.X, g.player.Y)
		t := g.world.TypeAt(col, row)
		lines = append(lines,
			fmt.Sprintf("pos (%.0f, %.0f)  cell %d,%d", g.player.X, g.player.Y, col, row),
			fmt.Sprintf("ground: %s  pace x%.2f", t, t.SpeedMul()),
			fmt.Sprintf("charted: %.0f%%", g.fog.ExploredFrac()*100),
			"bag: "+g.inventory.Summary(),
		)
	} else {
		lines = append(lines, "charting the island...")
	}
	legendAt := len(lines)
	lines = append(lines,
		fmt.Sprintf("SIM: %s  P=pause  ,/. speed", speedStr),
		"WASD/arrows = walk   scroll/=/- = zoom",
		"[F1] overlay  [G] grid  [H] HUD  click = inspect",
		"[F9] copy walk report",
	)

	const padX = 8
	const padY = 6
	const lineH = 16

	maxW := 0.0
	for _, l := range lines {
		if w := g.hudFace.width(l, g.hudFace.normal); w > maxW {
			maxW = w
		}
	}
	boxW := float32(maxW) + padX*2
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(g.offX) + 6
	by := float32(g.offY+g.viewH) - boxH - 6

	// Panel background with a highlight line along the top edge.
	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 10, G: 16, B: 22, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 70, G: 100, B: 126, A: 180}, false)
	vector.StrokeLine(screen, bx+1, by+1, bx+boxW-1, by+1, 1.0, color.RGBA{R: 100, G: 140, B: 170, A: 80}, false)

	for i, line := range lines {
		face := g.hudFace.normal
		clr := color.RGBA{R: 222, G: 228, B: 234, A: 255}
		if i >= legendAt {
			face = g.hudFace.small
			clr = color.RGBA{R: 150, G: 162, B: 172, A: 255}
		}
		tx := float64(bx) + padX
		ty := float64(by) + padY + float64(i*lineH)
		g.hudFace.draw(screen, line, face, tx, ty, clr)
	}
}

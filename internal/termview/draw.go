package termview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"spellarena/internal/arena"
	"spellarena/internal/render"
)

// shadeRunes go from brightest to darkest.
var shadeRunes = []rune{'█', '▓', '▒', '░'}

func shadeRune(brightness float64) rune {
	idx := int((1 - brightness) * float64(len(shadeRunes)))
	if idx < 0 {
		idx = 0
	} else if idx >= len(shadeRunes) {
		idx = len(shadeRunes) - 1
	}
	return shadeRunes[idx]
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// rowSpan maps a vertical pixel span onto terminal rows, clamped to
// [0, rows). An empty span returns start == end.
func rowSpan(top, height, scale float64, rows int) (start, end int) {
	start = int(math.Floor(top * scale))
	end = int(math.Ceil((top + height) * scale))
	if start < 0 {
		start = 0
	}
	if end > rows {
		end = rows
	}
	if end < start {
		end = start
	}
	return start, end
}

// columnFor picks the ray column drawn in terminal column x.
func columnFor(x, cells, columns int) int {
	if cells <= 0 || columns <= 0 {
		return 0
	}
	idx := x * columns / cells
	if idx >= columns {
		idx = columns - 1
	}
	return idx
}

// Draw renders the current mode to the screen.
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	switch t.mode {
	case modeMenu:
		t.drawText(2, 1, "SPELL ARENA", tcell.StyleDefault.Bold(true))
		t.drawText(2, 3, "Enter: start   q: quit", tcell.StyleDefault)
		t.drawText(2, 4, "wasd move  WASD sprint  arrows turn  space jump  f/1 cast  2/3 cycle", tcell.StyleDefault)
		if p := t.director.Player; p.Score > 0 {
			t.drawText(2, 6, fmt.Sprintf("Last run: score %d, wave %d", p.Score, p.HighestWave), tcell.StyleDefault)
		}
	case modeShop:
		t.drawShop()
	default:
		if h > 1 {
			frame := t.composer.Compose(t.director.View(), t.director.Drawables())
			t.drawFrame(&frame, w, h-1)
		}
		t.drawHUD(h)
	}
	t.screen.Show()
}

func (t *Terminal) drawFrame(frame *render.Frame, w, rows int) {
	if len(frame.Columns) == 0 || frame.Height <= 0 {
		return
	}
	scaleY := float64(rows) / frame.Height
	scaleX := float64(w) / frame.Width
	horizon := int(frame.Horizon() * scaleY)

	ceiling := tcell.StyleDefault.Background(cellColor(t.palette.Ceiling))
	floor := tcell.StyleDefault.Background(cellColor(t.palette.Floor))

	for x := 0; x < w; x++ {
		col := frame.Columns[columnFor(x, w, len(frame.Columns))]
		for y := 0; y < rows; y++ {
			style := ceiling
			if y >= horizon {
				style = floor
			}
			t.screen.SetContent(x, y, ' ', nil, style)
		}
		if !col.Hit {
			continue
		}
		c := render.Shade(t.palette.TileColor(col.Tile), col.Brightness)
		style := tcell.StyleDefault.Foreground(cellColor(c))
		start, end := rowSpan(frame.WallTop(col), col.Height, scaleY, rows)
		for y := start; y < end; y++ {
			t.screen.SetContent(x, y, shadeRune(col.Brightness), nil, style)
		}
	}

	for _, sp := range frame.Sprites {
		c := render.Shade(sp.Color, sp.Brightness)
		style := tcell.StyleDefault.Foreground(cellColor(c))
		x0, x1 := rowSpan(sp.ScreenX-sp.Width/2, sp.Width, scaleX, w)
		y0, y1 := rowSpan(sp.Top, sp.Height, scaleY, rows)
		for x := x0; x < x1; x++ {
			col := frame.Columns[columnFor(x, w, len(frame.Columns))]
			if col.Hit && col.Depth < sp.Distance {
				continue
			}
			for y := y0; y < y1; y++ {
				t.screen.SetContent(x, y, '●', nil, style)
			}
		}
	}
}

func (t *Terminal) drawHUD(h int) {
	d := t.director
	p := d.Player
	status := fmt.Sprintf("HP %.0f/%.0f  MP %.0f/%.0f  Gold %d  Score %d  Wave %d  Spell %s",
		p.Health, p.MaxHealth(), p.Mana, p.MaxMana(), p.Gold, p.Score, d.Wave(), p.CurrentSpell())
	switch d.Phase() {
	case arena.PhaseShopPrompt:
		status += "  [shop? y/n]"
	case arena.PhaseGameOver:
		status += "  [game over]"
	}
	t.drawText(0, h-1, status, tcell.StyleDefault.Reverse(true))

	for i, msg := range t.messages {
		t.drawText(1, i, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

func (t *Terminal) drawShop() {
	p := t.director.Player
	t.drawText(2, 1, fmt.Sprintf("SHOP  gold: %d", p.Gold), tcell.StyleDefault.Bold(true))
	for i, offer := range t.shop.Offers(p) {
		style := tcell.StyleDefault
		if !offer.Affordable {
			style = style.Dim(true)
		}
		if i == t.shopSelection {
			style = style.Reverse(true)
		}
		t.drawText(4, 3+i, fmt.Sprintf("%-28s %5d", offer.Name, offer.Cost), style)
	}
	_, h := t.screen.Size()
	t.drawText(2, h-2, t.shopStatus, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	t.drawText(2, h-1, "up/down select  enter buy  n/esc continue", tcell.StyleDefault)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

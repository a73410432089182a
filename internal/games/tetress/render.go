package tetress

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetress/internal/core"
	engine "github.com/vovakirdan/tetress/internal/games/tetress/core"
)

// Layout: hold and stats panel | well | next queue panel, with a title row
// above. Each board cell is two characters wide.
const (
	cellW       = 2
	visibleRows = engine.BoardHeight - engine.HiddenRows
	wellW       = engine.BoardWidth*cellW + 2
	wellH       = visibleRows + 2
	panelW      = 14

	layoutWidth  = panelW + 1 + wellW + 1 + panelW
	layoutHeight = wellH + 1
)

// palettes maps each color scheme to piece colors, indexed by Kind.
var palettes = [...][engine.KindCount + 1]core.Color{
	engine.SchemeClassic: {
		core.ColorDefault, core.ColorGold, core.ColorAzure, core.ColorPurple,
		core.ColorEmerald, core.ColorRed, core.ColorNavy, core.ColorOrange,
	},
	engine.SchemeNeon: {
		core.ColorDefault, core.ColorBrightGreen, core.ColorBrightMagenta, core.ColorBrightCyan,
		core.ColorBrightYellow, core.ColorPink, core.ColorLime, core.ColorOrange,
	},
	engine.SchemeIce: {
		core.ColorDefault, core.ColorSkyBlue, core.ColorPowderBlue, core.ColorSteelBlue,
		core.ColorCadetBlue, core.ColorDeepSkyBlue, core.ColorDodgerBlue, core.ColorCornflower,
	},
	engine.SchemeFire: {
		core.ColorDefault, core.ColorOrangeRed, core.ColorTomato, core.ColorCrimson,
		core.ColorFirebrick, core.ColorBrightRed, core.ColorDeepPink, core.ColorHotPink,
	},
}

// PieceColor returns the color of kind k under scheme s.
func PieceColor(s engine.ColorScheme, k engine.Kind) core.Color {
	if int(s) >= len(palettes) || !k.Valid() {
		return core.ColorDefault
	}
	return palettes[s][k]
}

// layout holds the screen rectangles of one frame.
type layout struct {
	area  core.Rect
	well  core.Rect
	hold  core.Rect
	stats core.Rect
	next  core.Rect
}

func newLayout(w, h, nextCount int) layout {
	area := core.NewRect(0, 0, w, h).Centered(layoutWidth, layoutHeight)
	top := area.Y + 1
	l := layout{
		area: area,
		well: core.NewRect(area.X+panelW+1, top, wellW, wellH),
		hold: core.NewRect(area.X, top, panelW, 4),
	}
	l.stats = core.NewRect(area.X, l.hold.Bottom()+1, panelW, wellH-l.hold.H-1)
	l.next = core.NewRect(l.well.Right()+1, top, panelW, 2+max(nextCount, 1)*3-1)
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	if dst.Width() < layoutWidth || dst.Height() < layoutHeight {
		renderTooSmall(dst)
		return
	}

	view := g.eng.View()
	snap := g.eng.Snapshot()
	l := newLayout(dst.Width(), dst.Height(), len(view.Next))

	title := fmt.Sprintf("TETRESS · %s", snap.Mode.Title())
	dst.DrawTextColor(l.well.X+(l.well.W-runeLen(title))/2, l.area.Y, title, core.ColorBrightCyan)

	g.renderWell(dst, l.well, view)
	g.renderHold(dst, l.hold, view)
	renderNext(dst, l.next, view)
	renderStats(dst, l.stats, snap)

	switch {
	case snap.GameOver:
		renderOverlay(dst, l.area, gameOverLines(snap), endColor(snap.EndReason))
	case g.paused:
		renderOverlay(dst, l.area, []string{
			"PAUSED",
			"",
			"P  resume",
			"R  restart",
			"Q  quit",
		}, core.ColorBrightYellow)
	case len(g.banner) > 0:
		inner := l.well.Inset(1)
		for i, line := range g.banner {
			dst.DrawTextColor(inner.X+(inner.W-runeLen(line))/2, inner.Y+5+i, line, core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderWell(dst *core.Screen, r core.Rect, v engine.View) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	flashing := make(map[int]bool, len(v.FlashRows))
	for _, y := range v.FlashRows {
		flashing[y] = true
	}

	for y := engine.HiddenRows; y < engine.BoardHeight; y++ {
		sy := inner.Y + y - engine.HiddenRows
		for x := range engine.BoardWidth {
			sx := inner.X + x*cellW
			switch k := v.Board[y][x]; {
			case flashing[y] && v.FlashOn:
				drawCell(dst, sx, sy, '█', core.ColorBrightWhite)
			case flashing[y]:
			case k != engine.KindNone:
				drawCell(dst, sx, sy, '█', PieceColor(v.Scheme, k))
			default:
				dst.SetColor(sx+1, sy, '·', core.ColorGray)
			}
		}
	}

	if !v.HasActive {
		return
	}
	color := PieceColor(v.Scheme, v.Active.Kind)
	if g.cfg.Display.ShowGhost && v.GhostY != v.Active.Y {
		ghost := v.Active
		ghost.Y = v.GhostY
		drawPiece(dst, inner, ghost, '░', color)
	}
	drawPiece(dst, inner, v.Active, '█', color)
}

// drawPiece draws p on the well, skipping cells in the hidden rows.
func drawPiece(dst *core.Screen, inner core.Rect, p engine.Piece, r rune, c core.Color) {
	for _, cell := range p.Cells() {
		x, y := cell[0], cell[1]
		if y < engine.HiddenRows || !engine.InBounds(x, y) {
			continue
		}
		drawCell(dst, inner.X+x*cellW, inner.Y+y-engine.HiddenRows, r, c)
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellW {
		dst.SetColor(x+i, y, r, c)
	}
}

func (g *Game) renderHold(dst *core.Screen, r core.Rect, v engine.View) {
	if !g.cfg.Gameplay.HoldEnabled || !g.cfg.Display.ShowHold {
		return
	}
	border := core.ColorGray
	if !v.CanHold {
		border = core.ColorRed
	}
	dst.DrawBox(r, border)
	dst.DrawTextColor(r.X+2, r.Y, " HOLD ", core.ColorWhite)
	if v.Hold != engine.KindNone {
		c := PieceColor(v.Scheme, v.Hold)
		if !v.CanHold {
			c = core.ColorGray
		}
		drawPreview(dst, r.Inset(1), v.Hold, c)
	}
}

func renderNext(dst *core.Screen, r core.Rect, v engine.View) {
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColor(r.X+2, r.Y, " NEXT ", core.ColorWhite)
	inner := r.Inset(1)
	for i, k := range v.Next {
		slot := core.NewRect(inner.X, inner.Y+i*3, inner.W, 2)
		drawPreview(dst, slot, k, PieceColor(v.Scheme, k))
	}
}

// drawPreview draws the spawn orientation of k centered in r, using only
// the occupied rows and columns of its matrix.
func drawPreview(dst *core.Screen, r core.Rect, k engine.Kind, c core.Color) {
	m := engine.ShapeOf(k, 0)
	minX, maxX, minY := m.Size(), -1, -1
	for y, row := range m {
		for x, v := range row {
			if v == engine.KindNone {
				continue
			}
			if minY < 0 {
				minY = y
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	if maxX < 0 {
		return
	}

	width := (maxX - minX + 1) * cellW
	ox := r.X + (r.W-width)/2
	for y := minY; y < len(m) && y-minY < r.H; y++ {
		for x, v := range m[y] {
			if v != engine.KindNone {
				drawCell(dst, ox+(x-minX)*cellW, r.Y+y-minY, '█', c)
			}
		}
	}
}

func renderStats(dst *core.Screen, r core.Rect, s engine.Snapshot) {
	rows := [][2]string{
		{"SCORE", fmt.Sprintf("%d", s.Score)},
		{"LINES", fmt.Sprintf("%d", s.Lines)},
		{"LEVEL", fmt.Sprintf("%d", s.Level)},
	}
	switch s.Mode {
	case engine.ModeUltra:
		rows = append(rows, [2]string{"LEFT", formatClock(s.Remaining)})
	case engine.ModeSprint:
		rows = append(rows,
			[2]string{"TO GO", fmt.Sprintf("%d", s.LinesToGo)},
			[2]string{"TIME", formatClock(s.Elapsed)},
		)
	default:
		rows = append(rows, [2]string{"TIME", formatClock(s.Elapsed)})
	}
	if s.Combo > 1 {
		rows = append(rows, [2]string{"COMBO", fmt.Sprintf("x%d", s.Combo-1)})
	}

	y := r.Y
	for _, row := range rows {
		if y+1 >= r.Bottom() {
			return
		}
		dst.DrawTextColor(r.X+1, y, row[0], core.ColorGray)
		dst.DrawTextColor(r.X+1, y+1, row[1], core.ColorBrightWhite)
		y += 3
	}
}

func renderOverlay(dst *core.Screen, area core.Rect, lines []string, c core.Color) {
	w := 0
	for _, line := range lines {
		w = max(w, runeLen(line))
	}
	box := area.Centered(w+6, len(lines)+4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextColor(box.X+(box.W-runeLen(line))/2, box.Y+2+i, line, color)
	}
}

func renderTooSmall(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredColor(h/2-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", layoutWidth, layoutHeight))
	dst.DrawTextCentered(h/2+1, "Resize to continue")
}

func gameOverLines(s engine.Snapshot) []string {
	title := "GAME OVER"
	switch s.EndReason {
	case engine.EndGoalReached:
		title = "COMPLETE!"
	case engine.EndTimeUp:
		title = "TIME UP"
	}
	return []string{
		title,
		"",
		fmt.Sprintf("Score     %d", s.Score),
		fmt.Sprintf("Lines     %d", s.Lines),
		fmt.Sprintf("Level     %d", s.Level),
		fmt.Sprintf("Time      %s", formatClock(s.Elapsed)),
		fmt.Sprintf("Pieces    %d", s.TotalPieces),
		fmt.Sprintf("PPS       %.2f", s.Stats.PiecesPerSecond),
		fmt.Sprintf("Tetrises  %d", s.Stats.LinesCleared.Tetris),
		fmt.Sprintf("T-Spins   %d", s.Stats.TSpins.Single+s.Stats.TSpins.Double+s.Stats.TSpins.Triple),
		fmt.Sprintf("Max combo %d", s.Stats.MaxCombo),
		"",
		"R restart  Q quit",
	}
}

func endColor(r engine.EndReason) core.Color {
	if r == engine.EndTopOut {
		return core.ColorBrightRed
	}
	return core.ColorBrightGreen
}

// bannerFor returns the banner lines announcing a clear.
func bannerFor(ev engine.ClearEvent) []string {
	lines := []string{ev.Label()}
	if ev.Combo > 1 {
		lines = append(lines, fmt.Sprintf("%d COMBO", ev.Combo-1))
	}
	return lines
}

// formatClock renders d as m:ss.cc.
func formatClock(d time.Duration) string {
	d = max(d, 0)
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

func runeLen(s string) int {
	return len([]rune(s))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// cellWidth is the number of terminal columns per board cell.
// Two columns make a cell roughly square in most fonts.
const cellWidth = 2

// Glyphs for each board element, one rune per column.
var (
	glyphHead  = [cellWidth]rune{'█', '█'}
	glyphBody  = [cellWidth]rune{'▓', '▓'}
	glyphFood  = [cellWidth]rune{'●', ' '}
	glyphEmpty = [cellWidth]rune{'·', ' '}
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	wonStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// BoardDimensions returns the screen size needed to draw a board,
// border included.
func BoardDimensions(boardSize int) (w, h int) {
	return boardSize*cellWidth + 2, boardSize + 2
}

// DrawBoard draws the border, background, food, body and head into dst.
// The head is drawn last so it stays visible on a game-over frame.
func DrawBoard(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()
	w, h := BoardDimensions(snap.BoardSize)
	dst.DrawBox(0, 0, w, h, core.ColorGray)

	for y := 0; y < snap.BoardSize; y++ {
		for x := 0; x < snap.BoardSize; x++ {
			drawCell(dst, core.Cell{X: x, Y: y}, glyphEmpty, core.ColorGray)
		}
	}

	if snap.Food != snake.NoFood {
		drawCell(dst, snap.Food, glyphFood, core.ColorBrightRed)
	}

	for i := len(snap.Snake) - 1; i >= 1; i-- {
		drawCell(dst, snap.Snake[i], glyphBody, core.ColorGreen)
	}
	if len(snap.Snake) > 0 {
		drawCell(dst, snap.Snake[0], glyphHead, core.ColorBrightGreen)
	}

	if snap.GameOver {
		drawBanner(dst, snap)
	}
}

// drawBanner boxes the final result in the middle of the board.
// Boards too small to hold the box get no banner; the status line still says it.
func drawBanner(dst *core.Screen, snap snake.Snapshot) {
	title, color := "GAME OVER", core.ColorBrightRed
	if snap.Won {
		title, color = "CLEARED", core.ColorYellow
	}
	score := fmt.Sprintf("Score %d", snap.Score)

	boxW := max(len(title), len(score)) + 4
	boxH := 4
	if boxW > dst.Width()-2 || boxH > dst.Height()-2 {
		return
	}

	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	for row := y; row < y+boxH; row++ {
		for col := x; col < x+boxW; col++ {
			dst.Set(col, row, ' ')
		}
	}
	dst.DrawBox(x, y, boxW, boxH, color)
	dst.DrawTextCentered(y+1, title, color)
	dst.DrawTextCentered(y+2, score, core.ColorWhite)
}

func drawCell(dst *core.Screen, c core.Cell, glyph [cellWidth]rune, color core.Color) {
	sx := 1 + c.X*cellWidth
	sy := 1 + c.Y
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// headerLine renders the title and score above the board.
func headerLine(snap snake.Snapshot) string {
	return titleStyle.Render("SNAKE") + "  " + scoreStyle.Render(fmt.Sprintf("Score: %d", snap.Score))
}

// statusLine renders the line under the board.
func statusLine(snap snake.Snapshot) string {
	switch {
	case snap.Won:
		return wonStyle.Render("Board cleared!") + "  " + hintStyle.Render("Press Enter to restart")
	case snap.GameOver:
		return gameOverStyle.Render("Game Over!") + "  " + hintStyle.Render("Press Enter to restart")
	default:
		return hintStyle.Render("Use arrow keys to move.")
	}
}

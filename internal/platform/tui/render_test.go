package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestBoardDimensions(t *testing.T) {
	w, h := BoardDimensions(15)
	if w != 32 || h != 17 {
		t.Errorf("BoardDimensions(15) = %dx%d, expected 32x17", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	snap := snake.Snapshot{
		Snake:     []core.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:      core.Cell{X: 3, Y: 0},
		BoardSize: 4,
	}
	w, h := BoardDimensions(snap.BoardSize)
	dst := core.NewScreen(w, h)

	DrawBoard(dst, snap)

	// Border
	if dst.Get(0, 0) != '┌' || dst.Get(w-1, h-1) != '┘' {
		t.Error("board should have a border")
	}

	// Cells are offset by the border and two columns wide
	head := dst.GetCell(1+1*cellWidth, 1+1)
	if head.Rune != glyphHead[0] || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}
	body := dst.GetCell(1+1*cellWidth, 1+2)
	if body.Rune != glyphBody[0] || body.Color != core.ColorGreen {
		t.Errorf("body cell = %+v", body)
	}
	food := dst.GetCell(1+3*cellWidth, 1+0)
	if food.Rune != glyphFood[0] || food.Color != core.ColorBrightRed {
		t.Errorf("food cell = %+v", food)
	}
	empty := dst.GetCell(1, 1)
	if empty.Rune != glyphEmpty[0] || empty.Color != core.ColorGray {
		t.Errorf("empty cell = %+v", empty)
	}
}

func TestDrawBoardWithoutFood(t *testing.T) {
	snap := snake.Snapshot{
		Snake:     []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Food:      snake.NoFood,
		BoardSize: 2,
		GameOver:  true,
		Won:       true,
	}
	w, h := BoardDimensions(snap.BoardSize)
	dst := core.NewScreen(w, h)

	DrawBoard(dst, snap)

	if strings.ContainsRune(dst.String(), glyphFood[0]) {
		t.Error("no food should be drawn when the board is full")
	}
	if !strings.Contains(statusLine(snap), "Board cleared!") {
		t.Error("status should announce a cleared board")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(4, 0, "ef", core.ColorDefault)

	out := RenderScreen(s)
	for _, part := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, part) {
			t.Errorf("rendered output %q lost %q", out, part)
		}
	}
}

func TestDrawBoardGameOverBanner(t *testing.T) {
	snap := snake.Snapshot{
		Snake:     []core.Cell{{X: 0, Y: 7}},
		Food:      core.Cell{X: 10, Y: 10},
		Score:     3,
		BoardSize: 15,
		GameOver:  true,
	}
	w, h := BoardDimensions(snap.BoardSize)
	dst := core.NewScreen(w, h)

	DrawBoard(dst, snap)

	out := dst.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score 3") {
		t.Errorf("game-over board should carry a banner:\n%s", out)
	}

	snap.GameOver = false
	DrawBoard(dst, snap)
	if strings.Contains(dst.String(), "GAME OVER") {
		t.Error("running board should not carry a banner")
	}
}

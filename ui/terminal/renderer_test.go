package terminal

import (
	"testing"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

var grid = types.Geometry{CellSize: 20, FieldWidth: 6, FieldHeight: 4}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func glyphAt(screen tcell.Screen, r *Renderer, c types.Cell) rune {
	x, y := r.screenPos(c)
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestDrawFull(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, grid)
	snap := game.Snapshot{
		Positions: []types.Cell{{X: 40, Y: 20}, {X: 20, Y: 20}},
		Food:      types.Cell{X: 100, Y: 60},
		Length:    2,
	}

	r.DrawFull(snap)

	for _, p := range snap.Positions {
		if got := glyphAt(screen, r, p); got != snakeGlyph {
			t.Errorf("cell %v = %q, want snake", p, got)
		}
	}
	if got := glyphAt(screen, r, snap.Food); got != foodGlyph {
		t.Errorf("food cell = %q, want food", got)
	}
	if got := glyphAt(screen, r, types.Cell{X: 0, Y: 0}); got != ' ' {
		t.Errorf("empty cell = %q, want blank", got)
	}
}

func TestApplyErasesTail(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, grid)
	before := game.Snapshot{
		Positions: []types.Cell{{X: 40, Y: 20}, {X: 20, Y: 20}},
		Food:      types.Cell{X: 100, Y: 60},
		Length:    2,
	}
	r.DrawFull(before)

	after := game.Snapshot{
		Positions: []types.Cell{{X: 60, Y: 20}, {X: 40, Y: 20}},
		Food:      before.Food,
		Length:    2,
	}
	r.Apply(game.StepResult{Outcome: game.Advanced, Tail: types.Cell{X: 20, Y: 20}, HasTail: true}, after)

	if got := glyphAt(screen, r, types.Cell{X: 20, Y: 20}); got != ' ' {
		t.Errorf("old tail = %q, want erased", got)
	}
	if got := glyphAt(screen, r, types.Cell{X: 60, Y: 20}); got != snakeGlyph {
		t.Errorf("new head = %q, want snake", got)
	}
}

func TestApplyClearsCollisionSegments(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, grid)
	body := []types.Cell{{X: 20, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 40}, {X: 20, Y: 40}}
	r.DrawFull(game.Snapshot{Positions: body, Food: types.Cell{X: 100, Y: 0}, Length: 4})

	res := game.StepResult{Outcome: game.Collided, Cleared: body[1:]}
	r.Apply(res, game.Snapshot{Positions: body[:1], Food: types.Cell{X: 100, Y: 0}, Length: 1})

	for _, c := range body[1:] {
		if got := glyphAt(screen, r, c); got != ' ' {
			t.Errorf("cleared cell %v = %q, want blank", c, got)
		}
	}
	if got := glyphAt(screen, r, body[0]); got != snakeGlyph {
		t.Errorf("head = %q, want snake", got)
	}
}

func TestFits(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, grid)
	if !r.Fits() {
		t.Error("40x10 screen should fit a 6x4 field")
	}

	big := NewRenderer(screen, types.Geometry{CellSize: 1, FieldWidth: 32, FieldHeight: 24})
	if big.Fits() {
		t.Error("40x10 screen cannot fit a 32x24 field")
	}
}

func TestRendererWithGame(t *testing.T) {
	screen := newScreen(t)
	cfg := types.Config{CellSize: 20, FieldWidth: 6, FieldHeight: 4, TickRate: 20}
	g, err := game.New(cfg, nil, 9)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := NewRenderer(screen, g.Grid)
	r.DrawFull(g.Snapshot())

	for i := 0; i < 30; i++ {
		res := g.Step(types.None)
		snap := g.Snapshot()
		r.Apply(res, snap)

		if got := glyphAt(screen, r, snap.Head()); got != snakeGlyph {
			t.Fatalf("tick %d: head not drawn", i)
		}
		if res.HasTail && !containsCell(snap.Positions, res.Tail) && res.Tail != snap.Food {
			if got := glyphAt(screen, r, res.Tail); got != ' ' {
				t.Fatalf("tick %d: tail %v left behind", i, res.Tail)
			}
		}
	}
}

func containsCell(cells []types.Cell, c types.Cell) bool {
	for _, p := range cells {
		if p == c {
			return true
		}
	}
	return false
}

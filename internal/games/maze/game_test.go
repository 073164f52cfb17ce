package maze

import (
	"strings"
	"testing"

	platformcore "github.com/avoronov/mazeterm/internal/core"
	"github.com/avoronov/mazeterm/internal/games/maze/core"
)

// startGame resets a game and confirms past the title screen.
func startGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionConfirm)
	g.Step(input)

	if g.CurrentPhase() != PhasePlaying {
		t.Fatalf("Expected playing phase after confirm, got %v", g.CurrentPhase())
	}
	return g
}

// actionFor maps a unit step between adjacent cells to a movement action.
func actionFor(t *testing.T, from, to core.Point) platformcore.Action {
	t.Helper()
	switch {
	case to.X == from.X+1 && to.Y == from.Y:
		return platformcore.ActionRight
	case to.X == from.X-1 && to.Y == from.Y:
		return platformcore.ActionLeft
	case to.Y == from.Y+1 && to.X == from.X:
		return platformcore.ActionDown
	case to.Y == from.Y-1 && to.X == from.X:
		return platformcore.ActionUp
	}
	t.Fatalf("Cells (%d,%d) and (%d,%d) are not adjacent", from.X, from.Y, to.X, to.Y)
	return platformcore.ActionNone
}

// walkSolution drives the player along the shortest path to the exit.
func walkSolution(t *testing.T, g *Game) {
	t.Helper()
	path := core.Solve(g.maze.Grid, g.walker.Pos(), g.walker.Exit())
	if path == nil {
		t.Fatal("No path from player to exit")
	}
	for i := 1; i < len(path); i++ {
		input := platformcore.NewInputFrame()
		input.Set(actionFor(t, path[i-1], path[i]))
		g.Step(input)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	cfg := platformcore.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	dirs := []platformcore.Action{
		platformcore.ActionRight, platformcore.ActionDown,
		platformcore.ActionLeft, platformcore.ActionUp,
	}

	input := platformcore.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 0 {
			input.Set(platformcore.ActionConfirm)
		} else if i%3 == 0 {
			input.Set(dirs[(i/3)%len(dirs)])
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestTitleSeedScrolls(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 100, ScreenW: 80, ScreenH: 24})

	input := platformcore.NewInputFrame()
	for i := 0; i < 5; i++ {
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.State != StateTitle {
		t.Fatalf("Expected title state, got %s", snap.State)
	}
	if snap.BaseSeed != 105 {
		t.Errorf("Base seed should advance once per title tick: got %d, want 105", snap.BaseSeed)
	}
}

func TestConfirmStartsLevelOne(t *testing.T) {
	g := startGame(t, 777)

	snap := g.Snapshot()
	if snap.Level != 1 {
		t.Errorf("Level = %d, want 1", snap.Level)
	}
	if snap.PlayerX != 1 || snap.PlayerY != 1 {
		t.Errorf("Player starts at (%d,%d), want (1,1)", snap.PlayerX, snap.PlayerY)
	}
	if snap.GridW != 19 || snap.GridH != 17 {
		t.Errorf("Grid = %dx%d, want default 19x17", snap.GridW, snap.GridH)
	}
	if !g.maze.Grid.Walkable(snap.ExitX, snap.ExitY) {
		t.Errorf("Exit (%d,%d) is not walkable", snap.ExitX, snap.ExitY)
	}
	if snap.OptimalMoves < 1 {
		t.Errorf("Optimal moves = %d, want at least 1", snap.OptimalMoves)
	}
}

func TestWinOnReachingExit(t *testing.T) {
	g := startGame(t, 4242)
	optimal := g.optimal

	walkSolution(t, g)

	snap := g.Snapshot()
	if snap.State != StateWin {
		t.Fatalf("Expected win state after reaching exit, got %s", snap.State)
	}
	if snap.Moves != optimal {
		t.Errorf("Moves = %d, want optimal %d", snap.Moves, optimal)
	}
	if snap.Score <= 0 {
		t.Errorf("Score = %d, want positive after clearing a level", snap.Score)
	}

	runs := g.TakeCompletedRuns()
	if len(runs) != 1 {
		t.Fatalf("Expected 1 completed run, got %d", len(runs))
	}
	r := runs[0]
	if r.Level != 1 || r.Moves != optimal || r.OptimalMoves != optimal {
		t.Errorf("Run record = %+v", r)
	}
	if r.Width != 19 || r.Height != 17 {
		t.Errorf("Run dimensions = %dx%d, want 19x17", r.Width, r.Height)
	}

	// Drained: second call must be empty
	if len(g.TakeCompletedRuns()) != 0 {
		t.Error("TakeCompletedRuns should drain the queue")
	}
}

func TestLevelAdvanceAndWrap(t *testing.T) {
	g := startGame(t, 9001)
	g.cfg.Gameplay.MaxLevel = 2

	walkSolution(t, g)

	confirm := platformcore.NewInputFrame()
	confirm.Set(platformcore.ActionConfirm)
	g.Step(confirm)

	if g.Snapshot().Level != 2 || g.CurrentPhase() != PhasePlaying {
		t.Fatalf("Expected playing level 2, got level %d phase %v", g.Snapshot().Level, g.CurrentPhase())
	}

	walkSolution(t, g)
	snap := g.Snapshot()
	if snap.State != StateCleared {
		t.Fatalf("Expected campaign_cleared after last level, got %s", snap.State)
	}
	if !g.State().GameOver {
		t.Error("GameOver should be set when the campaign is cleared")
	}

	// Confirm wraps back to level 1 and keeps playing
	g.Step(confirm)
	snap = g.Snapshot()
	if snap.Level != 1 || snap.State != StatePlaying {
		t.Errorf("Expected playing level 1 after wrap, got level %d state %s", snap.Level, snap.State)
	}
	if g.State().GameOver {
		t.Error("GameOver should clear after wrapping")
	}
}

func TestRestartRegeneratesSameLevel(t *testing.T) {
	g := startGame(t, 31337)
	exit := g.maze.Exit
	seed := g.Snapshot().Seed

	// Make a couple of moves, then restart the level
	path := core.Solve(g.maze.Grid, g.walker.Pos(), g.walker.Exit())
	for i := 1; i < 3 && i < len(path); i++ {
		input := platformcore.NewInputFrame()
		input.Set(actionFor(t, path[i-1], path[i]))
		g.Step(input)
	}
	if g.walker.Moves() == 0 {
		t.Fatal("Expected some moves before restart")
	}

	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart)

	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after restart, want 0", snap.Moves)
	}
	if snap.PlayerX != 1 || snap.PlayerY != 1 {
		t.Errorf("Player at (%d,%d) after restart, want (1,1)", snap.PlayerX, snap.PlayerY)
	}
	if snap.Seed != seed {
		t.Errorf("Seed = %d after restart, want %d (same level, same maze)", snap.Seed, seed)
	}
	if g.maze.Exit != exit {
		t.Errorf("Exit moved after restart: %+v vs %+v", g.maze.Exit, exit)
	}
	// No crumbs survive a restart
	for y := 0; y < g.maze.Grid.Height; y++ {
		for x := 0; x < g.maze.Grid.Width; x++ {
			if g.maze.Grid.At(x, y) == core.CellCrumb {
				t.Fatalf("Breadcrumb at (%d,%d) survived restart", x, y)
			}
		}
	}
}

func TestHintFollowsPlayer(t *testing.T) {
	g := startGame(t, 555)

	hintKey := platformcore.NewInputFrame()
	hintKey.Set(platformcore.ActionHint)
	g.Step(hintKey)

	if !g.showHint {
		t.Fatal("Hint should be on after pressing the hint key")
	}
	if len(g.hint) < 2 {
		t.Fatalf("Hint path too short: %d", len(g.hint))
	}
	if g.hint[0] != g.walker.Pos() || g.hint[len(g.hint)-1] != g.walker.Exit() {
		t.Error("Hint path should run from the player to the exit")
	}

	// Step along the hint; the path should shrink by one
	before := len(g.hint)
	input := platformcore.NewInputFrame()
	input.Set(actionFor(t, g.hint[0], g.hint[1]))
	g.Step(input)
	if len(g.hint) != before-1 {
		t.Errorf("Hint length = %d after one step along it, want %d", len(g.hint), before-1)
	}

	// Toggle off
	g.Step(hintKey)
	if g.showHint {
		t.Error("Hint should toggle off")
	}
}

func TestHintsCanBeDisabled(t *testing.T) {
	g := startGame(t, 556)
	g.cfg.Gameplay.Hints = false

	hintKey := platformcore.NewInputFrame()
	hintKey.Set(platformcore.ActionHint)
	g.Step(hintKey)

	if g.showHint {
		t.Error("Hint should stay off when disabled in config")
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := startGame(t, 808)

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	path := core.Solve(g.maze.Grid, g.walker.Pos(), g.walker.Exit())
	input := platformcore.NewInputFrame()
	input.Set(actionFor(t, path[0], path[1]))
	g.Step(input)
	if g.walker.Moves() != 0 {
		t.Errorf("Moves = %d while paused, want 0", g.walker.Moves())
	}

	g.Step(pause)
	g.Step(input)
	if g.walker.Moves() != 1 {
		t.Errorf("Moves = %d after unpausing, want 1", g.walker.Moves())
	}
}

func TestWallMoveIsFree(t *testing.T) {
	g := startGame(t, 2468)

	// (1,1) is the top-left cell, so up and left always face the border
	for _, a := range []platformcore.Action{platformcore.ActionUp, platformcore.ActionLeft} {
		input := platformcore.NewInputFrame()
		input.Set(a)
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after walking into walls, want 0", snap.Moves)
	}
	if snap.PlayerX != 1 || snap.PlayerY != 1 {
		t.Errorf("Player moved to (%d,%d), want (1,1)", snap.PlayerX, snap.PlayerY)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}
	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", snap.State)
	}
}

func TestInvalidGridOverrideRejected(t *testing.T) {
	SetGridOverride(20, 16)
	defer SetGridOverride(0, 0)

	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	snap := g.Snapshot()
	if snap.State != StateBadConfig {
		t.Fatalf("State = %s with even dimensions, want %s", snap.State, StateBadConfig)
	}
	if !g.State().GameOver {
		t.Error("Invalid configuration should end the game, not fall back silently")
	}

	// Confirm must not start a level on a rejected configuration
	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionConfirm)
	g.Step(input)
	if g.CurrentPhase() == PhasePlaying {
		t.Errorf("Game started playing a %dx%d maze despite the invalid 20x16 request",
			g.Config().Grid.Width, g.Config().Grid.Height)
	}
}

func TestGridOverride(t *testing.T) {
	SetGridOverride(25, 21)
	defer SetGridOverride(0, 0)

	g := startGame(t, 99)
	snap := g.Snapshot()
	if snap.GridW != 25 || snap.GridH != 21 {
		t.Errorf("Grid = %dx%d, want 25x21 from override", snap.GridW, snap.GridH)
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "maze" {
		t.Errorf("ID should be 'maze', got %s", g.ID())
	}
	if g.Title() != "Maze" {
		t.Errorf("Title should be 'Maze', got %s", g.Title())
	}
}

func TestRender(t *testing.T) {
	g := startGame(t, 444)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Maze") {
		t.Error("HUD should contain 'Maze'")
	}
	if !strings.ContainsRune(content, '@') {
		t.Error("Player marker should be rendered")
	}
	if !strings.ContainsRune(content, 'X') {
		t.Error("Exit marker should be rendered")
	}
	if !strings.ContainsRune(content, '█') {
		t.Error("Walls should be rendered")
	}
}

func TestRenderBreadcrumbs(t *testing.T) {
	g := startGame(t, 445)

	path := core.Solve(g.maze.Grid, g.walker.Pos(), g.walker.Exit())
	input := platformcore.NewInputFrame()
	input.Set(actionFor(t, path[0], path[1]))
	g.Step(input)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), '·') {
		t.Error("Vacated cell should render as a breadcrumb")
	}

	g.cfg.Display.Breadcrumbs = false
	g.Render(screen)
	if strings.ContainsRune(screen.String(), '·') {
		t.Error("Breadcrumbs should be hidden when disabled")
	}
}

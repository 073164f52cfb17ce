// Package maze provides the procedural maze crawl game.
package maze

import (
	"fmt"

	"github.com/avoronov/mazeterm/internal/config"
	platformcore "github.com/avoronov/mazeterm/internal/core"
	"github.com/avoronov/mazeterm/internal/games/maze/core"
	"github.com/avoronov/mazeterm/internal/registry"
)

// Phase represents the game's coarse state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseGenerating
	PhasePlaying
	PhaseWin
)

// RunRecord describes one completed level, ready for persistence.
type RunRecord struct {
	Level        int
	Seed         int64
	Width        int
	Height       int
	Moves        int
	OptimalMoves int
	Ticks        uint64
}

// Game implements the maze crawl.
type Game struct {
	cfg   config.MazeConfig
	phase Phase
	tick  uint64
	score int

	baseSeed uint16
	level    int // 1-indexed

	maze    *core.Maze
	walker  *core.Walker
	optimal int // Shortest path length for the current level

	showHint bool
	hint     []core.Point

	levelStartTick uint64
	pendingRuns    []RunRecord

	cfgErr          error
	genErr          error
	campaignCleared bool

	paused   bool
	tooSmall bool

	// Screen layout
	screenW   int
	screenH   int
	hudHeight int
	offsetX   int
	offsetY   int
}

// Package-level variables for config/difficulty (like snake pattern)
var (
	configPath       string
	difficultyPreset string
	gridOverride     config.GridConfig // Zero width/height means no override
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetGridOverride forces maze dimensions regardless of config and preset.
// Pass zeros to clear the override.
func SetGridOverride(width, height int) {
	gridOverride = config.GridConfig{Width: width, Height: height}
}

// New creates a new maze game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze"
}

// Reset initializes/restarts the game on the title screen. An invalid
// effective configuration is a precondition violation: it is recorded
// and blocks play instead of being silently replaced.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	mc, err := config.LoadMaze(configPath)
	g.cfgErr = err
	if err != nil {
		mc = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&mc, config.DifficultyPreset(difficultyPreset))
	}
	if gridOverride.Width > 0 {
		mc.Grid.Width = gridOverride.Width
	}
	if gridOverride.Height > 0 {
		mc.Grid.Height = gridOverride.Height
	}
	if g.cfgErr == nil {
		g.cfgErr = mc.Validate()
	}
	g.cfg = mc

	g.baseSeed = uint16(cfg.Seed)
	g.phase = PhaseTitle
	g.tick = 0
	g.score = 0
	g.level = 1
	g.maze = nil
	g.walker = nil
	g.optimal = 0
	g.showHint = false
	g.hint = nil
	g.pendingRuns = nil
	g.genErr = nil
	g.campaignCleared = false
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines
	g.layout()
}

// layout centers the maze under the HUD and flags undersized screens.
func (g *Game) layout() {
	requiredW := g.cfg.Grid.Width + 2
	requiredH := g.cfg.Grid.Height + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offsetX = (g.screenW - g.cfg.Grid.Width) / 2
	g.offsetY = g.hudHeight
}

// levelSeed derives the generator seed for a level from the base seed.
// The arithmetic wraps at 16 bits together with the generator state.
func (g *Game) levelSeed(level int) uint16 {
	return g.baseSeed + uint16(level*g.cfg.Gameplay.SeedStride)
}

// startLevel carves the maze for the given level and drops the player at
// the start cell. Generation finishes within the same tick, so the
// generating phase is only observable from the outside when it fails.
func (g *Game) startLevel(level int) {
	g.level = level
	g.phase = PhaseGenerating
	g.showHint = false
	g.hint = nil

	rng := core.NewRNG(g.levelSeed(level))
	m, err := core.Generate(g.cfg.Grid.Width, g.cfg.Grid.Height, rng)
	if err != nil {
		g.genErr = err
		return
	}
	g.maze = m
	g.walker = core.NewWalker(m)
	g.optimal = len(core.Solve(m.Grid, m.Start, m.Exit)) - 1
	g.levelStartTick = g.tick
	g.phase = PhasePlaying
}

// completeLevel awards score and queues a run record for persistence.
func (g *Game) completeLevel() {
	g.phase = PhaseWin
	g.showHint = false

	moves := g.walker.Moves()
	bonus := 100*g.level - 2*(moves-g.optimal)
	if bonus < 10 {
		bonus = 10
	}
	g.score += bonus

	g.pendingRuns = append(g.pendingRuns, RunRecord{
		Level:        g.level,
		Seed:         int64(g.levelSeed(g.level)),
		Width:        g.cfg.Grid.Width,
		Height:       g.cfg.Grid.Height,
		Moves:        moves,
		OptimalMoves: g.optimal,
		Ticks:        g.tick - g.levelStartTick,
	})

	if g.level >= g.cfg.Gameplay.MaxLevel {
		g.campaignCleared = true
	}
}

// advanceLevel moves to the next level, wrapping back to level 1 after
// the last one.
func (g *Game) advanceLevel() {
	next := g.level + 1
	if next > g.cfg.Gameplay.MaxLevel {
		next = 1
		g.campaignCleared = false
	}
	g.startLevel(next)
}

// TakeCompletedRuns drains the records of levels finished since the last
// call. The platform layer persists them.
func (g *Game) TakeCompletedRuns() []RunRecord {
	runs := g.pendingRuns
	g.pendingRuns = nil
	return runs
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart after a cleared campaign or a failed generation
	if input.Has(platformcore.ActionRestart) && (g.campaignCleared || g.genErr != nil) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    int64(g.baseSeed),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) && g.phase == PhasePlaying && !g.tooSmall {
		g.paused = !g.paused
	}

	if g.tooSmall || g.cfgErr != nil || g.genErr != nil || g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseTitle:
		// The seed scrolls while the title is up, so when the player
		// starts decides which campaign they get.
		g.baseSeed++
		if input.Has(platformcore.ActionConfirm) {
			g.startLevel(1)
		}

	case PhasePlaying:
		g.stepPlaying(input)

	case PhaseWin:
		if input.Has(platformcore.ActionConfirm) {
			g.advanceLevel()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// stepPlaying handles one tick of actual maze navigation.
func (g *Game) stepPlaying(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionRestart) {
		// Same level, same seed: the identical maze with the trail and
		// move counter wiped.
		g.startLevel(g.level)
		return
	}

	if input.Has(platformcore.ActionHint) && g.cfg.Gameplay.Hints {
		g.showHint = !g.showHint
		if g.showHint {
			g.refreshHint()
		}
	}

	if d, ok := directionFor(input); ok {
		if g.walker.TryMove(d) {
			if g.showHint {
				g.refreshHint()
			}
			if g.walker.AtExit() {
				g.completeLevel()
			}
		}
	}
}

// directionFor maps movement actions to a walker direction.
func directionFor(input platformcore.InputFrame) (core.Direction, bool) {
	switch {
	case input.Has(platformcore.ActionUp):
		return core.DirUp, true
	case input.Has(platformcore.ActionDown):
		return core.DirDown, true
	case input.Has(platformcore.ActionLeft):
		return core.DirLeft, true
	case input.Has(platformcore.ActionRight):
		return core.DirRight, true
	}
	return 0, false
}

// refreshHint recomputes the shortest path from the player to the exit.
func (g *Game) refreshHint() {
	g.hint = core.Solve(g.maze.Grid, g.walker.Pos(), g.walker.Exit())
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.cfgErr != nil {
		g.renderOverlay(dst, "Invalid maze configuration", g.cfgErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.genErr != nil {
		g.renderOverlay(dst, "Maze generation failed", "Press R to restart")
		return
	}
	if g.phase == PhaseTitle {
		g.renderTitle(dst)
		return
	}

	g.renderMaze(dst)
	if g.showHint {
		g.renderHint(dst)
	}
	g.renderActors(dst)

	switch {
	case g.phase == PhaseWin && g.campaignCleared:
		g.renderOverlay(dst,
			fmt.Sprintf("All %d levels cleared!", g.cfg.Gameplay.MaxLevel),
			fmt.Sprintf("Score: %d. Enter loops, R restarts", g.score))
	case g.phase == PhaseWin:
		g.renderOverlay(dst,
			fmt.Sprintf("Level %d cleared!", g.level),
			fmt.Sprintf("%d moves, shortest %d. Press Enter", g.walker.Moves(), g.optimal))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var hud string
	if g.phase == PhaseTitle {
		hud = fmt.Sprintf(" Maze — Seed: %05d", g.baseSeed)
	} else {
		moves := 0
		if g.walker != nil {
			moves = g.walker.Moves()
		}
		hud = fmt.Sprintf(" Maze — Level: %d/%d  Moves: %d  Score: %d",
			g.level, g.cfg.Gameplay.MaxLevel, moves, g.score)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderTitle draws the title screen.
func (g *Game) renderTitle(dst *platformcore.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-3, "M A Z E")
	dst.DrawTextCentered(midY-1, "Find the exit, every level is a fresh maze")
	dst.DrawTextCentered(midY+1, "Press Enter to start")
	dst.DrawTextCentered(midY+3, "arrows/wasd move   ? hint   p pause   r restart   q quit")
}

// renderMaze draws walls, carved cells and the breadcrumb trail.
func (g *Game) renderMaze(dst *platformcore.Screen) {
	grid := g.maze.Grid
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			sx := g.offsetX + x
			sy := g.offsetY + y
			switch grid.At(x, y) {
			case core.CellWall:
				dst.SetColored(sx, sy, '█', platformcore.ColorBlue)
			case core.CellCrumb:
				if g.cfg.Display.Breadcrumbs {
					dst.SetColored(sx, sy, '·', platformcore.ColorGray)
				}
			}
		}
	}
}

// renderHint overlays the shortest path from the player to the exit.
func (g *Game) renderHint(dst *platformcore.Screen) {
	for _, p := range g.hint {
		if p == g.walker.Pos() || p == g.walker.Exit() {
			continue
		}
		dst.SetColored(g.offsetX+p.X, g.offsetY+p.Y, '•', platformcore.ColorBrightCyan)
	}
}

// renderActors draws the exit marker and the player.
func (g *Game) renderActors(dst *platformcore.Screen) {
	exit := g.maze.Exit
	dst.SetColored(g.offsetX+exit.X, g.offsetY+exit.Y, 'X', platformcore.ColorBrightGreen)

	pos := g.walker.Pos()
	dst.SetColored(g.offsetX+pos.X, g.offsetY+pos.Y, '@', platformcore.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.campaignCleared || g.cfgErr != nil || g.genErr != nil,
		Paused:   g.paused,
	}
}

// CurrentPhase returns the current phase. Exposed for the platform layer.
func (g *Game) CurrentPhase() Phase {
	return g.phase
}

// Config returns the effective configuration after presets and overrides.
func (g *Game) Config() config.MazeConfig {
	return g.cfg
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	return fmt.Sprintf("Tick: %d, Level: %d, Seed: %d, State: %s\nPlayer: (%d, %d), Exit: (%d, %d), Moves: %d/%d, Score: %d\n",
		s.Tick, s.Level, s.Seed, s.State,
		s.PlayerX, s.PlayerY, s.ExitX, s.ExitY, s.Moves, s.OptimalMoves, s.Score)
}

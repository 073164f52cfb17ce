package maze

// GameStateType represents the current game state.
type GameStateType string

const (
	StateTitle       GameStateType = "title"
	StateGenerating  GameStateType = "generating"
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateCleared     GameStateType = "campaign_cleared"
	StateBadConfig   GameStateType = "invalid_config"
	StateGenFailed   GameStateType = "generation_failed"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Level        int // Current level (1-indexed)
	BaseSeed     uint16
	Seed         uint16 // Seed the current level was carved from
	Score        int
	Moves        int
	OptimalMoves int
	PlayerX      int
	PlayerY      int
	ExitX        int
	ExitY        int
	GridW        int
	GridH        int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.cfgErr != nil:
		state = StateBadConfig
	case g.tooSmall:
		state = StatePausedSmall
	case g.genErr != nil:
		state = StateGenFailed
	case g.phase == PhaseTitle:
		state = StateTitle
	case g.phase == PhaseGenerating:
		state = StateGenerating
	case g.phase == PhaseWin && g.campaignCleared:
		state = StateCleared
	case g.phase == PhaseWin:
		state = StateWin
	}

	s := Snapshot{
		Tick:     g.tick,
		Level:    g.level,
		BaseSeed: g.baseSeed,
		Score:    g.score,
		State:    state,
	}
	if g.maze != nil {
		s.Seed = g.levelSeed(g.level)
		s.GridW = g.maze.Grid.Width
		s.GridH = g.maze.Grid.Height
		s.ExitX = g.maze.Exit.X
		s.ExitY = g.maze.Exit.Y
	}
	if g.walker != nil {
		s.Moves = g.walker.Moves()
		s.OptimalMoves = g.optimal
		s.PlayerX = g.walker.Pos().X
		s.PlayerY = g.walker.Pos().Y
	}
	return s
}

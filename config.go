package cardgame

import (
	"os"
	"strconv"
)

// Config holds the engine's runtime-tunable behavior. Values default to
// production settings and can be overridden by environment variables,
// following the same os.Getenv-with-default pattern the rest of this
// codebase's tooling uses for its own settings.
type Config struct {
	// ShuffleDeckOnInsert is the default passed to NewGameState: whether
	// a player's secret deck reshuffles on every insertion, or stacks
	// the new card on top. Disabling this is for deterministic tests
	// only; it is persisted per-game from here on, not re-read from
	// Config.
	ShuffleDeckOnInsert bool

	// DebugConsistencyChecks runs the (expensive) consistency checker
	// after every MoveCard (including the moves DrawCard, DrawCards and
	// MoveCards make) instead of only on demand; other operations are not
	// checked. Intended for tests and local debugging, never production
	// traffic.
	DebugConsistencyChecks bool

	// LogLevel is passed through to obslog.Init.
	LogLevel string
}

// NewConfig returns the default Config, overridden by any of
// CARDGAME_SHUFFLE_DECK, CARDGAME_DEBUG_CONSISTENCY, CARDGAME_LOG_LEVEL
// set in the environment.
func NewConfig() Config {
	cfg := Config{
		ShuffleDeckOnInsert:    true,
		DebugConsistencyChecks: false,
		LogLevel:               "info",
	}

	if v := os.Getenv("CARDGAME_SHUFFLE_DECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ShuffleDeckOnInsert = b
		}
	}
	if v := os.Getenv("CARDGAME_DEBUG_CONSISTENCY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DebugConsistencyChecks = b
		}
	}
	if v := os.Getenv("CARDGAME_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

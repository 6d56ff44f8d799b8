package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible caves and games.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Cheat enables the dump and best commands.
	Cheat bool

	// SavePath is the file the cave is kept in between runs. Empty keeps
	// the cave in memory only.
	SavePath string

	// Pace is the pause between rooms while an arrow flies.
	Pace time.Duration

	// Screen selects the full-screen console instead of plain lines.
	Screen bool

	// NoColor turns off styled output on the line console.
	NoColor bool

	// LogLevel is the minimum level logged: debug, info, warn or error.
	LogLevel string

	// LogFile receives the log instead of stderr when set.
	LogFile string

	// Telemetry exports traces over OTLP.
	Telemetry bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		SavePath: "wumpus.cave",
		Pace:     500 * time.Millisecond,
		LogLevel: "warn",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies WUMPUS_* variables.
func ConfigFromEnv() (Config, error) {
	return configFrom(os.LookupEnv)
}

func configFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup("WUMPUS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("WUMPUS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("WUMPUS_PACE"); ok {
		pace, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("WUMPUS_PACE: %w", err)
		}
		cfg.Pace = pace
	}
	for name, dst := range map[string]*bool{
		"WUMPUS_CHEAT":     &cfg.Cheat,
		"WUMPUS_SCREEN":    &cfg.Screen,
		"WUMPUS_NO_COLOR":  &cfg.NoColor,
		"WUMPUS_TELEMETRY": &cfg.Telemetry,
	} {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	if v, ok := lookup("WUMPUS_SAVE"); ok {
		cfg.SavePath = v
	}
	if v, ok := lookup("WUMPUS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("WUMPUS_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg, nil
}

// ResolveSeed replaces a zero seed with one taken from the clock and
// returns the seed that will be used.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

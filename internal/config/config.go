// Package config reads game and process settings from command-line flags,
// falling back to environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"upturn/internal/game"
)

var (
	ErrMissing = errors.New("missing required setting")
	ErrInvalid = errors.New("invalid setting")
)

const DefaultKafkaTopic = "upturn-events"

type Config struct {
	Game         game.Config
	SpectateAddr string
	KafkaBrokers []string
	KafkaTopic   string
	LogLevel     string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load parses args (without the program name). Run length, width, height
// and storage kind are required, either as flags or as UPTURN_* variables.
func Load(args []string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	env := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	fs := flag.NewFlagSet("upturn", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := fs.String("r", env("UPTURN_RUN"), "pieces in a row needed to win")
	width := fs.String("w", env("UPTURN_WIDTH"), "board width")
	height := fs.String("h", env("UPTURN_HEIGHT"), "board height")
	matrix := fs.Bool("m", false, "store the board as a matrix")
	bits := fs.Bool("b", false, "store the board as packed bits")
	workers := fs.String("workers", env("UPTURN_WORKERS"), "max concurrent rows while rotating (0 = one per row)")
	spectate := fs.String("spectate", env("UPTURN_SPECTATE_ADDR"), "address for the read-only spectator server")
	logLevel := fs.String("log-level", env("LOG_LEVEL"), "debug, info, warn, error or development")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		SpectateAddr: *spectate,
		KafkaTopic:   env("KAFKA_TOPIC"),
		LogLevel:     *logLevel,
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = DefaultKafkaTopic
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	for _, b := range strings.Split(env("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	var err error
	if cfg.Game.Run, err = positive("run length (-r)", *run); err != nil {
		return Config{}, err
	}
	if cfg.Game.Width, err = positive("width (-w)", *width); err != nil {
		return Config{}, err
	}
	if cfg.Game.Height, err = positive("height (-h)", *height); err != nil {
		return Config{}, err
	}
	if cfg.Game.Storage, err = storage(*matrix, *bits, env("UPTURN_STORAGE")); err != nil {
		return Config{}, err
	}
	if *workers != "" {
		n, err := strconv.Atoi(*workers)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: workers %q", ErrInvalid, *workers)
		}
		cfg.Game.Workers = n
	}
	return cfg, nil
}

func positive(name, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalid, name, raw)
	}
	return n, nil
}

// storage resolves the board kind. Flags win over UPTURN_STORAGE.
func storage(matrix, bits bool, fromEnv string) (game.StorageKind, error) {
	switch {
	case matrix && bits:
		return 0, fmt.Errorf("%w: -m and -b are exclusive", ErrInvalid)
	case matrix:
		return game.Dense, nil
	case bits:
		return game.Packed, nil
	}
	switch strings.ToLower(fromEnv) {
	case "":
		return 0, fmt.Errorf("%w: storage kind (-m or -b)", ErrMissing)
	case "matrix", "dense":
		return game.Dense, nil
	case "bits", "packed":
		return game.Packed, nil
	}
	return 0, fmt.Errorf("%w: storage %q", ErrInvalid, fromEnv)
}

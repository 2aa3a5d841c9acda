package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from MILLIONDOUBT_* environment variables
type Config struct {
	// Seed drives shuffling, the coin flip and the CPU. 0 picks one from the clock.
	Seed           int64   `env:"MILLIONDOUBT_SEED"`
	HandSize       int     `env:"MILLIONDOUBT_HAND_SIZE,default=7"`
	BurstThreshold int     `env:"MILLIONDOUBT_BURST_THRESHOLD,default=11"`
	MaxAttempts    int     `env:"MILLIONDOUBT_MAX_ATTEMPTS,default=5"`
	CPUDoubtRate   float64 `env:"MILLIONDOUBT_CPU_DOUBT_RATE"`
	CPUBluffRate   float64 `env:"MILLIONDOUBT_CPU_BLUFF_RATE"`
	PlayerName     string  `env:"MILLIONDOUBT_PLAYER_NAME"`
	LogLevel       string  `env:"MILLIONDOUBT_LOG_LEVEL,default=info"`
	LogFile        string  `env:"MILLIONDOUBT_LOG_FILE,default=milliondoubt.log"`
	// SpectatorAddr starts the spectator server when set, e.g. ":8000"
	SpectatorAddr string `env:"MILLIONDOUBT_SPECTATOR_ADDR"`
}

// Load decodes the environment into a Config and validates it
func Load() (Config, error) {
	var c Config
	err := envdecode.Decode(&c)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.HandSize < 1 || c.HandSize*2 > 54 {
		return fmt.Errorf("%w: hand size %d", ErrInvalidConfig, c.HandSize)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.BurstThreshold < 1 {
		return fmt.Errorf("%w: burst threshold %d", ErrInvalidConfig, c.BurstThreshold)
	}
	if c.CPUDoubtRate > 1 || c.CPUBluffRate > 1 {
		return fmt.Errorf("%w: CPU rates must be at most 1", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Logger builds a JSON logger writing to LogFile. An empty LogFile
// disables logging.
func (c Config) Logger() (*zap.Logger, error) {
	if c.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{c.LogFile}
	zc.ErrorOutputPaths = []string{c.LogFile}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

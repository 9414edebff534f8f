package config

import (
	"fmt"

	"github.com/fernandosanchezjr/seedrand/engine"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Engine     Engine     `yaml:"engine" envPrefix:"ENGINE_"`
	Stream     Stream     `yaml:"stream" envPrefix:"STREAM_"`
	Log        Log        `yaml:"log" envPrefix:"LOG_"`
	Checkpoint Checkpoint `yaml:"checkpoint" envPrefix:"CHECKPOINT_"`
}

type Engine struct {
	Width int `yaml:"width" env:"WIDTH"`
	// Seed is applied at construction when set; engines are seeded from
	// system entropy otherwise.
	Seed *int64 `yaml:"seed,omitempty" env:"SEED"`
}

type Stream struct {
	ChunkSize int `yaml:"chunkSize,omitempty" env:"CHUNK_SIZE"`
	Buffer    int `yaml:"buffer,omitempty" env:"BUFFER"`
}

type Log struct {
	Level  string `yaml:"level,omitempty" env:"LEVEL"`
	File   string `yaml:"file,omitempty" env:"FILE"`
	Colors bool   `yaml:"colors,omitempty" env:"COLORS"`
}

type Checkpoint struct {
	Path string `yaml:"path,omitempty" env:"PATH"`
}

func Default() *Config {
	return &Config{
		Engine:     Engine{Width: int(engine.DefaultWidth)},
		Stream:     Stream{ChunkSize: 2000, Buffer: 1},
		Log:        Log{Level: "info"},
		Checkpoint: Checkpoint{Path: "~/.seedrand/checkpoints.db"},
	}
}

func (c *Config) Validate() error {
	if !engine.Width(c.Engine.Width).Valid() {
		return fmt.Errorf("config: %w: %d", engine.ErrUnsupportedWidth, c.Engine.Width)
	}
	if c.Stream.ChunkSize < 0 {
		return fmt.Errorf("config: invalid chunk size %d", c.Stream.ChunkSize)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

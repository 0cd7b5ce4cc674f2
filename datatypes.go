package chessenc

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"github.com/chessenc/boardarray"
	dual "github.com/chessenc/dualnet"
	"github.com/chessenc/game"
)

// Config for turning games into training examples.
// It holds the layout positions are encoded with and the network shape
// the examples are batched for.
type Config struct {
	Name   string          `json:"name"`
	Mode   boardarray.Mode `json:"mode"`
	NNConf dual.Config     `json:"nn_conf"`
	// number of encoding goroutines
	Workers int `json:"workers"`
	// maximum number of examples, 0 for no limit
	MaxExamples int   `json:"max_examples"`
	Seed        int64 `json:"seed"`
}

// DefaultConfig returns a valid configuration for mode.
func DefaultConfig(mode boardarray.Mode) Config {
	return Config{
		Name:    "chessenc",
		Mode:    mode,
		NNConf:  dual.DefaultConf(mode),
		Workers: runtime.NumCPU(),
	}
}

func (c Config) IsValid() bool {
	return c.Mode.Valid() &&
		c.NNConf.IsValid() &&
		c.Workers >= 1 &&
		c.MaxExamples >= 0
}

// LoadConfig reads a JSON config. Fields missing from the file keep the
// defaults of the mode named in the file, or of Matrix.
func LoadConfig(filename string) (Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	var probe struct {
		Mode boardarray.Mode `json:"mode"`
	}
	probe.Mode = boardarray.Matrix
	if err := json.Unmarshal(b, &probe); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", filename)
	}
	conf := DefaultConfig(probe.Mode)
	if err := json.Unmarshal(b, &conf); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", filename)
	}
	if !conf.IsValid() {
		return Config{}, errors.Errorf("config %s is not valid", filename)
	}
	return conf, nil
}

// PositionEncoder encodes a position as a slice of floats
type PositionEncoder func(p game.Position) ([]float32, error)

// Example is one transition of a game: the position before and after a
// move and the action index of that move.
type Example struct {
	Board  []float32
	Next   []float32
	Action int
}

package dual

import (
	"github.com/chessenc/actionspace"
	"github.com/chessenc/boardarray"
	"github.com/chessenc/game"
)

// Config describes the network a training harness builds on top of the
// encoded examples: its input planes, its policy head and its width.
//
// Only the input fields (Width, Height, Features, SideInfo), ActionSpace
// and BatchSize are used here, by chessenc.PrepareBatches. K, SharedLayers,
// FC and FwdOnly are carried through configs and stored runs untouched for
// the harness that builds the network; IsValid only bounds them.
type Config struct {
	K            int  `json:"k"`             // number of filters
	SharedLayers int  `json:"shared_layers"` // number of shared residual blocks
	FC           int  `json:"fc"`            // fc layer width
	BatchSize    int  `json:"batch_size"`    // batch size
	Width        int  `json:"width"`         // board size width
	Height       int  `json:"height"`        // board size height
	Features     int  `json:"features"`      // feature counts
	SideInfo     int  `json:"side_info"`     // scalars appended after the planes
	ActionSpace  int  `json:"action_space"`  // action space
	FwdOnly      bool `json:"fwd_only"`      // is this a fwd only graph?
}

// DefaultConf sizes the network input for positions encoded in mode.
func DefaultConf(mode boardarray.Mode) Config {
	features, m, n := 1, game.RowNum, game.ColNum
	switch mode {
	case boardarray.Array:
		m, n = 1, game.BoardSize
	case boardarray.Tensor:
		features = boardarray.Planes
	}
	k := round((m * n) / 3)
	return Config{
		K:            k,
		SharedLayers: m,
		FC:           2 * k,
		BatchSize:    256,
		Width:        n,
		Height:       m,
		Features:     features,
		SideInfo:     boardarray.SideInfoSize,
		ActionSpace:  actionspace.Size,
	}
}

// InputSize is the length of one encoded position.
func (conf Config) InputSize() int {
	return conf.Features*conf.Height*conf.Width + conf.SideInfo
}

func (conf Config) IsValid() bool {
	return conf.K >= 1 &&
		conf.ActionSpace == actionspace.Size &&
		conf.SharedLayers >= 0 &&
		conf.FC > 1 &&
		conf.BatchSize >= 1 &&
		conf.Width*conf.Height == game.BoardSize &&
		conf.SideInfo >= 0 &&
		conf.Features > 0
}

// round returns the power of two nearest to a, the default filter count.
func round(a int) int {
	n := a - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++

	lt := n / 2
	if (a - lt) < (n - a) {
		return lt
	}
	return n
}

package game

import (
	"math/rand/v2"

	"github.com/cbodonnell/blockdrop/pkg/game/types"
)

// Randomizer chooses the type of each new piece.
type Randomizer interface {
	Next() types.PieceType
}

// UniformRandomizer picks every piece type with equal probability.
// Two randomizers built from the same seed produce the same sequence.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *UniformRandomizer) Next() types.PieceType {
	return types.PieceType(r.rng.IntN(types.NumPieceTypes) + 1)
}

// SequenceRandomizer replays a fixed sequence of piece types, wrapping around.
type SequenceRandomizer struct {
	sequence []types.PieceType
	i        int
}

func NewSequenceRandomizer(sequence ...types.PieceType) *SequenceRandomizer {
	return &SequenceRandomizer{sequence: sequence}
}

func (r *SequenceRandomizer) Next() types.PieceType {
	t := r.sequence[r.i%len(r.sequence)]
	r.i++
	return t
}

package game

import (
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/kamstrup/intmap"
)

// Stats counts the pieces spawned during a game.
type Stats struct {
	counts *intmap.Map[types.PieceType, int]
	total  int
}

func NewStats() *Stats {
	return &Stats{
		counts: intmap.New[types.PieceType, int](types.NumPieceTypes),
	}
}

func (s *Stats) Add(t types.PieceType) {
	n, _ := s.counts.Get(t)
	s.counts.Put(t, n+1)
	s.total++
}

func (s *Stats) Count(t types.PieceType) int {
	n, _ := s.counts.Get(t)
	return n
}

func (s *Stats) Total() int {
	return s.total
}

func (s *Stats) Reset() {
	s.counts.Clear()
	s.total = 0
}

// Map returns the counts of every playable piece type.
func (s *Stats) Map() map[types.PieceType]int {
	m := make(map[types.PieceType]int, types.NumPieceTypes)
	for t := types.PieceTypeI; t <= types.PieceTypeZ; t++ {
		m[t] = s.Count(t)
	}
	return m
}

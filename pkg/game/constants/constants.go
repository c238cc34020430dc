package constants

import "time"

const (
	// Cols is the number of columns of the board
	Cols int = 10
	// Rows is the number of rows of the board
	Rows int = 20
	// BlockSize is the size of a single cell in pixels
	BlockSize int = 30
	// PreviewSize is the number of cells on each side of the next piece preview
	PreviewSize int = 4

	// LinesPerLevel is the number of cleared lines needed to advance a level
	LinesPerLevel int = 10
	// NoOfHighScores is the capacity of the high score list
	NoOfHighScores int = 10

	// PointsSingle is awarded for clearing one line (multiplied by level + 1)
	PointsSingle int = 100
	// PointsDouble is awarded for clearing two lines (multiplied by level + 1)
	PointsDouble int = 300
	// PointsTriple is awarded for clearing three lines (multiplied by level + 1)
	PointsTriple int = 500
	// PointsTetris is awarded for clearing four lines (multiplied by level + 1)
	PointsTetris int = 800
	// PointsSoftDrop is awarded for every row a piece is moved down by the player
	PointsSoftDrop int = 1
	// PointsHardDrop is awarded for every row a piece travels on a hard drop
	PointsHardDrop int = 2
)

// levelIntervals is the gravity drop interval indexed by level.
var levelIntervals = []time.Duration{
	800 * time.Millisecond, // 0
	720 * time.Millisecond,
	630 * time.Millisecond,
	550 * time.Millisecond,
	470 * time.Millisecond,
	380 * time.Millisecond, // 5
	300 * time.Millisecond,
	220 * time.Millisecond,
	130 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond, // 10
	80 * time.Millisecond,
	80 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond, // 15
	50 * time.Millisecond,
	50 * time.Millisecond,
	50 * time.Millisecond,
	30 * time.Millisecond,
	30 * time.Millisecond, // 20
}

// LevelInterval returns the gravity drop interval for a level.
// Levels past the end of the table keep the fastest interval.
func LevelInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level >= len(levelIntervals) {
		level = len(levelIntervals) - 1
	}
	return levelIntervals[level]
}

// LinesClearedPoints returns the base points for clearing a number of lines at once.
func LinesClearedPoints(lines int) int {
	switch lines {
	case 1:
		return PointsSingle
	case 2:
		return PointsDouble
	case 3:
		return PointsTriple
	case 4:
		return PointsTetris
	default:
		return 0
	}
}

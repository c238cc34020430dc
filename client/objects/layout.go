package objects

import "github.com/cbodonnell/blockdrop/pkg/game/constants"

const (
	// BoardX is the left edge of the board on screen
	BoardX = 20
	// BoardY is the top edge of the board on screen
	BoardY = 20
	// BoardWidth is the width of the board on screen
	BoardWidth = constants.Cols * constants.BlockSize
	// BoardHeight is the height of the board on screen
	BoardHeight = constants.Rows * constants.BlockSize
	// PanelX is the left edge of the side panel
	PanelX = BoardX + BoardWidth + 30
)

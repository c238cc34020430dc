package scenes

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/cbodonnell/blockdrop/client/flow"
	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/cbodonnell/blockdrop/client/input"
	"github.com/cbodonnell/blockdrop/client/objects"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/workers"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the summary of a finished game and where its score was saved.
type GameOverScene struct {
	*BaseScene

	summary  types.Summary
	replayID string
	saving   bool
	online   bool
	result   *workers.SaveHighScoreResult
	status   string
	ui       *ebitenui.UI
}

type GameOverSceneOptions struct {
	Summary  types.Summary
	ReplayID string
	// Saving is true while the score is being saved
	Saving bool
	// Online is true when a score service is configured
	Online bool
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) *GameOverScene {
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("gameover-root", nil)),
		summary:   opts.Summary,
		replayID:  opts.ReplayID,
		saving:    opts.Saving,
		online:    opts.Online,
	}
}

func (s *GameOverScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

// SetResult shows the outcome of saving the score.
func (s *GameOverScene) SetResult(result *workers.SaveHighScoreResult) {
	s.saving = false
	s.result = result
	s.renderUI()
}

func (s *GameOverScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    120,
				Left:   40,
				Right:  40,
				Bottom: 40,
			}))),
	)

	rootContainer.AddChild(newText("GAME OVER", fonts.MPlusLargeFont, textColor))
	rootContainer.AddChild(newText(fmt.Sprintf("SCORE %d", s.summary.Account.Score), fonts.MPlusNormalFont, textColor))
	rootContainer.AddChild(newText(fmt.Sprintf("LEVEL %d  LINES %d  PIECES %d",
		s.summary.Account.Level, s.summary.Account.Lines, s.summary.Pieces), fonts.TTFNormalFont, textColor))

	for _, line := range s.resultLines() {
		rootContainer.AddChild(newText(line, fonts.TTFNormalFont, textColor))
	}

	if s.replayID != "" {
		rootContainer.AddChild(newText("replay "+s.replayID, fonts.TTFSmallFont, mutedColor))
	}
	if s.status != "" {
		rootContainer.AddChild(newText(s.status, fonts.TTFSmallFont, mutedColor))
	}
	rootContainer.AddChild(newText("C copy summary   ENTER menu", fonts.TTFSmallFont, mutedColor))

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameOverScene) resultLines() []string {
	if s.saving {
		return []string{"saving score..."}
	}
	if s.result == nil {
		return nil
	}

	var lines []string
	switch {
	case s.result.LocalErr != nil:
		lines = append(lines, "local save failed")
	case s.result.LocalRank > 0:
		lines = append(lines, fmt.Sprintf("#%d on the local list", s.result.LocalRank))
	}
	if !s.online {
		return lines
	}
	switch {
	case s.result.RemoteErr != nil:
		lines = append(lines, flow.RemoteErrorLine(s.result.RemoteErr))
	case s.result.RemoteRank > 0:
		lines = append(lines, fmt.Sprintf("#%d on the online list", s.result.RemoteRank))
	default:
		lines = append(lines, "not on the online list")
	}
	return lines
}

func (s *GameOverScene) Update() error {
	if input.IsCopyJustPressed() {
		s.copySummary()
	}
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) copySummary() {
	if err := clipboard.WriteAll(flow.ShareLine(s.summary, s.replayID)); err != nil {
		log.Warn("Failed to copy summary to clipboard: %v", err)
		s.status = "clipboard unavailable"
	} else {
		s.status = "summary copied to clipboard"
	}
	s.renderUI()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}

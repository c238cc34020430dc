package animations

// Animation steps through a fixed number of frames, advancing one frame
// every frameSpeed updates and wrapping around at the end.
type Animation struct {
	// frameCount is the number of frames in the animation.
	frameCount int
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index.
	frameIndex int
}

type NewAnimationOptions struct {
	FrameCount int
	FrameSpeed int
}

func NewAnimation(opts NewAnimationOptions) *Animation {
	a := &Animation{
		frameCount: opts.FrameCount,
		frameSpeed: opts.FrameSpeed,
	}
	if a.frameCount < 1 {
		a.frameCount = 1
	}
	if a.frameSpeed < 1 {
		a.frameSpeed = 1
	}
	return a
}

// NewBlinkAnimation alternates between a visible and a hidden frame.
func NewBlinkAnimation(speed int) *Animation {
	return NewAnimation(NewAnimationOptions{
		FrameCount: 2,
		FrameSpeed: speed,
	})
}

func (a *Animation) Update() {
	a.updateCount++
	a.frameIndex = (a.updateCount / a.frameSpeed) % a.frameCount
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

// Visible is true on the first frame of a blink animation.
func (a *Animation) Visible() bool {
	return a.frameIndex == 0
}

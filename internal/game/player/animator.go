package player

// Animation clip indices.
const (
	AnimIdle = 0
	AnimRun  = 1
)

// DefaultAnimationFPS is the playback rate of animation clips.
const DefaultAnimationFPS = 60

// Animator advances frames of the current clip. Frame counts per clip come
// from the presentation layer.
type Animator struct {
	FrameCounts []int
	FPS         float32

	clip    int
	frame   int
	elapsed float32
}

// NewAnimator creates an animator for clips with the given frame counts.
func NewAnimator(frameCounts []int, fps float32) *Animator {
	if fps <= 0 {
		fps = DefaultAnimationFPS
	}
	return &Animator{FrameCounts: frameCounts, FPS: fps}
}

// ClampClip limits index to a valid clip, or 0 when there are no clips.
func (a *Animator) ClampClip(index int) int {
	if index < 0 || len(a.FrameCounts) == 0 {
		return 0
	}
	if index >= len(a.FrameCounts) {
		return len(a.FrameCounts) - 1
	}
	return index
}

// Update switches to clip index (restarting it on change) and advances at
// most one frame per call once a frame duration has elapsed.
func (a *Animator) Update(index int, dt float32) (clip, frame int) {
	index = a.ClampClip(index)
	if index != a.clip {
		a.clip = index
		a.frame = 0
		a.elapsed = 0
	}
	if len(a.FrameCounts) == 0 {
		return a.clip, 0
	}

	a.elapsed += dt
	frameDuration := 1 / a.FPS
	if a.elapsed >= frameDuration {
		a.elapsed -= frameDuration
		if total := a.FrameCounts[a.clip]; total > 0 {
			a.frame = (a.frame + 1) % total
		} else {
			a.frame = 0
		}
	}
	return a.clip, a.frame
}

// Clip returns the current clip index.
func (a *Animator) Clip() int { return a.clip }

// Frame returns the current frame within the clip.
func (a *Animator) Frame() int { return a.frame }

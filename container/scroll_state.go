package container

import "github.com/lixenwraith/reorder/vmath"

// ScrollState tracks a continuous content offset along one axis
// Offset is the content coordinate shown at the viewport's leading edge
type ScrollState struct {
	Offset   float64 // Content offset, -Leading when scrolled to the start
	Content  float64 // Content length, insets excluded
	Viewport float64 // Visible length
	Leading  float64 // Inset before content
	Trailing float64 // Inset after content
}

// NewScrollState creates a state scrolled to the start
func NewScrollState(content, viewport, leading, trailing float64) ScrollState {
	s := ScrollState{
		Content:  content,
		Viewport: viewport,
		Leading:  leading,
		Trailing: trailing,
	}
	s.Offset = s.MinOffset()
	return s
}

// MinOffset is the smallest valid offset
func (s *ScrollState) MinOffset() float64 {
	return -s.Leading
}

// MaxOffset is the largest valid offset, may be below MinOffset for short content
func (s *ScrollState) MaxOffset() float64 {
	return s.Content - s.Viewport + s.Trailing
}

// Clamp keeps offset within range, the leading bound wins for short content
func (s *ScrollState) Clamp() {
	s.Offset = vmath.Clamp(s.Offset, s.MinOffset(), s.MaxOffset())
}

// ScrollBy adjusts offset by delta, clamping to valid range, and returns the applied delta
func (s *ScrollState) ScrollBy(delta float64) float64 {
	before := s.Offset
	s.Offset += delta
	s.Clamp()
	return s.Offset - before
}

// ScrollTo sets offset to a specific position
func (s *ScrollState) ScrollTo(pos float64) {
	s.Offset = pos
	s.Clamp()
}

// SetContent updates content length and reclamps
func (s *ScrollState) SetContent(content float64) {
	s.Content = content
	s.Clamp()
}

// SetViewport updates visible length and reclamps
func (s *ScrollState) SetViewport(viewport float64) {
	s.Viewport = viewport
	s.Clamp()
}

// AtStart returns true if scrolled to the leading bound
func (s *ScrollState) AtStart() bool {
	return s.Offset <= s.MinOffset()
}

// AtEnd returns true if scrolled to the trailing bound
func (s *ScrollState) AtEnd() bool {
	return s.Offset >= s.MaxOffset()
}

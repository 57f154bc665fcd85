package ui

// overlayKind tags which dialog, if any, sits above the main view.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayDetail
	overlayAbout
	overlayCalculator
)

// detailEndSentinel is the scroll offset set by End. It is far past
// any real note and gets clamped against the rendered line count at
// draw time.
const detailEndSentinel = 1000

// Overlay tracks the active dialog and its per-dialog state: the
// detail scroll offset and the calculator engine.
type Overlay struct {
	kind         overlayKind
	detailScroll int
	calc         Calculator
}

func NewOverlay() Overlay {
	return Overlay{calc: NewCalculator()}
}

func (o *Overlay) Kind() overlayKind { return o.kind }

// OpenDetail shows the detail dialog scrolled to the top.
func (o *Overlay) OpenDetail() {
	o.kind = overlayDetail
	o.detailScroll = 0
}

func (o *Overlay) OpenAbout() {
	o.kind = overlayAbout
}

// OpenCalculator shows the calculator, reset to a clean slate.
func (o *Overlay) OpenCalculator() {
	o.kind = overlayCalculator
	o.calc = NewCalculator()
}

func (o *Overlay) Close() {
	o.kind = overlayNone
}

func (o *Overlay) ScrollUp() {
	if o.detailScroll > 0 {
		o.detailScroll--
	}
}

// ScrollDown moves the offset down without an upper clamp; the draw
// path limits it to the content height.
func (o *Overlay) ScrollDown() {
	o.detailScroll++
}

func (o *Overlay) ScrollPageUp() {
	o.detailScroll -= listPageStep
	if o.detailScroll < 0 {
		o.detailScroll = 0
	}
}

func (o *Overlay) ScrollPageDown() {
	o.detailScroll += listPageStep
}

func (o *Overlay) ScrollHome() {
	o.detailScroll = 0
}

func (o *Overlay) ScrollEnd() {
	o.detailScroll = detailEndSentinel
}

// clampOffset limits a scroll offset to the top line that still
// leaves content on screen.
func clampOffset(offset, maxStart int) int {
	if maxStart < 0 {
		maxStart = 0
	}
	if offset > maxStart {
		return maxStart
	}
	if offset < 0 {
		return 0
	}
	return offset
}

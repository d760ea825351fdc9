package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfly/constant"
)

// ExitWatcher decides when user input should end the session. Events
// during the settling period right after start are tolerated, as are
// small mouse moves and spurious reports; the mouse baseline is the first
// observed position and is never rebased.
type ExitWatcher struct {
	start     time.Time
	mouseX    int
	mouseY    int
	mouseSeen bool
}

// NewExitWatcher starts the settling clock
func NewExitWatcher() *ExitWatcher {
	return &ExitWatcher{start: time.Now()}
}

// ShouldExit reports whether the event ends the session
func (w *ExitWatcher) ShouldExit(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return w.settled()

	case *tcell.EventMouse:
		if ev.Buttons() != tcell.ButtonNone {
			return w.settled()
		}
		x, y := ev.Position()
		if !w.mouseSeen {
			w.mouseSeen = true
			w.mouseX, w.mouseY = x, y
			return false
		}
		dx := x - w.mouseX
		if dx < 0 {
			dx = -dx
		}
		dy := y - w.mouseY
		if dy < 0 {
			dy = -dy
		}
		return (dx > constant.MouseTolerance || dy > constant.MouseTolerance) && w.settled()
	}

	return false
}

func (w *ExitWatcher) settled() bool {
	return time.Since(w.start) > constant.SettlingTime
}

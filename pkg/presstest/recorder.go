package presstest

import "github.com/go-drift/press/pkg/press"

// CallbackRecorder is a press.Callback that records every notification
// in delivery order.
type CallbackRecorder struct {
	Pressed   []press.Element
	Unpressed []press.Element
}

func (r *CallbackRecorder) OnElementPressed(el press.Element) {
	r.Pressed = append(r.Pressed, el)
}

func (r *CallbackRecorder) OnElementUnpressed(el press.Element) {
	r.Unpressed = append(r.Unpressed, el)
}

// Reset discards all recorded notifications.
func (r *CallbackRecorder) Reset() {
	r.Pressed = nil
	r.Unpressed = nil
}

// Balanced reports whether every element's pressed notifications are
// matched one for one by unpressed notifications.
func (r *CallbackRecorder) Balanced() bool {
	counts := make(map[press.Element]int)
	for _, el := range r.Pressed {
		counts[el]++
	}
	for _, el := range r.Unpressed {
		counts[el]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

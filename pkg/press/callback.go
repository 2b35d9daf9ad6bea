package press

// Callback receives press-state transitions from a Detector. Methods are
// invoked synchronously, in registration order, on the goroutine driving
// the detector.
type Callback interface {
	// OnElementPressed is called when an element enters confirmed
	// pressed state.
	OnElementPressed(el Element)
	// OnElementUnpressed is called when a previously confirmed element
	// leaves pressed state.
	OnElementUnpressed(el Element)
}

// CallbackFuncs adapts plain functions to the Callback interface.
// Nil fields are ignored.
type CallbackFuncs struct {
	Pressed   func(el Element)
	Unpressed func(el Element)
}

func (c *CallbackFuncs) OnElementPressed(el Element) {
	if c.Pressed != nil {
		c.Pressed(el)
	}
}

func (c *CallbackFuncs) OnElementUnpressed(el Element) {
	if c.Unpressed != nil {
		c.Unpressed(el)
	}
}

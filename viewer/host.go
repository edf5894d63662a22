package viewer

// Host is the page the viewer lives in.
type Host interface {
	// Viewport returns the current inner size of the window.
	Viewport() (width, height float64)
	// AppendToBody attaches a surface as a child of the document body.
	AppendToBody(element Element)
	// ColorInput returns the [data-color] input, if the page has one.
	ColorInput() (ColorInput, bool)
	OnResize(handler func())
	// RequestAnimationFrame runs callback once before the next repaint.
	RequestAnimationFrame(callback func())
}

type ColorInput interface {
	Value() string
	OnChange(handler func())
}

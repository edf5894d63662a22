//go:build js

// Package jsbind connects the viewer to a browser page: the DOM through
// Host, and the global THREE object through Library.
package jsbind

import (
	"net/url"
	"syscall/js"

	"github.com/nobonobo/box-viewer/viewer"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
)

// Params returns the query of the page URL.
func Params() url.Values {
	u, err := url.Parse(location.Get("href").String())
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

type Host struct {
	body js.Value
}

var _ viewer.Host = (*Host)(nil)

func NewHost() *Host {
	return &Host{
		body: document.Get("body"),
	}
}

func (h *Host) Viewport() (float64, float64) {
	return window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
}

func (h *Host) AppendToBody(element viewer.Element) {
	h.body.Call("appendChild", element.(js.Value))
}

func (h *Host) ColorInput() (viewer.ColorInput, bool) {
	elm := document.Call("querySelector", "[data-color]")
	if !elm.Truthy() {
		return nil, false
	}
	return &colorInput{elm: elm}, true
}

func (h *Host) OnResize(handler func()) {
	window.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	}), false)
}

func (h *Host) RequestAnimationFrame(callback func()) {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		jsFunc.Release()
		callback()
		return nil
	})
	window.Call("requestAnimationFrame", jsFunc)
}

type colorInput struct {
	elm js.Value
}

func (i *colorInput) Value() string {
	return i.elm.Get("value").String()
}

func (i *colorInput) OnChange(handler func()) {
	i.elm.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	}))
}

//go:build js

package jsbind

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/box-viewer/viewer"
)

var ErrNotLoaded = errors.New("rendering library not loaded")

// Library drives the THREE.js build that the page exposes as a global.
type Library struct {
	three         js.Value
	orbitControls js.Value
}

var _ viewer.Library = (*Library)(nil)

// NewLibrary binds the global THREE object. OrbitControls is taken from
// THREE.OrbitControls when the page loaded the classic build, otherwise
// it is imported from controlsURL.
func NewLibrary(ctx context.Context, controlsURL string) (*Library, error) {
	three := js.Global().Get("THREE")
	if !three.Truthy() {
		return nil, fmt.Errorf("%w: THREE", ErrNotLoaded)
	}
	ctor := three.Get("OrbitControls")
	if !ctor.Truthy() {
		ctor = js.Global().Get("OrbitControls")
	}
	if !ctor.Truthy() {
		if controlsURL == "" {
			return nil, fmt.Errorf("%w: OrbitControls", ErrNotLoaded)
		}
		module, err := Await(ctx, Import(controlsURL))
		if err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", controlsURL, err)
		}
		ctor = module.Get("OrbitControls")
		if !ctor.Truthy() {
			return nil, fmt.Errorf("%w: %s does not export OrbitControls", ErrNotLoaded, controlsURL)
		}
	}
	return &Library{
		three:         three,
		orbitControls: ctor,
	}, nil
}

func (l *Library) NewScene() viewer.Scene {
	return &scene{goObject{l.three.Get("Scene").New()}}
}

func (l *Library) NewPerspectiveCamera(fov dprec.Angle, aspect, near, far float64) viewer.Camera {
	return &camera{object3D{goObject{
		l.three.Get("PerspectiveCamera").New(fov.Degrees(), aspect, near, far),
	}}}
}

func (l *Library) NewRenderer() viewer.Renderer {
	r := l.three.Get("WebGLRenderer").New(map[string]any{
		"antialias": true,
	})
	r.Call("setPixelRatio", window.Get("devicePixelRatio"))
	return &renderer{goObject{r}}
}

func (l *Library) NewBoxGeometry(options viewer.BoxGeometry) viewer.Geometry {
	args := []any{options.Width, options.Height, options.Depth}
	if options.WidthSegments > 0 || options.HeightSegments > 0 || options.DepthSegments > 0 {
		args = append(args,
			max(options.WidthSegments, 1),
			max(options.HeightSegments, 1),
			max(options.DepthSegments, 1),
		)
	}
	return &disposable{goObject{l.three.Get("BoxGeometry").New(args...)}}
}

func (l *Library) NewPhongMaterial(options viewer.PhongMaterial) viewer.Material {
	return &disposable{goObject{l.three.Get("MeshPhongMaterial").New(map[string]any{
		"color":     int(options.Color),
		"wireframe": options.Wireframe,
	})}}
}

func (l *Library) NewMesh(geometry viewer.Geometry, material viewer.Material) viewer.Object {
	return &mesh{object3D{goObject{
		l.three.Get("Mesh").New(ref(geometry), ref(material)),
	}}}
}

func (l *Library) NewAmbientLight(color viewer.Color, intensity float64) viewer.Light {
	v := l.three.Get("AmbientLight").New(int(color), intensity)
	v.Set("castShadow", true)
	return &light{object3D{goObject{v}}}
}

func (l *Library) NewOrbitControls(cam viewer.Camera, element viewer.Element, options viewer.OrbitOptions) viewer.Controls {
	v := l.orbitControls.New(ref(cam), element.(js.Value))
	v.Set("enableDamping", options.EnableDamping)
	if options.DampingFactor > 0 {
		v.Set("dampingFactor", options.DampingFactor)
	}
	return &controls{goObject{v}}
}

type goObject struct {
	jsValue js.Value
}

func (g goObject) ref() js.Value {
	return g.jsValue
}

func ref(v any) js.Value {
	if r, ok := v.(interface{ ref() js.Value }); ok {
		return r.ref()
	}
	return js.Undefined()
}

// dispose calls dispose() when the THREE object has one; older builds
// lack it on lights.
func (g goObject) dispose() {
	if fn := g.jsValue.Get("dispose"); fn.Type() == js.TypeFunction {
		g.jsValue.Call("dispose")
	}
}

type scene struct {
	goObject
}

func (s *scene) Add(node viewer.Node) {
	s.jsValue.Call("add", ref(node))
}

func (s *scene) Remove(node viewer.Node) {
	s.jsValue.Call("remove", ref(node))
}

type object3D struct {
	goObject
}

func (o *object3D) SetTag(tag string) {
	o.jsValue.Set("name", tag)
	o.jsValue.Get("userData").Set("generation", tag)
}

func (o *object3D) Position() dprec.Vec3 {
	return vec3(o.jsValue.Get("position"))
}

func (o *object3D) SetPosition(position dprec.Vec3) {
	o.jsValue.Get("position").Call("set", position.X, position.Y, position.Z)
}

type mesh struct {
	object3D
}

func (m *mesh) Rotation() dprec.Vec3 {
	return vec3(m.jsValue.Get("rotation"))
}

func (m *mesh) SetRotation(rotation dprec.Vec3) {
	m.jsValue.Get("rotation").Call("set", rotation.X, rotation.Y, rotation.Z)
}

type light struct {
	object3D
}

func (l *light) Dispose() {
	l.dispose()
}

type camera struct {
	object3D
}

func (c *camera) Aspect() float64 {
	return c.jsValue.Get("aspect").Float()
}

func (c *camera) SetAspect(aspect float64) {
	c.jsValue.Set("aspect", aspect)
}

func (c *camera) UpdateProjectionMatrix() {
	c.jsValue.Call("updateProjectionMatrix")
}

type renderer struct {
	goObject
}

func (r *renderer) SetSize(width, height float64) {
	r.jsValue.Call("setSize", width, height)
}

func (r *renderer) Element() viewer.Element {
	return r.jsValue.Get("domElement")
}

func (r *renderer) Render(s viewer.Scene, c viewer.Camera) {
	r.jsValue.Call("render", ref(s), ref(c))
}

type controls struct {
	goObject
}

func (c *controls) Update() {
	c.jsValue.Call("update")
}

type disposable struct {
	goObject
}

func (d *disposable) Dispose() {
	d.dispose()
}

func vec3(v js.Value) dprec.Vec3 {
	return dprec.NewVec3(v.Get("x").Float(), v.Get("y").Float(), v.Get("z").Float())
}

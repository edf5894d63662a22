package viewer

import "github.com/mokiat/gomath/dprec"

type fakeHost struct {
	width, height float64
	body          []Element
	input         *fakeInput
	resize        []func()
	frames        []func()
	log           *[]string
}

func newFakeHost(width, height float64) *fakeHost {
	return &fakeHost{width: width, height: height}
}

func (h *fakeHost) Viewport() (float64, float64) {
	return h.width, h.height
}

func (h *fakeHost) AppendToBody(element Element) {
	h.body = append(h.body, element)
}

func (h *fakeHost) ColorInput() (ColorInput, bool) {
	if h.input == nil {
		return nil, false
	}
	return h.input, true
}

func (h *fakeHost) OnResize(handler func()) {
	h.resize = append(h.resize, handler)
}

func (h *fakeHost) RequestAnimationFrame(callback func()) {
	h.frames = append(h.frames, callback)
	if h.log != nil {
		*h.log = append(*h.log, "frame")
	}
}

// step runs the callbacks that were pending before the call.
func (h *fakeHost) step() {
	pending := h.frames
	h.frames = nil
	for _, cb := range pending {
		cb()
	}
}

func (h *fakeHost) fireResize(width, height float64) {
	h.width, h.height = width, height
	for _, handler := range h.resize {
		handler()
	}
}

type fakeInput struct {
	value    string
	handlers []func()
}

func (i *fakeInput) Value() string {
	return i.value
}

func (i *fakeInput) OnChange(handler func()) {
	i.handlers = append(i.handlers, handler)
}

func (i *fakeInput) change(value string) {
	i.value = value
	for _, handler := range i.handlers {
		handler()
	}
}

type fakeLibrary struct {
	scene      *fakeScene
	camera     *fakeCamera
	renderer   *fakeRenderer
	controls   []*fakeControls
	geometries []*fakeGeometry
	materials  []*fakeMaterial
	meshes     []*fakeMesh
	lights     []*fakeLight
	log        *[]string
}

func newFakeLibrary() *fakeLibrary {
	log := []string{}
	return &fakeLibrary{log: &log}
}

func (l *fakeLibrary) NewScene() Scene {
	l.scene = &fakeScene{}
	return l.scene
}

func (l *fakeLibrary) NewPerspectiveCamera(fov dprec.Angle, aspect, near, far float64) Camera {
	l.camera = &fakeCamera{fov: fov, aspect: aspect, near: near, far: far}
	return l.camera
}

func (l *fakeLibrary) NewRenderer() Renderer {
	l.renderer = &fakeRenderer{element: &struct{ name string }{"canvas"}, log: l.log}
	return l.renderer
}

func (l *fakeLibrary) NewBoxGeometry(options BoxGeometry) Geometry {
	g := &fakeGeometry{options: options}
	l.geometries = append(l.geometries, g)
	return g
}

func (l *fakeLibrary) NewPhongMaterial(options PhongMaterial) Material {
	m := &fakeMaterial{options: options}
	l.materials = append(l.materials, m)
	return m
}

func (l *fakeLibrary) NewMesh(geometry Geometry, material Material) Object {
	m := &fakeMesh{geometry: geometry.(*fakeGeometry), material: material.(*fakeMaterial)}
	l.meshes = append(l.meshes, m)
	return m
}

func (l *fakeLibrary) NewAmbientLight(color Color, intensity float64) Light {
	light := &fakeLight{color: color, intensity: intensity}
	l.lights = append(l.lights, light)
	return light
}

func (l *fakeLibrary) NewOrbitControls(camera Camera, element Element, options OrbitOptions) Controls {
	c := &fakeControls{camera: camera, element: element, options: options, log: l.log}
	l.controls = append(l.controls, c)
	return c
}

func (l *fakeLibrary) lastMesh() *fakeMesh {
	if len(l.meshes) == 0 {
		return nil
	}
	return l.meshes[len(l.meshes)-1]
}

type fakeScene struct {
	nodes []Node
}

func (s *fakeScene) Add(node Node) {
	s.nodes = append(s.nodes, node)
}

func (s *fakeScene) Remove(node Node) {
	for i, n := range s.nodes {
		if n == node {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

func (s *fakeScene) count() (lights, meshes int) {
	for _, n := range s.nodes {
		switch n.(type) {
		case *fakeLight:
			lights++
		case *fakeMesh:
			meshes++
		}
	}
	return lights, meshes
}

type fakeNode struct {
	tag      string
	position dprec.Vec3
}

func (n *fakeNode) SetTag(tag string) {
	n.tag = tag
}

func (n *fakeNode) Position() dprec.Vec3 {
	return n.position
}

func (n *fakeNode) SetPosition(position dprec.Vec3) {
	n.position = position
}

type fakeCamera struct {
	fakeNode
	fov         dprec.Angle
	aspect      float64
	near, far   float64
	projections int
}

func (c *fakeCamera) Aspect() float64 {
	return c.aspect
}

func (c *fakeCamera) SetAspect(aspect float64) {
	c.aspect = aspect
}

func (c *fakeCamera) UpdateProjectionMatrix() {
	c.projections++
}

type fakeRenderer struct {
	element       Element
	width, height float64
	renders       int
	log           *[]string
}

func (r *fakeRenderer) SetSize(width, height float64) {
	r.width, r.height = width, height
}

func (r *fakeRenderer) Element() Element {
	return r.element
}

func (r *fakeRenderer) Render(scene Scene, camera Camera) {
	r.renders++
	*r.log = append(*r.log, "render")
}

type fakeControls struct {
	camera  Camera
	element Element
	options OrbitOptions
	updates int
	log     *[]string
}

func (c *fakeControls) Update() {
	c.updates++
	*c.log = append(*c.log, "update")
}

type fakeGeometry struct {
	options  BoxGeometry
	disposed bool
}

func (g *fakeGeometry) Dispose() {
	g.disposed = true
}

type fakeMaterial struct {
	options  PhongMaterial
	disposed bool
}

func (m *fakeMaterial) Dispose() {
	m.disposed = true
}

type fakeMesh struct {
	fakeNode
	rotation dprec.Vec3
	geometry *fakeGeometry
	material *fakeMaterial
}

func (m *fakeMesh) Rotation() dprec.Vec3 {
	return m.rotation
}

func (m *fakeMesh) SetRotation(rotation dprec.Vec3) {
	m.rotation = rotation
}

type fakeLight struct {
	fakeNode
	color     Color
	intensity float64
	disposed  bool
}

func (l *fakeLight) Dispose() {
	l.disposed = true
}

package viewer

import "github.com/mokiat/gomath/dprec"

// Library is the part of a 3D rendering library that the SceneController
// drives. Projection, lighting and rasterization stay behind it.
type Library interface {
	NewScene() Scene
	NewPerspectiveCamera(fov dprec.Angle, aspect, near, far float64) Camera
	NewRenderer() Renderer
	NewBoxGeometry(options BoxGeometry) Geometry
	NewPhongMaterial(options PhongMaterial) Material
	NewMesh(geometry Geometry, material Material) Object
	NewAmbientLight(color Color, intensity float64) Light
	NewOrbitControls(camera Camera, element Element, options OrbitOptions) Controls
}

// Element is an opaque handle to a host surface, such as a canvas.
type Element any

type Scene interface {
	Add(node Node)
	Remove(node Node)
}

type Node interface {
	// SetTag labels the entity with the scene generation that owns it.
	SetTag(tag string)
	Position() dprec.Vec3
	SetPosition(position dprec.Vec3)
}

type Object interface {
	Node
	Rotation() dprec.Vec3
	SetRotation(rotation dprec.Vec3)
}

type Light interface {
	Node
	Dispose()
}

type Camera interface {
	Node
	Aspect() float64
	SetAspect(aspect float64)
	UpdateProjectionMatrix()
}

type Renderer interface {
	SetSize(width, height float64)
	Element() Element
	Render(scene Scene, camera Camera)
}

// Controls translates pointer input into camera motion. Update advances
// damping and applies pending input.
type Controls interface {
	Update()
}

type Geometry interface {
	Dispose()
}

type Material interface {
	Dispose()
}

// BoxGeometry describes a box. Zero segment counts leave the library
// default in place.
type BoxGeometry struct {
	Width          float64
	Height         float64
	Depth          float64
	WidthSegments  int
	HeightSegments int
	DepthSegments  int
}

type PhongMaterial struct {
	Color     Color
	Wireframe bool
}

type OrbitOptions struct {
	EnableDamping bool
	DampingFactor float64
}

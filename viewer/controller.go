package viewer

import (
	"log/slog"

	"github.com/mokiat/gomath/dprec"
)

// SceneController owns a scene with one box mesh, a perspective camera,
// a renderer surface and orbit controls, and keeps them drawn every frame.
type SceneController struct {
	cfg    Config
	host   Host
	lib    Library
	logger *slog.Logger

	scene    Scene
	camera   Camera
	renderer Renderer
	object   Object
	controls Controls

	objectColor Color
	colorInput  ColorInput

	contents contents

	attached  bool
	resizing  bool
	animating bool
	frames    uint64
}

func New(host Host, lib Library, cfg Config) *SceneController {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	width, height := host.Viewport()
	c := &SceneController{
		cfg:         cfg,
		host:        host,
		lib:         lib,
		logger:      logger.With(slog.String("component", "viewer")),
		scene:       lib.NewScene(),
		camera:      lib.NewPerspectiveCamera(cfg.FoV, aspectOf(width, height), cfg.Near, cfg.Far),
		renderer:    lib.NewRenderer(),
		objectColor: cfg.ObjectColor,
	}
	if input, ok := host.ColorInput(); ok {
		c.colorInput = input
		c.changeColorEvent()
	}
	return c
}

// Start configures the scene and begins rendering. Calling it again
// rebuilds the light and mesh with the current color without duplicating
// them; the surface, resize handler and render loop are set up only once.
func (c *SceneController) Start() {
	generation := c.contents.next()

	c.SetCameraPosition(c.cfg.CameraPosition)
	c.setRenderer()
	c.SetLighting(c.cfg.LightColor, c.cfg.LightIntensity)
	c.SetOrbitControls()
	c.CreateObject(c.cfg.Box, PhongMaterial{
		Color:     c.objectColor,
		Wireframe: c.cfg.Wireframe,
	})
	removed := c.contents.prune(c.scene)
	c.logger.Debug("Configured scene",
		slog.String("generation", generation.String()),
		slog.Int("removed", removed),
		slog.String("color", c.objectColor.Hex()),
	)
	c.windowResizeHandler()
	c.animate()
}

func (c *SceneController) changeColorEvent() {
	c.colorInput.OnChange(func() {
		value := c.colorInput.Value()
		color, err := ParseColor(value)
		if err != nil {
			c.logger.Warn("Ignoring color change",
				slog.String("value", value),
				slog.String("error", err.Error()),
			)
			return
		}
		c.logger.Info("Color changed", slog.String("color", color.Hex()))
		c.objectColor = color
		c.Start()
	})
}

func (c *SceneController) setRenderer() {
	c.renderer.SetSize(c.host.Viewport())
	if c.attached {
		return
	}
	c.host.AppendToBody(c.renderer.Element())
	c.attached = true
}

// SetCameraPosition changes only the axes specified in position.
func (c *SceneController) SetCameraPosition(position Vec3Update) {
	if position.IsEmpty() {
		return
	}
	c.camera.SetPosition(position.Set(c.camera.Position()))
}

// SetLighting adds an ambient light. Its position is carried along for
// callers that swap in a positional light; ambient light ignores it.
func (c *SceneController) SetLighting(color Color, intensity float64) {
	light := c.lib.NewAmbientLight(color, intensity)
	light.SetPosition(c.cfg.LightPosition)
	c.contents.add(c.scene, light, light)
}

func (c *SceneController) SetOrbitControls() {
	if c.controls != nil {
		return
	}
	c.controls = c.lib.NewOrbitControls(c.camera, c.renderer.Element(), c.cfg.Orbit)
}

func (c *SceneController) CreateObject(geometry BoxGeometry, material PhongMaterial) {
	geo := c.lib.NewBoxGeometry(geometry)
	mat := c.lib.NewPhongMaterial(material)
	c.object = c.lib.NewMesh(geo, mat)
	c.contents.add(c.scene, c.object, geo, mat)
}

// SetRotation increments the mesh rotation on the specified axes.
func (c *SceneController) SetRotation(rotation Vec3Update) {
	if c.object == nil || rotation.IsEmpty() {
		return
	}
	c.object.SetRotation(rotation.Add(c.object.Rotation()))
}

func (c *SceneController) animate() {
	if c.animating {
		return
	}
	c.animating = true
	c.tick()
}

func (c *SceneController) tick() {
	c.host.RequestAnimationFrame(c.tick)
	c.frames++
	c.controls.Update()
	c.render()
}

func (c *SceneController) render() {
	c.renderer.Render(c.scene, c.camera)
}

func (c *SceneController) windowResizeHandler() {
	if c.resizing {
		return
	}
	c.resizing = true
	c.host.OnResize(func() {
		c.onWindowResize()
	})
}

func (c *SceneController) onWindowResize() {
	width, height := c.host.Viewport()
	if width <= 0 || height <= 0 {
		c.logger.Warn("Skipping resize to empty viewport",
			slog.Float64("width", width),
			slog.Float64("height", height),
		)
		return
	}
	c.camera.SetAspect(width / height)
	c.camera.UpdateProjectionMatrix()
	c.renderer.SetSize(width, height)
	c.render()
}

func (c *SceneController) Camera() Camera {
	return c.camera
}

func (c *SceneController) CameraPosition() dprec.Vec3 {
	return c.camera.Position()
}

func (c *SceneController) Object() Object {
	return c.object
}

// Generation returns the tag of the current scene contents.
func (c *SceneController) Generation() string {
	return c.contents.generation.String()
}

func (c *SceneController) ObjectColor() Color {
	return c.objectColor
}

// ColorInputBound reports whether a color input drives this controller.
func (c *SceneController) ColorInputBound() bool {
	return c.colorInput != nil
}

// Frames returns the number of animation frames drawn so far.
func (c *SceneController) Frames() uint64 {
	return c.frames
}

func aspectOf(width, height float64) float64 {
	if height <= 0 {
		return 1
	}
	return width / height
}

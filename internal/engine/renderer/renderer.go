// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/egghunt/internal/engine/lighting"
	"github.com/Faultbox/egghunt/internal/engine/renderer/shaders"
	"github.com/Faultbox/egghunt/internal/engine/shader"
	"github.com/Faultbox/egghunt/internal/logger"
	"github.com/Faultbox/egghunt/internal/scene"
)

// Vertex attribute locations, matching the layout qualifiers in scene.vert.
const (
	attribPosition = 0
	attribColor    = 1
	attribNormal   = 2
)

// Uniform names in the scene program.
const (
	uniformPerspective = "uPerspectiveTransform"
	uniformView        = "uViewTransform"
	uniformModel       = "uModelTransform"
	uniformLights      = "uLightPositions"
	uniformAmbient     = "uAmbient"
	uniformDiffuse     = "uDiffuse"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// meshBuffers holds the GPU copy of one mesh.
type meshBuffers struct {
	vao       uint32
	positions uint32
	colors    uint32
	normals   uint32
	count     int32

	revision uint64
	frame    uint64
}

// Renderer draws scene meshes with OpenGL. It implements scene.Drawer.
type Renderer struct {
	config Config

	program        uint32
	locPerspective int32
	locView        int32
	locModel       int32

	buffers map[*scene.Mesh]*meshBuffers
	frame   uint64
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, rig lighting.Rig) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		buffers: make(map[*scene.Mesh]*meshBuffers),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program

	locs, err := shader.Uniforms(program,
		uniformPerspective, uniformView, uniformModel,
		uniformLights, uniformAmbient, uniformDiffuse,
	)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	r.locPerspective = locs[uniformPerspective]
	r.locView = locs[uniformView]
	r.locModel = locs[uniformModel]

	// Lights never move, so they are set once.
	positions := rig.Positions()
	gl.UseProgram(program)
	gl.Uniform3fv(locs[uniformLights], lighting.LightCount, &positions[0])
	gl.Uniform1f(locs[uniformAmbient], rig.Ambient)
	gl.Uniform1f(locs[uniformDiffuse], rig.Diffuse)

	logger.Debug("shader program created", zap.Uint32("program", program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.buffers)))
	for m, b := range r.buffers {
		b.release()
		delete(r.buffers, m)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// BeginFrame clears the color and depth buffers.
func (r *Renderer) BeginFrame() {
	r.frame++
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// Draw renders one mesh, uploading its vertex data on first use and
// refreshing its colors when the mesh revision changes.
func (r *Renderer) Draw(m *scene.Mesh, projection, view, model mgl32.Mat4) {
	b, ok := r.buffers[m]
	if !ok {
		b = upload(m)
		r.buffers[m] = b
		logger.Debug("mesh uploaded",
			zap.String("mesh", m.Name),
			zap.Int32("vertices", b.count),
		)
	} else if b.revision != m.Revision() {
		b.refreshColors(m)
	}
	b.frame = r.frame

	gl.UniformMatrix4fv(r.locPerspective, 1, false, &projection[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

// EndFrame releases buffers of meshes that were not drawn this frame.
// Collected eggs and their shadows leave the scene this way.
func (r *Renderer) EndFrame() {
	for m, b := range r.buffers {
		if b.frame == r.frame {
			continue
		}
		b.release()
		delete(r.buffers, m)
		logger.Debug("mesh released", zap.String("mesh", m.Name))
	}
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
// Call it after drawing and before swapping buffers.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Meshes returns the number of meshes resident on the GPU.
func (r *Renderer) Meshes() int {
	return len(r.buffers)
}

func upload(m *scene.Mesh) *meshBuffers {
	b := &meshBuffers{
		count:    int32(m.VertexCount()),
		revision: m.Revision(),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	b.positions = attribute(attribPosition, m.Positions())
	b.colors = attribute(attribColor, m.Colors())
	b.normals = attribute(attribNormal, m.Normals())
	gl.BindVertexArray(0)

	return b
}

// attribute creates a buffer holding data and binds it to a vec3 attribute
// of the currently bound VAO.
func attribute(location uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(location)
	return vbo
}

func (b *meshBuffers) refreshColors(m *scene.Mesh) {
	colors := m.Colors()
	gl.BindBuffer(gl.ARRAY_BUFFER, b.colors)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*4, gl.Ptr(colors))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.revision = m.Revision()
	logger.Debug("mesh colors refreshed", zap.String("mesh", m.Name), zap.Uint64("revision", b.revision))
}

func (b *meshBuffers) release() {
	vbos := []uint32{b.positions, b.colors, b.normals}
	gl.DeleteBuffers(int32(len(vbos)), &vbos[0])
	gl.DeleteVertexArrays(1, &b.vao)
}

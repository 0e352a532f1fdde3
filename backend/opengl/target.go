// Package opengl provides an OpenGL 4.1 backend for the GUI package: a
// streaming texture the GUI draws into, shown as a window-sized quad, and an
// event queue fed by GLFW callbacks.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pixelgui"
)

// ErrLocked is returned when the target is locked twice or resized while
// locked.
var ErrLocked = errors.New("opengl: target is locked")

// Target implements gui.PixelTarget with a CPU pixel buffer. Present uploads
// the buffer to a texture if it was unlocked since the last upload and draws
// it over the window.
type Target struct {
	window *glfw.Window

	shader  uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	projLoc int32
	texLoc  int32

	pix    []byte
	width  int
	height int
	locked bool
	dirty  bool
}

// quadVertex is one corner of the screen quad.
type quadVertex struct {
	Pos      [2]float32
	TexCoord [2]float32
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D frame;

void main() {
    FragColor = vec4(texture(frame, TexCoord).rgb, 1.0);
}
` + "\x00"

// NewTarget creates a width x height target that presents to window. The
// window's GL context must be current and gl.Init must have been called.
func NewTarget(window *glfw.Window, width, height int) (*Target, error) {
	t := &Target{window: window}

	var err error
	t.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	t.projLoc = gl.GetUniformLocation(t.shader, gl.Str("projection\x00"))
	t.texLoc = gl.GetUniformLocation(t.shader, gl.Str("frame\x00"))

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)

	stride := int32(unsafe.Sizeof(quadVertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(quadVertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	gl.GenTextures(1, &t.tex)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if err := t.Resize(width, height); err != nil {
		t.Delete()
		return nil, err
	}

	slog.Info("opengl target created",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"width", width,
		"height", height)

	return t, nil
}

// Size returns the texture size in pixels.
func (t *Target) Size() (width, height int) {
	return t.width, t.height
}

// Lock implements gui.PixelTarget.
func (t *Target) Lock() (gui.PixelBuffer, error) {
	if t.locked {
		return gui.PixelBuffer{}, ErrLocked
	}
	t.locked = true
	return gui.PixelBuffer{
		Pix:    t.pix,
		Width:  t.width,
		Height: t.height,
		Stride: t.width * 4,
	}, nil
}

// Unlock implements gui.PixelTarget. The buffer is uploaded by the next
// Present.
func (t *Target) Unlock() {
	t.locked = false
	t.dirty = true
}

// Resize implements gui.PixelTarget. It reallocates the buffer, the texture
// storage and the quad.
func (t *Target) Resize(width, height int) error {
	if t.locked {
		return ErrLocked
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("opengl: invalid size %dx%d", width, height)
	}

	t.width, t.height = width, height
	t.pix = make([]byte, width*height*4)

	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.pix))

	// Quad in pixel space, top-left origin.
	w, h := float32(width), float32(height)
	quad := [6]quadVertex{
		{Pos: [2]float32{0, 0}, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{w, 0}, TexCoord: [2]float32{1, 0}},
		{Pos: [2]float32{w, h}, TexCoord: [2]float32{1, 1}},
		{Pos: [2]float32{0, 0}, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{w, h}, TexCoord: [2]float32{1, 1}},
		{Pos: [2]float32{0, h}, TexCoord: [2]float32{0, 1}},
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*int(unsafe.Sizeof(quadVertex{})), gl.Ptr(&quad[0]), gl.STATIC_DRAW)

	t.dirty = false
	return nil
}

// Present implements gui.PixelTarget: it draws the texture over the whole
// framebuffer and swaps buffers.
func (t *Target) Present() error {
	if t.dirty {
		gl.BindTexture(gl.TEXTURE_2D, t.tex)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.width), int32(t.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.pix))
		t.dirty = false
	}

	fbw, fbh := t.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(t.shader)
	proj := orthoMatrix(0, float32(t.width), float32(t.height), 0, -1, 1)
	gl.UniformMatrix4fv(t.projLoc, 1, false, &proj[0])
	gl.Uniform1i(t.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: draw failed with error 0x%x", code)
	}

	t.window.SwapBuffers()
	return nil
}

// Delete releases OpenGL resources.
func (t *Target) Delete() {
	gl.DeleteProgram(t.shader)
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteTextures(1, &t.tex)
	t.pix = nil
}

func compileShader(kind uint32, name, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", name, string(log))
	}
	return shader, nil
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

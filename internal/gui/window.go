package gui

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window that blits an RGBA framebuffer to the screen
// through a single OpenGL texture.
type Window struct {
	Window  *glfw.Window
	texture uint32
}

func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	gl.Enable(gl.TEXTURE_2D)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Window{Window: window, texture: texture}, nil
}

func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *Window) ProcessEvents() {
	glfw.PollEvents()
}

// DrawFrame uploads the image and draws it as a fullscreen quad.
func (w *Window) DrawFrame(img *image.RGBA) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	size := img.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	fw, fh := w.Window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))

	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	w.Window.SwapBuffers()
}

func (w *Window) Terminate() {
	glfw.Terminate()
}

package main

import (
	"flag"
	"image"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gordonklaus/portaudio"
	"golang.org/x/image/draw"

	"github.com/kaishuu0123/famines/famines"
	"github.com/kaishuu0123/famines/internal/audio"
	"github.com/kaishuu0123/famines/internal/gui"
)

var (
	scale  = flag.Int("scale", 2, "window scale factor")
	strict = flag.Bool("strict", false, "panic on jam opcodes instead of treating them as NOPs")
)

func init() {
	// OpenGL calls must stay on one thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalln("usage: famines [flags] rom.nes")
	}

	console, err := famines.NewConsole(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer console.Close()
	console.SetStrictOpcodes(*strict)

	portaudio.Initialize()
	defer portaudio.Terminate()

	audioOut := audio.NewAudio(console.SampleQueue())
	if err := audioOut.Start(); err != nil {
		log.Fatalln(err)
	}
	defer audioOut.Stop()
	console.SetAudioSampleRate(audioOut.SampleRate)

	width := famines.ScreenWidth * *scale
	height := famines.ScreenHeight * *scale
	window, err := gui.NewWindow("famines", width, height)
	if err != nil {
		log.Fatalln(err)
	}
	defer window.Terminate()

	screenImage := image.NewRGBA(image.Rect(0, 0, width, height))

	prevTimestamp := glfw.GetTime()
	for !window.ShouldClose() {
		window.ProcessEvents()

		console.SetButtons1(readController1(window.Window))
		console.SetButtons2(readController2(window.Window))

		timestamp := glfw.GetTime()
		dt := timestamp - prevTimestamp
		prevTimestamp = timestamp
		if dt > 1 {
			dt = 0
		}
		console.StepSeconds(dt)

		buffer := console.Buffer()
		draw.NearestNeighbor.Scale(screenImage, screenImage.Bounds(), buffer, buffer.Bounds(), draw.Src, nil)
		window.DrawFrame(screenImage)
	}
}

func readController1(window *glfw.Window) [8]bool {
	var result [8]bool
	result[famines.ButtonA] = window.GetKey(glfw.KeyZ) == glfw.Press
	result[famines.ButtonB] = window.GetKey(glfw.KeyX) == glfw.Press
	result[famines.ButtonSelect] = window.GetKey(glfw.KeyRightShift) == glfw.Press
	result[famines.ButtonStart] = window.GetKey(glfw.KeyEnter) == glfw.Press
	result[famines.ButtonUp] = window.GetKey(glfw.KeyUp) == glfw.Press
	result[famines.ButtonDown] = window.GetKey(glfw.KeyDown) == glfw.Press
	result[famines.ButtonLeft] = window.GetKey(glfw.KeyLeft) == glfw.Press
	result[famines.ButtonRight] = window.GetKey(glfw.KeyRight) == glfw.Press
	return result
}

func readController2(window *glfw.Window) [8]bool {
	var result [8]bool
	result[famines.ButtonA] = window.GetKey(glfw.KeyA) == glfw.Press
	result[famines.ButtonB] = window.GetKey(glfw.KeyS) == glfw.Press
	result[famines.ButtonSelect] = window.GetKey(glfw.KeyLeftShift) == glfw.Press
	result[famines.ButtonStart] = window.GetKey(glfw.KeyE) == glfw.Press
	result[famines.ButtonUp] = window.GetKey(glfw.KeyI) == glfw.Press
	result[famines.ButtonDown] = window.GetKey(glfw.KeyK) == glfw.Press
	result[famines.ButtonLeft] = window.GetKey(glfw.KeyJ) == glfw.Press
	result[famines.ButtonRight] = window.GetKey(glfw.KeyL) == glfw.Press
	return result
}

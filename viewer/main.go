// Command viewer opens a window and draws two primitives through the
// appearance pipeline: an opaque closed cube wearing a stripe material and a
// translucent color-material quad floating in front of it.
package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ududsha/cesium"
	"github.com/ududsha/cesium/gpu"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := cesium.NewDefaultLogger("viewer", *debug)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(1280, 720, "Appearance Viewer", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	dev, err := gpu.NewDevice(window, gpu.Options{Logger: logger})
	if err != nil {
		panic(err)
	}
	defer dev.Release()

	scene, err := buildScene(dev)
	if err != nil {
		panic(err)
	}
	defer scene.release()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if err := dev.Resize(width, height); err != nil {
			logger.Errorf("resize: %v", err)
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		if err := scene.frame(dev, window); err != nil {
			panic(err)
		}
	}
}

// Example is the widget demo: a counter button, a checkbox, a theme switch
// and three sliders mixing a color sample.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                      # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/                 # run in a window
//	go run ./example/ -config t.yaml  # with backend: terminal, run in the terminal
//
// Press q or Escape to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pixelgui"
	"github.com/go-theft-auto/pixelgui/backend/opengl"
	"github.com/go-theft-auto/pixelgui/backend/terminal"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gui.SetVerbose(cfg.Verbose || *verbose)

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	ctx := gui.NewContext()
	d := newDemo(ctx, cfg.Theme)

	switch cfg.Backend {
	case backendTerminal:
		return runTerminal(cfg, ctx, d)
	default:
		return runWindow(cfg, ctx, d)
	}
}

// frame runs one frame and reports whether the demo should keep going.
func frame(ctx *gui.Context, target gui.PixelTarget, d *demo) (bool, error) {
	err := ctx.RunFrame(target, d.draw)
	if errors.Is(err, errQuit) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("gui frame: %w", err)
	}
	return true, nil
}

func runWindow(cfg Config, ctx *gui.Context, d *demo) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetSize()
	target, err := opengl.NewTarget(window, w, h)
	if err != nil {
		return fmt.Errorf("gui target: %w", err)
	}
	defer target.Delete()

	events := opengl.NewEventQueue(window)
	period := 1 / float64(cfg.FPS)

	// Main loop.
	for {
		for _, ev := range events.Wait(period) {
			if ctx.ProcessEvent(ev) == gui.ActionQuit {
				return nil
			}
		}

		more, err := frame(ctx, target, d)
		if !more {
			return err
		}
	}
}

func runTerminal(cfg Config, ctx *gui.Context, d *demo) error {
	target, err := terminal.Open()
	if err != nil {
		return err
	}
	defer target.Close()

	// The terminal owns stderr while the demo runs.
	slog.SetDefault(slog.New(slog.DiscardHandler))
	ctx.SetLogger(slog.New(slog.DiscardHandler))

	w, h := target.Size()
	ctx.ProcessEvent(gui.EventResize{Width: w, Height: h})

	events := target.Events()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ctx.ProcessEvent(ev) == gui.ActionQuit {
				return nil
			}
		case <-ticker.C:
			more, err := frame(ctx, target, d)
			if !more {
				return err
			}
		}
	}
}

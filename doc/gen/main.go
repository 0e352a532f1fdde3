// Command gen renders every widget with sample data into an in-memory
// target and saves PNG screenshots to doc/imgs/. It needs no window.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -out /tmp/imgs
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	gui "github.com/go-theft-auto/pixelgui"
)

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string           // filename without extension
	width  int              // image width
	height int              // image height
	input  []gui.Event      // events processed before the frame
	draw   func(*gui.Frame) // widget drawing function
}

// Pointer states shared by several screenshots.
var noInput []gui.Event

func hoverAt(x, y float32) []gui.Event {
	return []gui.Event{gui.EventPointerMove{X: x, Y: y}}
}

func pressAt(x, y float32) []gui.Event {
	return []gui.Event{
		gui.EventPointerMove{X: x, Y: y},
		gui.EventButtonDown{Button: gui.MouseButtonLeft},
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	themes := []string{"light", "dark"}

	for _, themeName := range themes {
		theme, err := gui.ThemeByName(themeName)
		if err != nil {
			return err
		}
		for _, s := range shots {
			name := s.name + "-" + themeName
			if err := capture(theme, s, filepath.Join(outDir, name+".png")); err != nil {
				return fmt.Errorf("capture %s: %w", name, err)
			}
			fmt.Printf("  %s.png (%dx%d)\n", name, s.width, s.height)
		}
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots)*len(themes), outDir)
	return nil
}

func capture(theme gui.Theme, s screenshot, path string) error {
	// Fresh context per screenshot to avoid state leaking between captures.
	ctx := gui.NewContext(gui.WithTheme(theme))
	target := gui.NewImageTarget(s.width, s.height)

	for _, ev := range s.input {
		ctx.ProcessEvent(ev)
	}

	err := ctx.RunFrame(target, func(f *gui.Frame) error {
		s.draw(f)
		return nil
	})
	if err != nil {
		return err
	}

	return savePNG(target.Snapshot(), path)
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	radioLabels := []string{"light", "dark", "system"}

	return []screenshot{
		{
			name: "label", width: 160, height: 40, input: noInput,
			draw: func(f *gui.Frame) { f.Label(0, 0, "Pressed 3 times") },
		},
		{
			name: "button", width: 80, height: 50, input: noInput,
			draw: func(f *gui.Frame) { f.Button(10, 10, "Test") },
		},
		{
			name: "button-hover", width: 80, height: 50, input: hoverAt(20, 20),
			draw: func(f *gui.Frame) { f.Button(10, 10, "Test") },
		},
		{
			name: "button-pressed", width: 80, height: 50, input: pressAt(20, 20),
			draw: func(f *gui.Frame) { f.Button(10, 10, "Test") },
		},
		{
			name: "checkbox", width: 120, height: 40, input: noInput,
			draw: func(f *gui.Frame) {
				checked := false
				f.Checkbox(10, 10, "Checkbox", &checked)
			},
		},
		{
			name: "checkbox-checked", width: 120, height: 40, input: hoverAt(15, 14),
			draw: func(f *gui.Frame) {
				checked := true
				f.Checkbox(10, 10, "Checkbox", &checked)
			},
		},
		{
			name: "radiogroup", width: 120, height: 80, input: hoverAt(30, 41),
			draw: func(f *gui.Frame) {
				selected := 1
				f.RadioGroup(10, 10, radioLabels, &selected)
			},
		},
		{
			name: "slider", width: 300, height: 40, input: noInput,
			draw: func(f *gui.Frame) {
				value := 160
				f.Slider(10, 10, &value)
			},
		},
		{
			name: "colorsample", width: 80, height: 80, input: noInput,
			draw: func(f *gui.Frame) {
				f.ColorSample(10, 10, 60, 60, gui.RGB(0xd3, 0x36, 0x82))
			},
		},
	}
}

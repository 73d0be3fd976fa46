// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/palette"
	"cogentcore.org/colorpicker/picker"
	"cogentcore.org/colorpicker/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// game hosts a picker in an ebiten window, delivering input events
// and frame ticks to it.
type game struct {
	picker   *picker.Picker
	renderer *render.Renderer
	layout   render.Layout

	// frame is the composed window contents, which the eyedropper samples.
	frame   *image.RGBA
	sampler *picker.ImageSampler
	screen  *ebiten.Image
	dirty   bool

	// press is the part under the pointer when the primary button was pressed.
	press render.Hit

	// posted are functions from other goroutines to run in Update.
	posted palette.Queue
}

func newGame(opts *options) (*game, error) {
	g := &game{renderer: render.NewRenderer(), posted: palette.NewQueue(16)}
	p := picker.New().SetDeferred(opts.Deferred)
	g.picker = p
	if opts.Settings != "" {
		errors.Log(p.UseSettings(picker.NewFileSettings(opts.Settings)))
	}
	if opts.Shape != "" {
		var sh picker.Shapes
		if err := sh.UnmarshalText([]byte(opts.Shape)); err != nil {
			return nil, err
		}
		errors.Log(p.SetShape(sh))
	}
	if opts.Mode != "" {
		var m picker.Modes
		if err := m.UnmarshalText([]byte(opts.Mode)); err != nil {
			return nil, err
		}
		errors.Log(p.SetMode(m))
	}
	if opts.Palette != "" {
		if err := palette.Load(p, opts.Palette); err != nil {
			return nil, err
		}
	}
	var c colors.Color
	if err := c.UnmarshalText([]byte(opts.Color)); err != nil {
		return nil, err
	}
	p.SetColor(c).SetOldColor(c)
	p.OnChange(func(c colors.Color) {
		slog.Info("color changed", "color", colors.AsHex(c, c.A < 1))
	})

	g.renderer.OnRedraw = func(parts picker.Parts) { g.dirty = true }
	p.SetRenderer(g.renderer)
	g.layout = render.NewLayout(g.renderer.View, g.renderer)
	g.frame = image.NewRGBA(g.layout.Bounds)
	g.sampler = picker.NewImageSampler(g.frame)
	p.SetSampler(g.sampler)
	return g, nil
}

// post runs fun on the next Update. It is safe to call from any goroutine
// and never blocks.
func (g *game) post(fun func()) {
	g.posted.Post(fun)
}

func (g *game) Update() error {
	g.posted.Run()
	mx, my := ebiten.CursorPosition()
	pos := image.Pt(mx, my)
	g.sampler.Pointer = pos
	p := g.picker

	if p.Picking() {
		p.FrameTick()
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			p.PickPointer(picker.Left)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			p.PickPointer(picker.Right)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			p.CancelPicking()
		}
		return nil
	}

	g.keys()
	g.pointer(pos)
	return nil
}

func (g *game) keys() {
	p := g.picker
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		errors.Log(p.SetShape((p.Shape() + 1) % picker.ShapesN))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		errors.Log(p.SetMode((p.Mode() + 1) % picker.ModesN))
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		errors.Log(p.StartPicking())
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		p.AddCurrentPreset()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		p.SetDeferred(!p.IsDeferred())
		slog.Info("deferred mode", "on", p.IsDeferred())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		p.SetOldColor(p.Color()).SetDisplayOldColor(true)
	}
}

func target(part picker.Parts) picker.Targets {
	if part == picker.PartStrip {
		return picker.TargetStrip
	}
	return picker.TargetSurface
}

func (g *game) pointer(pos image.Point) {
	p := g.picker
	sw := g.renderer.SwatchSize
	h := g.layout.HitTest(pos, sw)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.press = h
		switch h.Part {
		case picker.PartSurface, picker.PartStrip:
			p.PointerDown(target(h.Part), picker.Left, h.Pos)
		case picker.PartSliders:
			p.SliderDragStarted()
			g.slide(pos)
		case picker.PartSample:
			p.SampleClicked(picker.Left, h.Pos)
		case picker.PartPresets:
			if cs := p.Presets(); h.Swatch < len(cs) {
				p.PresetPressed(cs[h.Swatch], picker.Left)
			}
		case picker.PartRecent:
			if cs := p.RecentPresets(); h.Swatch < len(cs) {
				p.RecentPresetPressed(cs[h.Swatch])
			}
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if cs := p.Presets(); h.Part == picker.PartPresets && h.Swatch < len(cs) {
			p.PresetPressed(cs[h.Swatch], picker.Right)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		switch g.press.Part {
		case picker.PartSurface, picker.PartStrip:
			r := g.layout.Surface
			if g.press.Part == picker.PartStrip {
				r = g.layout.Strip
			}
			p.PointerUp(target(g.press.Part), picker.Left, relative(pos, r))
		case picker.PartSliders:
			g.slide(pos)
			p.SliderDragEnded()
			p.SliderReleased()
		}
		g.press = render.Hit{}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		switch g.press.Part {
		case picker.PartSurface:
			p.PointerMove(picker.TargetSurface, relative(pos, g.layout.Surface))
		case picker.PartStrip:
			p.PointerMove(picker.TargetStrip, relative(pos, g.layout.Strip))
		case picker.PartSliders:
			g.slide(pos)
		}
	}
}

// slide sets the slider that was pressed from the pointer position.
func (g *game) slide(pos image.Point) {
	i := g.press.Slider
	r := g.layout.Sliders[i]
	v := g.renderer.View
	errors.Log(g.picker.SliderChanged(i, render.SliderValue(v, i, float32(pos.X-r.Min.X), float32(r.Dx()))))
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.screen == nil {
		g.dirty = false
		g.layout.Compose(g.frame, g.renderer, render.Background)
		if g.screen == nil {
			g.screen = ebiten.NewImageFromImage(g.frame)
		} else {
			g.screen.WritePixels(g.frame.Pix)
		}
	}
	screen.DrawImage(g.screen, &ebiten.DrawImageOptions{})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.layout.Bounds
	return b.Dx(), b.Dy()
}

func relative(pos image.Point, r image.Rectangle) math32.Vector2 {
	return math32.FromPoint(pos.Sub(r.Min))
}

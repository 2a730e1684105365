package main

import (
	"fmt"
	"image"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/camera"
	"github.com/gogpu/pixed/config"
	"github.com/gogpu/pixed/editor"
	"github.com/gogpu/pixed/render"
	"github.com/gogpu/pixed/tool"
)

const (
	fontSize = 10
	swatch   = 24
	margin   = 8
)

// modeKeys maps the number row to tool modes.
var modeKeys = [tool.NumModes]int32{
	tool.ModePencil:    rl.KeyOne,
	tool.ModeEraser:    rl.KeyTwo,
	tool.ModeBucket:    rl.KeyThree,
	tool.ModeLine:      rl.KeyFour,
	tool.ModeRectangle: rl.KeyFive,
}

var mouseButtons = []struct {
	rl     rl.MouseButton
	button tool.Button
}{
	{rl.MouseLeftButton, tool.ButtonPrimary},
	{rl.MouseRightButton, tool.ButtonSecondary},
}

// app is the window front end. raylib reports positions from the
// top-left corner; the editor wants them from the bottom-left.
type app struct {
	cfg    config.Config
	ed     *editor.Editor
	quads  *render.QuadSet
	output string
	scale  int

	// held is the index into mouseButtons of the gesture in progress,
	// or -1.
	held int
	last rl.Vector2
}

func run(cfg config.Config, output string, scale int) {
	quads := render.NewQuadSet()
	a := &app{
		cfg:    cfg,
		ed:     editor.NewFromConfig(cfg, quads),
		quads:  quads,
		output: output,
		scale:  scale,
		held:   -1,
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	pixed.Logger().Info("pixed: window open",
		"width", cfg.Window.Width, "height", cfg.Window.Height,
		"canvas", a.ed.Status().Size)

	for !rl.WindowShouldClose() {
		a.update()

		rl.BeginDrawing()
		a.draw()
		rl.EndDrawing()
	}
}

func (a *app) height() float64 {
	return float64(rl.GetScreenHeight())
}

// pointer returns the mouse position in window space.
func (a *app) pointer() (x, y float64) {
	p := rl.GetMousePosition()
	return float64(p.X), a.height() - float64(p.Y)
}

func (a *app) update() {
	if rl.IsWindowResized() {
		a.ed.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	a.keys()

	x, y := a.pointer()
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.ed.Scroll(x, y, float64(wheel))
	}
	a.mouse(x, y)
}

func (a *app) keys() {
	for m, key := range modeKeys {
		if rl.IsKeyPressed(key) {
			a.ed.SetMode(tool.Mode(m))
		}
	}
	if rl.IsKeyPressed(rl.KeyX) {
		a.ed.State().SwapColors()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.saveCanvas()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.snapshot()
	}
}

// mouse turns raylib button state into one gesture at a time. A second
// button pressed during a gesture is ignored.
func (a *app) mouse(x, y float64) {
	pos := rl.GetMousePosition()
	if a.held < 0 {
		for i, mb := range mouseButtons {
			if rl.IsMouseButtonPressed(mb.rl) {
				a.held, a.last = i, pos
				a.ed.Press(x, y, mb.button)
				return
			}
		}
		a.ed.Motion(x, y)
		return
	}

	mb := mouseButtons[a.held]
	if rl.IsMouseButtonReleased(mb.rl) {
		a.held = -1
		if n := a.ed.Release(x, y, mb.button); n > 0 {
			pixed.Logger().Debug("pixed: committed", "cells", n)
		}
		return
	}
	if pos != a.last {
		a.last = pos
		a.ed.Drag(x, y, mb.button)
	}
}

func (a *app) save(path string, img image.Image) {
	if err := savePNG(path, img); err != nil {
		pixed.Logger().Error("pixed: save failed", "err", err)
		return
	}
	pixed.Logger().Info("pixed: saved", "path", path)
}

func (a *app) saveCanvas() {
	img, err := render.Thumbnail(a.ed.Canvas().Image(), a.scale)
	if err != nil {
		pixed.Logger().Error("pixed: save failed", "err", err)
		return
	}
	a.save(a.output, img)
}

// snapshot rasterizes the current view off screen and saves it.
func (a *app) snapshot() {
	cam := a.ed.Camera()
	img, err := render.Rasterize(render.Scene{
		View:     cam.View(),
		Geometry: cam.Geometry(),
		Quads:    a.quads,
		Window:   a.cfg.Window.Background,
		Canvas:   a.cfg.Canvas.Background,
	})
	if err != nil {
		pixed.Logger().Error("pixed: snapshot failed", "err", err)
		return
	}
	a.save(snapshotPath(a.output), img)
}

func (a *app) draw() {
	rl.ClearBackground(rlColor(a.cfg.Window.Background))

	v := a.ed.Camera().View()
	geom := a.ed.Camera().Geometry()
	ox, oy := geom.Origin()
	a.fillWorld(v, ox, oy, float64(geom.Width), float64(geom.Height), a.cfg.Canvas.Background)
	a.quads.Each(func(q render.Quad) {
		a.fillWorld(v, q.X, q.Y, 1, 1, q.Color)
	})

	a.drawToolbars()
}

// fillWorld fills a world-space rectangle. Edges are floored so that
// neighboring cells tile without gaps at any zoom.
func (a *app) fillWorld(v camera.View, wx, wy, ww, wh float64, c pixed.Color) {
	x0, y0 := camera.WorldToWindow(wx, wy, v)
	x1, y1 := camera.WorldToWindow(wx+ww, wy+wh, v)

	h := a.height()
	left := int32(math.Floor(x0))
	right := int32(math.Floor(x1))
	top := int32(math.Floor(h - y1))
	bottom := int32(math.Floor(h - y0))
	if right <= left || bottom <= top {
		return
	}
	rl.DrawRectangle(left, top, right-left, bottom-top, rlColor(c))
}

func (a *app) drawToolbars() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	top, bottom := int32(a.cfg.Toolbar.Top), int32(a.cfg.Toolbar.Bottom)
	bg := rlColor(a.cfg.Toolbar.Background)

	rl.DrawRectangle(0, 0, w, top, bg)
	rl.DrawRectangle(0, h-bottom, w, bottom, bg)

	state := a.ed.State()
	rl.DrawRectangle(margin, margin, swatch, swatch, rlColor(state.Primary))
	rl.DrawRectangleLines(margin, margin, swatch, swatch, rl.LightGray)
	rl.DrawRectangle(margin+swatch/2, margin+swatch/2, swatch, swatch, rlColor(state.Secondary))
	rl.DrawRectangleLines(margin+swatch/2, margin+swatch/2, swatch, swatch, rl.LightGray)

	x := int32(margin*3 + swatch*2)
	for m := range tool.NumModes {
		label := fmt.Sprintf("%d %s", m+1, m)
		col := rl.Gray
		if m == state.Mode {
			col = rl.White
		}
		rl.DrawText(label, x, margin, fontSize, col)
		x += rl.MeasureText(label, fontSize) + margin*2
	}

	s := a.ed.Status()
	status := s.Zoom + "   " + s.Size
	if s.Position != "" {
		status += "   " + s.Position
	}
	rl.DrawText(status, margin, h-bottom+(bottom-fontSize)/2, fontSize, rl.LightGray)
}

func rlColor(c pixed.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

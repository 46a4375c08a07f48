package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wricardo/charminar-game/game/engine"
)

var (
	colBackground = color.RGBA{0x0a, 0x0f, 0x1f, 0xff}
	colWall       = color.RGBA{0x0e, 0x2a, 0x52, 0xff}
	colWallEdge   = color.RGBA{0x18, 0xa4, 0xff, 0xff}
	colDot        = color.RGBA{0xff, 0xd2, 0x4a, 0xff}
	colPlayer     = color.RGBA{0xff, 0xd2, 0x4a, 0xff}
	colPupil      = color.RGBA{0x1b, 0x21, 0x3b, 0xff}
	colEyeWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xb3}

	// Opponent colours by ID: red, cyan, pink, orange
	ghostColors = []color.RGBA{
		{0xff, 0x4d, 0x4f, 0xff},
		{0x00, 0xe5, 0xff, 0xff},
		{0xff, 0x77, 0xff, 0xff},
		{0xff, 0xa6, 0x4d, 0xff},
	}
)

const glyphWidth, glyphHeight = 6, 16 // ebitenutil debug font

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is the 1x1 source DrawTriangles samples for solid fills
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

func drawFrame(screen *ebiten.Image, state *engine.GameState, tile int, elapsed time.Duration) {
	screen.Fill(colBackground)

	drawMaze(screen, state.Grid, float32(tile))
	drawPlayer(screen, state.Player, float32(tile), elapsed)
	for _, o := range state.Opponents {
		drawGhost(screen, o, float32(tile))
	}

	drawHUD(screen, state)
	if state.IsGameOver() {
		drawOverlay(screen, state)
	}
}

func drawMaze(screen *ebiten.Image, grid *engine.Grid, ts float32) {
	edge := float32(math.Max(2, float64(ts)*0.12))
	dot := float32(math.Max(2, math.Floor(float64(ts)*0.12)))

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			px, py := float32(x)*ts, float32(y)*ts
			switch grid.At(engine.Cell{X: x, Y: y}) {
			case engine.Wall:
				vector.DrawFilledRect(screen, px, py, ts, ts, colWall, false)
				vector.StrokeRect(screen, px+1, py+1, ts-2, ts-2, edge, colWallEdge, false)
			case engine.Consumable:
				vector.DrawFilledCircle(screen, px+ts/2, py+ts/2, dot, colDot, true)
			}
		}
	}
}

// mouthOpening returns the half-angle of the mouth in radians. It swings
// between 0.1 and 0.45 with a period of about half a second.
func mouthOpening(elapsed time.Duration) float64 {
	phase := (math.Sin(float64(elapsed.Milliseconds())/80) + 1) / 2
	return 0.1 + phase*0.35
}

func drawPlayer(screen *ebiten.Image, p engine.Player, ts float32, elapsed time.Duration) {
	cx := float32(p.Pos.X)*ts + ts/2
	cy := float32(p.Pos.Y)*ts + ts/2
	r := ts * 0.45

	heading := p.Heading
	if heading.IsZero() {
		heading = engine.Right
	}
	angle := math.Atan2(float64(heading.DY), float64(heading.DX))
	open := mouthOpening(elapsed)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, r, float32(angle+open), float32(angle-open), vector.Clockwise)
	path.Close()
	fillPath(screen, &path, colPlayer)

	ex := cx + float32(math.Cos(angle-math.Pi/2))*r*0.4
	ey := cy + float32(math.Sin(angle-math.Pi/2))*r*0.4
	vector.DrawFilledCircle(screen, ex, ey, float32(math.Max(1.5, float64(ts)*0.06)), colPupil, true)
}

func drawGhost(screen *ebiten.Image, o engine.Opponent, ts float32) {
	x := float32(o.Pos.X) * ts
	y := float32(o.Pos.Y) * ts
	clr := ghostColors[o.ID%len(ghostColors)]

	var body vector.Path
	body.Arc(x+ts/2, y+ts*0.6, ts*0.45, math.Pi, 0, vector.Clockwise)
	body.LineTo(x+ts*0.95, y+ts*0.95)
	body.LineTo(x+ts*0.8, y+ts*0.85)
	body.LineTo(x+ts*0.65, y+ts*0.95)
	body.LineTo(x+ts*0.5, y+ts*0.85)
	body.LineTo(x+ts*0.35, y+ts*0.95)
	body.LineTo(x+ts*0.2, y+ts*0.85)
	body.LineTo(x+ts*0.05, y+ts*0.95)
	body.Close()
	fillPath(screen, &body, clr)

	eye := float32(math.Max(2, float64(ts)*0.1))
	vector.DrawFilledCircle(screen, x+ts*0.4, y+ts*0.55, eye, colEyeWhite, true)
	vector.DrawFilledCircle(screen, x+ts*0.6, y+ts*0.55, eye, colEyeWhite, true)
	vector.DrawFilledCircle(screen, x+ts*0.45, y+ts*0.55, eye*0.5, colPupil, true)
	vector.DrawFilledCircle(screen, x+ts*0.65, y+ts*0.55, eye*0.5, colPupil, true)
}

// fillPath fills path with a solid colour
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func drawHUD(screen *ebiten.Image, state *engine.GameState) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score), 8, 4)

	lives := fmt.Sprintf("Lives: %d", state.Lives)
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, lives, w-len(lives)*glyphWidth-8, 4)
}

func drawOverlay(screen *ebiten.Image, state *engine.GameState) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colOverlay, false)

	title := "Game Over"
	if state.Reason == engine.ReasonCleared {
		title = fmt.Sprintf("Maze Cleared! Score: %d", state.Score)
	}
	printCentered(screen, title, b.Dy()/2-glyphHeight)
	printCentered(screen, "Press R to Restart", b.Dy()/2+glyphHeight/2)
}

func printCentered(screen *ebiten.Image, msg string, y int) {
	x := (screen.Bounds().Dx() - len(msg)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

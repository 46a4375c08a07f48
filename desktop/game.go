package desktop

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/session"
)

const defaultWidth = 570 // 19 columns of 30 px

// Options configures the desktop window
type Options struct {
	Width int    // initial window width in pixels; the tile size follows it
	Title string // window title
}

// Game hosts a session in an ebiten window
type Game struct {
	sess *session.Session
	cols int
	rows int
	tile int

	last time.Time
}

// NewGame creates a host for sess sized for a surface width pixels wide
func NewGame(sess *session.Session, width int) *Game {
	g := &Game{sess: sess}
	sess.View(func(state *engine.GameState) {
		g.cols = state.Grid.Cols()
		g.rows = state.Grid.Rows()
	})
	g.tile = engine.TileSizeFor(width, g.cols)
	return g
}

// Run opens the window and blocks until it is closed
func Run(sess *session.Session, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Title == "" {
		opts.Title = "Charminar"
	}

	game := NewGame(sess, opts.Width)
	w, h := game.surfaceSize()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(1 / engine.FixedStep))

	return ebiten.RunGame(game)
}

// Update forwards key presses to the session and runs one frame
func (g *Game) Update() error {
	for _, in := range pressedInputs(inpututil.IsKeyJustPressed) {
		g.sess.Push(in)
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	if _, err := g.sess.Frame(elapsed); err != nil {
		if errors.Is(err, session.ErrFrameInProgress) {
			log.Printf("Skipped frame: %v", err)
			return nil
		}
		return err
	}
	return nil
}

// Draw renders the maze, actors, HUD and overlay
func (g *Game) Draw(screen *ebiten.Image) {
	elapsed := g.sess.Elapsed()
	g.sess.View(func(state *engine.GameState) {
		drawFrame(screen, state, g.tile, elapsed)
	})
}

// Layout recomputes the tile size from the window width and returns the
// surface size in pixels
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.tile = engine.TileSizeFor(outsideWidth, g.cols)
	return g.surfaceSize()
}

func (g *Game) surfaceSize() (int, int) {
	return g.cols * g.tile, g.rows * g.tile
}

// keyBindings maps keys to inputs. Arrow keys and WASD both steer.
var keyBindings = []struct {
	key   ebiten.Key
	input engine.Input
}{
	{ebiten.KeyArrowUp, engine.InputUp},
	{ebiten.KeyW, engine.InputUp},
	{ebiten.KeyArrowDown, engine.InputDown},
	{ebiten.KeyS, engine.InputDown},
	{ebiten.KeyArrowLeft, engine.InputLeft},
	{ebiten.KeyA, engine.InputLeft},
	{ebiten.KeyArrowRight, engine.InputRight},
	{ebiten.KeyD, engine.InputRight},
	{ebiten.KeyR, engine.InputRestart},
}

// pressedInputs returns the inputs whose keys were pressed this tick
func pressedInputs(justPressed func(ebiten.Key) bool) []engine.Input {
	var inputs []engine.Input
	for _, b := range keyBindings {
		if justPressed(b.key) {
			inputs = append(inputs, b.input)
		}
	}
	return inputs
}

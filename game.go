package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/character"
	"github.com/milk9111/rayphysics/common"
	"github.com/milk9111/rayphysics/prefabs"
	"github.com/milk9111/rayphysics/render"
	"github.com/milk9111/rayphysics/scene"
	"golang.org/x/image/colornames"
)

type Options struct {
	Level  string
	Actor  string
	Script string
	Debug  bool
	Watch  bool
}

type Game struct {
	frames int

	scene    *scene.Scene
	acc      *character.Accumulator
	camera   *render.Camera
	input    character.Input
	showRays bool

	paused bool
	ui     *ebitenui.UI

	watcher *prefabs.Watcher
	quit    bool
}

func NewGame(opts Options) (*Game, error) {
	s, err := scene.Load(opts.Level, opts.Actor, opts.Script)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scene:    s,
		acc:      character.NewAccumulator(s.Controller.Settings.FixedStep),
		camera:   render.NewCamera(common.BaseWidth, common.BaseHeight),
		showRays: opts.Debug,
	}
	g.camera.Center = s.Actor().Position
	g.ui = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			// the embedded prefabs still work without a prefabs dir on disk
			log.Printf("watch prefabs: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g == nil || g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("close watcher: %v", err)
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showRays = !g.showRays
	}
	g.pollWatcher()

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.input = readInput()
	var stepErr error
	g.acc.Advance(1/float64(ebiten.TPS()), func(dt float64) {
		if stepErr != nil {
			return
		}
		if _, err := g.scene.Step(g.input, dt); err != nil {
			stepErr = err
		}
	})
	if stepErr != nil {
		// a broken script pauses the game until it is fixed and reloaded
		log.Printf("step: %v", stepErr)
		g.paused = true
	}

	size := g.scene.Level.Size()
	g.camera.Follow(g.scene.Actor().Position, cp.BB{L: 0, B: 0, R: size.X, T: size.Y})
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Kind == prefabs.KindScript {
		if err := g.scene.ReloadScript(); err != nil {
			log.Printf("reload %s %s: %v", change.Kind, change.Path, err)
		}
		return
	}
	g.reloadActor()
}

func (g *Game) reloadActor() {
	if err := g.scene.ReloadActor(); err != nil {
		log.Printf("reload actor: %v", err)
		return
	}
	g.acc.Step = g.scene.Controller.Settings.FixedStep
}

func (g *Game) Draw(screen *ebiten.Image) {
	// engine layout fixups run once per rendered frame
	g.scene.Frame()

	screen.Fill(colornames.Black)
	render.DrawSpace(screen, g.scene.Space, g.camera)
	if g.showRays {
		render.DrawTraces(screen, g.scene.Trace.Traces(), g.camera)
	}
	render.DrawActor(screen, g.scene.Actor(), g.scene.Spec.Color.ColorOr(colornames.Deepskyblue), g.camera)
	render.DrawInfo(screen, g.scene.Actor(), g.scene.Controller.Info, g.frames)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

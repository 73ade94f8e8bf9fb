//go:build ebiten

package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"lava-flight/internal/render"
	"lava-flight/internal/sims/flight"
	"lava-flight/internal/ui"
)

const hudWidth = 300

// Game adapts a flight scene to the ebiten.Game interface.
type Game struct {
	scene   *flight.Scene
	view    *render.View
	hud     *ui.HUD
	overlay *ui.Overlay
	log     zerolog.Logger

	width, height int
	dt            float32
	seed          int64

	bombs     []flight.BombState
	positions []mgl32.Vec3
}

// Bindings maps keys to pilot commands. Rotation and speed keys repeat while
// held; the rest fire once per press.
var Bindings = []struct {
	Key    ebiten.Key
	Cmd    flight.Command
	Repeat bool
}{
	{Key: ebiten.KeyA, Cmd: flight.CommandPitchDown, Repeat: true},
	{Key: ebiten.KeyS, Cmd: flight.CommandPitchUp, Repeat: true},
	{Key: ebiten.KeyQ, Cmd: flight.CommandRollLeft, Repeat: true},
	{Key: ebiten.KeyE, Cmd: flight.CommandRollRight, Repeat: true},
	{Key: ebiten.KeyW, Cmd: flight.CommandYawLeft, Repeat: true},
	{Key: ebiten.KeyD, Cmd: flight.CommandYawRight, Repeat: true},
	{Key: ebiten.KeyEqual, Cmd: flight.CommandSpeedUp},
	{Key: ebiten.KeyNumpadAdd, Cmd: flight.CommandSpeedUp},
	{Key: ebiten.KeyMinus, Cmd: flight.CommandSpeedDown},
	{Key: ebiten.KeyNumpadSubtract, Cmd: flight.CommandSpeedDown},
	{Key: ebiten.KeyX, Cmd: flight.CommandExit},
}

// New constructs a Game for the provided world.
func New(world *World, width, height, tps int, log zerolog.Logger) *Game {
	if tps <= 0 {
		tps = 60
	}
	cfg := world.Scene.Config()
	return &Game{
		scene:   world.Scene,
		view:    render.NewView(world.Terrain, cfg.Volcano),
		hud:     ui.NewHUD(world.Scene, hudWidth),
		overlay: ui.NewOverlay(world.Scene, world.Terrain, cfg.Volcano),
		log:     log,
		width:   width,
		height:  height,
		dt:      1 / float32(tps),
		seed:    cfg.Seed,
	}
}

// Reset restarts the flight with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.log.Info().Int64("seed", seed).Msg("flight reset")
}

// Update handles input and advances the scene by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	for _, b := range Bindings {
		if inpututil.IsKeyJustPressed(b.Key) || (b.Repeat && ebiten.IsKeyPressed(b.Key)) {
			g.scene.Apply(b.Cmd)
		}
	}

	g.scene.Update(g.dt)
	g.hud.Update()
	g.overlay.Update()

	if g.scene.ShouldExit() {
		state := g.scene.Aircraft()
		g.log.Info().
			Int("frames", g.scene.Frames()).
			Float32("elapsed", g.scene.Elapsed()).
			Float32("altitude", state.Position.Z()).
			Msg("flight over")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the cockpit view, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	viewWidth := g.width - g.hud.Width()
	state := g.scene.Aircraft()
	cam := render.NewCamera(state.Position, state.Rotation, viewWidth, g.height)

	g.bombs = g.scene.LavaBombs(g.bombs[:0])
	g.positions = g.positions[:0]
	for _, b := range g.bombs {
		g.positions = append(g.positions, b.Position)
	}

	g.view.Draw(screen, cam, g.positions, g.scene.Config().Params.BombRadius)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, viewWidth, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the parameter panel.
const HUDWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
	limit    uint64
}

// New constructs a Game for the provided simulation. A non-zero limit pauses
// the game once that many generations have run.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size()),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, HUDWidth),
		onColor:  color.Black,
		offColor: color.White,
		scale:    cfg.Scale,
		tps:      cfg.TPS,
		seed:     cfg.Seed,
		limit:    uint64(cfg.Generations),
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.sim.Reset(seed); err != nil {
		log.Printf("reset: %v", err)
		return
	}
	g.seed = seed
	g.tickOnce = false
}

func (g *Game) setTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	g.tps = tps
	ebiten.SetTPS(tps)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setTPS(g.tps / 2)
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if g.limit > 0 && g.sim.Generation() >= g.limit {
		g.paused = true
		g.tickOnce = false
	}
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Words(), g.sim.Size(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, max(s.H*g.scale, HUDWidth)
}

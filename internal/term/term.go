// Package term draws and drives a simulation on a terminal through tcell.
package term

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/core"
	simcore "mad-life/pkg/core"
)

const (
	cellColumns = 2
	frameRate   = 60
	aliveRune   = '█'
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Population counts set bits in a packed cell buffer.
func Population(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Draw paints every cell of sim two columns wide followed by a status line.
// Cells beyond the screen are clipped.
func Draw(screen tcell.Screen, sim simcore.Sim, status string) {
	screen.Clear()
	size := sim.Size()
	words := sim.Words()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			i := size.Index(row, col)
			r, style := ' ', deadStyle
			if w := i >> 6; w < len(words) && words[w]&(1<<(uint(i)&63)) != 0 {
				r, style = aliveRune, aliveStyle
			}
			for k := 0; k < cellColumns; k++ {
				screen.SetContent(col*cellColumns+k, row, r, nil, style)
			}
		}
	}
	for i, r := range []rune(status) {
		screen.SetContent(i, size.H, r, nil, statusStyle)
	}
	screen.Show()
}

// Runner owns the loop that steps and redraws a simulation.
type Runner struct {
	screen tcell.Screen
	sim    simcore.Sim
	clock  *core.FixedStep

	seed   int64
	limit  uint64
	paused bool
	// Errors from resets are shown on the status line.
	lastErr error
}

// NewRunner prepares a Runner. A non-zero limit pauses after that many
// generations.
func NewRunner(screen tcell.Screen, sim simcore.Sim, tps int, seed int64, limit uint64) *Runner {
	return &Runner{screen: screen, sim: sim, clock: core.NewFixedStep(tps), seed: seed, limit: limit}
}

// Status describes the runner state in one line.
func (r *Runner) Status() string {
	s := fmt.Sprintf("%s %dx%d  gen %d  pop %d  tps %d",
		r.sim.Name(), r.sim.Size().W, r.sim.Size().H, r.sim.Generation(), Population(r.sim.Words()), r.clock.TPS())
	if r.paused {
		s += "  [paused]"
	}
	if r.lastErr != nil {
		s += "  " + r.lastErr.Error()
	}
	return s
}

// HandleKey applies one key press and reports whether the loop should stop.
func (r *Runner) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		r.paused = !r.paused
	case 'n':
		r.advance()
	case 'r':
		r.reset(r.seed)
	case 's':
		r.reset(time.Now().UnixNano())
	case '+', '=':
		r.clock.SetTPS(r.clock.TPS() * 2)
	case '-':
		r.clock.SetTPS(max(1, r.clock.TPS()/2))
	}
	return false
}

func (r *Runner) reset(seed int64) {
	if err := r.sim.Reset(seed); err != nil {
		r.lastErr = err
		return
	}
	r.lastErr = nil
	r.seed = seed
}

// advance steps once unless the generation limit has been reached. The limit
// is a hard stop; only a reset moves the runner past it.
func (r *Runner) advance() {
	if r.atLimit() {
		r.paused = true
		return
	}
	r.sim.Step()
	if r.atLimit() {
		r.paused = true
	}
}

func (r *Runner) atLimit() bool {
	return r.limit > 0 && r.sim.Generation() >= r.limit
}

// Tick advances the simulation when the tick rate allows it.
func (r *Runner) Tick() {
	if r.paused || !r.clock.ShouldStep() {
		return
	}
	r.advance()
}

// Run redraws at a fixed frame rate until the user quits. Events are read on a
// separate goroutine and handed to the loop, which alone touches the sim.
func (r *Runner) Run() error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()

	Draw(r.screen, r.sim, r.Status())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if r.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
		case <-frame.C:
			r.Tick()
		}
		Draw(r.screen, r.sim, r.Status())
	}
}

package snake

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// commandQueueSize bounds pending input between ticks.
// Sends beyond it are dropped rather than blocking the caller.
const commandQueueSize = 32

// ErrEngineRunning is returned when Run is called a second time.
var ErrEngineRunning = errors.New("snake: engine already running")

type commandKind int

const (
	cmdSteer commandKind = iota
	cmdConfirm
	cmdReset
)

type command struct {
	kind commandKind
	dir  core.Direction
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	Rules    Rules
	Interval time.Duration // Defaults to DefaultTickInterval
	Seed     int64         // 0 = time-based
	Logger   *log.Logger   // nil discards logs
}

// Engine owns one game state and applies ticks and input to it from a
// single goroutine. Input methods never block; observers read published
// snapshots.
type Engine struct {
	rules    Rules
	interval time.Duration
	rng      *rand.Rand
	logger   *log.Logger

	state   State // Owned by Run
	cmds    chan command
	current atomic.Pointer[Snapshot]
	running atomic.Bool

	mu      sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int
	closed  bool
}

// NewEngine creates an engine with a freshly reset game.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultTickInterval
	}
	if cfg.Rules.BoardSize == 0 {
		cfg.Rules = DefaultRules()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	e := &Engine{
		rules:    cfg.Rules,
		interval: cfg.Interval,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   cfg.Logger,
		cmds:     make(chan command, commandQueueSize),
		subs:     make(map[int]chan Snapshot),
	}
	e.state = e.rules.Reset(e.rng)
	e.publish(e.state)
	return e
}

// Steer requests a direction change for the next tick.
func (e *Engine) Steer(d core.Direction) {
	e.send(command{kind: cmdSteer, dir: d})
}

// Confirm restarts the game if it is over.
func (e *Engine) Confirm() {
	e.send(command{kind: cmdConfirm})
}

// Reset restarts the game unconditionally.
func (e *Engine) Reset() {
	e.send(command{kind: cmdReset})
}

// Apply dispatches a host action. Quit and unknown actions are ignored.
func (e *Engine) Apply(a core.Action) {
	if d, ok := a.Direction(); ok {
		e.Steer(d)
		return
	}
	if a == core.ActionConfirm {
		e.Confirm()
	}
}

func (e *Engine) send(c command) {
	select {
	case e.cmds <- c:
	default:
		e.logger.Debug("input dropped, queue full")
	}
}

// Snapshot returns the most recently published state.
func (e *Engine) Snapshot() Snapshot {
	return *e.current.Load()
}

// Subscribe returns a channel that always holds the latest snapshot.
// A slow reader skips intermediate snapshots instead of stalling the engine.
// The channel is closed by the returned cancel func or when Run returns.
func (e *Engine) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		close(ch)
		return ch, func() {}
	}

	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- *e.current.Load()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(c)
			}
		})
	}
}

// Run drives the game until ctx is cancelled.
// Ticks fire every interval while the game runs and stop on game over;
// a confirm or reset re-arms them.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrEngineRunning
	}
	defer e.closeSubscribers()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	tickC := ticker.C
	if e.state.GameOver {
		ticker.Stop()
		tickC = nil
	}

	e.logger.Debug("engine started", "board", e.rules.BoardSize, "interval", e.interval)

	for {
		select {
		case <-ctx.Done():
			e.logger.Debug("engine stopped", "score", e.state.Score)
			return ctx.Err()

		case <-tickC:
			prev := e.state
			e.state = e.rules.Tick(e.state, e.rng)
			e.logTick(prev, e.state)
			if e.state.GameOver {
				ticker.Stop()
				tickC = nil
			}
			e.publish(e.state)

		case c := <-e.cmds:
			switch c.kind {
			case cmdSteer:
				e.state = e.rules.Steer(e.state, c.dir)
			case cmdConfirm, cmdReset:
				if c.kind == cmdConfirm && !e.state.GameOver {
					continue
				}
				e.state = e.rules.Reset(e.rng)
				e.logger.Debug("game reset", "food", e.state.Food)
				ticker.Reset(e.interval)
				tickC = ticker.C
				e.publish(e.state)
			}
		}
	}
}

func (e *Engine) logTick(prev, next State) {
	switch {
	case next.Won:
		e.logger.Info("board filled", "score", next.Score, "ticks", next.Ticks)
	case next.GameOver:
		e.logger.Info("game over", "score", next.Score, "head", prev.Head(), "direction", prev.Pending)
	case next.Score > prev.Score:
		e.logger.Debug("food eaten", "score", next.Score, "food", next.Food)
	}
}

// publish stores the snapshot and offers it to every subscriber.
func (e *Engine) publish(s State) {
	snap := s.Snapshot(e.rules.BoardSize)
	e.current.Store(&snap)

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		offerLatest(ch, snap)
	}
}

// offerLatest replaces whatever is buffered in ch with snap.
func offerLatest(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

func (e *Engine) closeSubscribers() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
}

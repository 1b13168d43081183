package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/engine"
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/model"
	"github.com/udisondev/oakbuffs/internal/sim"
)

var (
	ErrBadTick        = errors.New("tick interval must be positive")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownOption  = errors.New("unknown option")
	ErrUnknownTrigger = errors.New("unknown trigger")
)

type replayOptions struct {
	Seed uint64
	Tick float64
}

// event is one scheduled callback; a nil step is a world tick.
type event struct {
	at   float64
	step *Step
}

// logNotifier mirrors HUD messages into the log before handing them on.
type logNotifier struct {
	next host.Notifier
}

func (n logNotifier) Notify(title, msg string) {
	slog.Info("hud", "title", title, "msg", msg)
	n.next.Notify(title, msg)
}

// seededRoller is a deterministic drop roller.
type seededRoller struct {
	rng *rand.Rand
}

func (r seededRoller) IntN(n int) int { return r.rng.IntN(n) }

// replay plays sc against a fresh in-memory game and returns the final
// engine state. Events are produced on one goroutine and applied on another
// so the engine is only ever touched by the consumer.
func replay(ctx context.Context, sc Scenario, settings config.Settings, opts replayOptions) (engine.Snapshot, error) {
	if opts.Tick <= 0 {
		return engine.Snapshot{}, ErrBadTick
	}

	game := sim.NewGame()
	h := game.Host()
	h.Notifier = logNotifier{next: game}
	eng := engine.New(h, settings, engine.WithRoller(seededRoller{
		rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
	}))

	events := make(chan event)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		return schedule(gctx, sc.Steps, opts.Tick, events)
	})

	g.Go(func() error {
		for ev := range events {
			game.SetTime(ev.at)
			if ev.step == nil {
				eng.OnTick()
				continue
			}
			if err := dispatch(eng, game, ev.step); err != nil {
				return fmt.Errorf("step at %.2fs: %w", ev.at, err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return engine.Snapshot{}, err
	}
	return eng.Snapshot(), nil
}

// schedule emits steps interleaved with ticks every interval seconds, up to
// the last step's time. A step and a tick at the same instant emit the step
// first.
func schedule(ctx context.Context, steps []Step, interval float64, out chan<- event) error {
	var end float64
	if len(steps) > 0 {
		end = steps[len(steps)-1].At
	}

	next := 0
	for n := 1; ; n++ {
		tickAt := float64(n) * interval
		for next < len(steps) && steps[next].At <= tickAt {
			if err := send(ctx, out, event{at: steps[next].At, step: &steps[next]}); err != nil {
				return err
			}
			next++
		}
		if tickAt > end {
			return nil
		}
		if err := send(ctx, out, event{at: tickAt}); err != nil {
			return err
		}
	}
}

func send(ctx context.Context, out chan<- event, ev event) error {
	select {
	case out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func dispatch(eng *engine.Engine, game *sim.Game, st *Step) error {
	switch st.Action {
	case ActionTick:
		eng.OnTick()
	case ActionKill:
		eng.OnEnemyDied(game.SpawnEnemy(!st.Friend))
	case ActionTrigger:
		if !eng.Trigger(st.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownTrigger, st.Name)
		}
	case ActionMove:
		game.MovePawn(model.NewVec3(st.Pos[0], st.Pos[1], st.Pos[2]))
	case ActionMap:
		game.Travel(st.Map)
	case ActionRespawn:
		game.Respawn()
	case ActionDespawn:
		game.DespawnPawn()
	case ActionSet:
		opt, ok := config.Lookup(st.Name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, st.Name)
		}
		s := eng.Settings()
		opt.Set(&s, st.Value)
		eng.SetSettings(s)
		slog.Info("option changed", "option", opt.Name(), "value", st.Value)
	case ActionReset:
		eng.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, st.Action)
	}
	return nil
}

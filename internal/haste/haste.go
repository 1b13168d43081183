package haste

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/host"
)

// Title is the notification title for kill-stack messages.
const Title = "KillStackHaste"

// fovBumpFactor scales how much of the movement bonus reaches the FOV.
const fovBumpFactor = 0.10

// Haste turns kill stacks into movement, weapon and camera scaling.
type Haste struct {
	host   host.Host
	scaler *attr.Scaler
	res    *attr.Resolver
	opts   config.Haste

	stacks Stacks
}

// New creates a Haste with no stacks.
func New(h host.Host, scaler *attr.Scaler, res *attr.Resolver, opts config.Haste) *Haste {
	return &Haste{
		host:   h,
		scaler: scaler,
		res:    res,
		opts:   opts,
	}
}

// SetOptions replaces the options. Takes effect on the next tick.
func (k *Haste) SetOptions(opts config.Haste) {
	k.opts = opts
}

// Count returns the current number of stacks.
func (k *Haste) Count() int {
	return k.stacks.Count()
}

// Stacks returns a copy of the counter state.
func (k *Haste) Stacks() Stacks {
	return k.stacks
}

// Multiplier returns the current effective multiplier.
func (k *Haste) Multiplier() float64 {
	return Multiplier(k.opts.PerStackPercent(), k.stacks.Count())
}

// Gain adds a stack for a qualifying kill (or the Add Stack key).
func (k *Haste) Gain() {
	if !k.stacks.Gain(k.host.World.Now(), k.opts.MaxStacks) {
		return
	}
	k.host.Notify(Title, fmt.Sprintf("Stacks: %d  (+%g%% per)",
		k.stacks.Count(), math.Round(k.opts.PerStackPercent()*1000)/10))
	slog.Debug("haste stack gained",
		"stacks", k.stacks.Count(),
		"multiplier", k.Multiplier())
	k.apply()
}

// Clear drops all stacks and restores every attribute haste touched.
func (k *Haste) Clear() {
	k.stacks.Clear()
	k.host.Notify(Title, "Stacks cleared")
	k.scaler.RestoreLayer(attr.LayerHaste)
}

// Tick decays stacks and re-applies the current multiplier.
// With no stacks left, haste's modifiers are removed.
func (k *Haste) Tick(now float64) {
	if n := k.stacks.Decay(now, float64(k.opts.DecaySeconds)); n > 0 {
		slog.Debug("haste stacks decayed", "removed", n, "stacks", k.stacks.Count())
	}
	if k.stacks.Count() > 0 {
		k.apply()
		return
	}
	k.scaler.RestoreLayer(attr.LayerHaste)
}

// Reset forgets stacks without touching attributes.
func (k *Haste) Reset() {
	k.stacks.Reset()
}

func (k *Haste) apply() {
	pawn, ok := k.host.World.LocalPawn()
	if !ok {
		return
	}
	mult := k.Multiplier()

	k.scale(pawn, attr.FieldMaxWalkSpeed, mult, true)
	k.scale(pawn, attr.FieldMaxSprintSpeed, mult, true)
	for _, path := range attr.MovementSpeedPaths {
		k.scale(pawn, path, mult, true)
	}
	k.scale(pawn, attr.FieldTimeDilation, mult, k.opts.UseTimeDilation)

	if player, ok := k.host.World.LocalPlayer(); ok {
		k.scale(player, attr.FieldFOV, 1+fovBumpFactor*(mult-1), k.opts.UseFOVBump)
	}

	target, ok := k.host.Target()
	if !ok {
		return
	}
	k.scale(target, attr.PathReloadSpeed, mult, k.opts.AffectReload)
	k.scale(target, attr.PathFireRate, mult, k.opts.AffectFireRate)
	k.scale(target, attr.PathSplashDamage, mult, k.opts.AffectSplashDamage)
	k.scale(target, attr.PathSplashRadius, mult, k.opts.AffectSplashRadius)
	k.scale(target, attr.PathActionSkillCDR, mult, k.opts.AffectSkillCDR)
}

// scale applies mult when enabled, otherwise removes haste's modifier.
func (k *Haste) scale(target host.EntityID, path string, mult float64, enabled bool) {
	ref, ok := k.res.Ref(target, path)
	if !ok {
		return
	}
	if enabled {
		k.scaler.ApplyScaled(attr.LayerHaste, ref, mult)
		return
	}
	k.scaler.Restore(attr.LayerHaste, ref)
}

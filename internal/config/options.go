package config

import "log/slog"

// Kind is the widget type an option is registered as.
type Kind int8

const (
	KindSlider Kind = iota
	KindBool
)

// Option declares one user-facing setting: its label, range and default.
// The host registers these with its settings UI.
type Option struct {
	Section string
	Key     string
	Label   string
	Kind    Kind

	// Slider bounds; unused for KindBool.
	Min     int
	Max     int
	Step    int
	Default int

	DefaultOn bool

	intField  func(*Settings) *int
	boolField func(*Settings) *bool
}

// Name returns the dotted option name, e.g. "haste.max_stacks".
func (o Option) Name() string {
	return o.Section + "." + o.Key
}

// Int returns the slider's current value in s.
func (o Option) Int(s *Settings) int {
	if o.intField == nil {
		return 0
	}
	return *o.intField(s)
}

// Bool returns the toggle's current value in s.
func (o Option) Bool(s *Settings) bool {
	if o.boolField == nil {
		return false
	}
	return *o.boolField(s)
}

// Set writes v into s, clamped to the declared range.
// Bool options treat any non-zero v as on.
func (o Option) Set(s *Settings, v int) {
	switch o.Kind {
	case KindSlider:
		*o.intField(s) = o.clamp(v)
	case KindBool:
		*o.boolField(s) = v != 0
	}
}

func (o Option) clamp(v int) int {
	return min(max(v, o.Min), o.Max)
}

func slider(section, key, label string, lo, hi, step, def int, f func(*Settings) *int) Option {
	return Option{
		Section:  section,
		Key:      key,
		Label:    label,
		Kind:     KindSlider,
		Min:      lo,
		Max:      hi,
		Step:     step,
		Default:  def,
		intField: f,
	}
}

func toggle(section, key, label string, def bool, f func(*Settings) *bool) Option {
	return Option{
		Section:   section,
		Key:       key,
		Label:     label,
		Kind:      KindBool,
		DefaultOn: def,
		boolField: f,
	}
}

var declarations = []Option{
	slider("haste", "per_kill_level", "Per-Kill %  (1=2.5, 2=5, 3=7.5, 4=10, 5=20)", 1, 5, 1, 5,
		func(s *Settings) *int { return &s.Haste.PerKillLevel }),
	slider("haste", "max_stacks", "Max Stacks (1-10)", 1, 10, 1, 10,
		func(s *Settings) *int { return &s.Haste.MaxStacks }),
	slider("haste", "decay_seconds", "Seconds per Stack Decay (5-20)", 5, 20, 1, 10,
		func(s *Settings) *int { return &s.Haste.DecaySeconds }),
	toggle("haste", "affect_reload", "Affect Reload Speed", true,
		func(s *Settings) *bool { return &s.Haste.AffectReload }),
	toggle("haste", "affect_fire_rate", "Affect Fire Rate", true,
		func(s *Settings) *bool { return &s.Haste.AffectFireRate }),
	toggle("haste", "affect_splash_damage", "Affect Splash Damage", true,
		func(s *Settings) *bool { return &s.Haste.AffectSplashDamage }),
	toggle("haste", "affect_splash_radius", "Affect Splash Radius", true,
		func(s *Settings) *bool { return &s.Haste.AffectSplashRadius }),
	toggle("haste", "affect_skill_cdr", "Affect Action Skill Cooldown Rate", true,
		func(s *Settings) *bool { return &s.Haste.AffectSkillCDR }),
	toggle("haste", "use_time_dilation", "Use Time Dilation for Movement", true,
		func(s *Settings) *bool { return &s.Haste.UseTimeDilation }),
	toggle("haste", "use_fov_bump", "Also bump FOV for visibility", true,
		func(s *Settings) *bool { return &s.Haste.UseFOVBump }),

	slider("pylons", "duration", "Pylon Duration (sec)", 20, 60, 5, 35,
		func(s *Settings) *int { return &s.Pylons.Duration }),
	slider("pylons", "cooldown", "Anchor Cooldown (sec)", 60, 600, 30, 180,
		func(s *Settings) *int { return &s.Pylons.Cooldown }),
	slider("pylons", "max_simultaneous", "Max Concurrent Pylon Buffs", 1, 3, 1, 2,
		func(s *Settings) *int { return &s.Pylons.MaxSimultaneous }),
	slider("pylons", "anchors_per_map", "Anchors Per Map (1-3)", 1, 3, 1, 3,
		func(s *Settings) *int { return &s.Pylons.AnchorsPerMap }),
	toggle("pylons", "enable_frenzy", "Enable Frenzy (MS/Reload/FireRate)", true,
		func(s *Settings) *bool { return &s.Pylons.EnableFrenzy }),
	toggle("pylons", "enable_conquest", "Enable Conquest (Splash Dmg/Radius)", true,
		func(s *Settings) *bool { return &s.Pylons.EnableConquest }),
	toggle("pylons", "show_hints", "Show HUD Hints Near Anchors", true,
		func(s *Settings) *bool { return &s.Pylons.ShowHints }),

	slider("uber", "drop_chance", "Uber Unique Drop Chance (1/n)", 100, 5000, 100, 1000,
		func(s *Settings) *int { return &s.Uber.DropChance }),
}

// Declarations returns every declared option in registration order.
func Declarations() []Option {
	result := make([]Option, len(declarations))
	copy(result, declarations)
	return result
}

// Lookup finds an option by dotted name.
func Lookup(name string) (Option, bool) {
	for _, o := range declarations {
		if o.Name() == name {
			return o, true
		}
	}
	return Option{}, false
}

// Clamp forces every slider into its declared range.
// Returns the names of options that were out of range.
func (s *Settings) Clamp() []string {
	var clamped []string
	for _, o := range declarations {
		if o.Kind != KindSlider {
			continue
		}
		v := o.Int(s)
		if c := o.clamp(v); c != v {
			*o.intField(s) = c
			clamped = append(clamped, o.Name())
			slog.Warn("option out of range, clamped",
				"option", o.Name(),
				"value", v,
				"clamped", c)
		}
	}
	return clamped
}

package config

// Settings holds every user-facing option of the three modifier systems.
// The settings UI edits these; the engine only reads them.
type Settings struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	Haste  Haste  `yaml:"haste" envPrefix:"HASTE_"`
	Pylons Pylons `yaml:"pylons" envPrefix:"PYLONS_"`
	Uber   Uber   `yaml:"uber" envPrefix:"UBER_"`
}

// Haste configures kill stacks.
type Haste struct {
	PerKillLevel int `yaml:"per_kill_level" env:"PER_KILL_LEVEL"` // 1..5, see PerStackPercent
	MaxStacks    int `yaml:"max_stacks" env:"MAX_STACKS"`
	DecaySeconds int `yaml:"decay_seconds" env:"DECAY_SECONDS"` // seconds per stack lost

	AffectReload       bool `yaml:"affect_reload" env:"AFFECT_RELOAD"`
	AffectFireRate     bool `yaml:"affect_fire_rate" env:"AFFECT_FIRE_RATE"`
	AffectSplashDamage bool `yaml:"affect_splash_damage" env:"AFFECT_SPLASH_DAMAGE"`
	AffectSplashRadius bool `yaml:"affect_splash_radius" env:"AFFECT_SPLASH_RADIUS"`
	AffectSkillCDR     bool `yaml:"affect_skill_cdr" env:"AFFECT_SKILL_CDR"`
	UseTimeDilation    bool `yaml:"use_time_dilation" env:"USE_TIME_DILATION"`
	UseFOVBump         bool `yaml:"use_fov_bump" env:"USE_FOV_BUMP"`
}

// Pylons configures anchors and their timed buffs.
type Pylons struct {
	Duration        int `yaml:"duration" env:"DURATION"` // seconds
	Cooldown        int `yaml:"cooldown" env:"COOLDOWN"` // seconds
	MaxSimultaneous int `yaml:"max_simultaneous" env:"MAX_SIMULTANEOUS"`
	AnchorsPerMap   int `yaml:"anchors_per_map" env:"ANCHORS_PER_MAP"`

	EnableFrenzy   bool `yaml:"enable_frenzy" env:"ENABLE_FRENZY"`
	EnableConquest bool `yaml:"enable_conquest" env:"ENABLE_CONQUEST"`
	ShowHints      bool `yaml:"show_hints" env:"SHOW_HINTS"`
}

// Uber configures the uber unique drop.
type Uber struct {
	DropChance int `yaml:"drop_chance" env:"DROP_CHANCE"` // 1 in N
}

// perStackTable maps the per-kill slider position to a fraction.
var perStackTable = map[int]float64{
	1: 0.025,
	2: 0.05,
	3: 0.075,
	4: 0.10,
	5: 0.20,
}

// PerStackPercent returns the per-stack bonus fraction for the configured level.
// Unknown levels fall back to 5%.
func (h Haste) PerStackPercent() float64 {
	if p, ok := perStackTable[h.PerKillLevel]; ok {
		return p
	}
	return 0.05
}

// DefaultSettings returns Settings with the stock option values.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		Haste: Haste{
			PerKillLevel:       5,
			MaxStacks:          10,
			DecaySeconds:       10,
			AffectReload:       true,
			AffectFireRate:     true,
			AffectSplashDamage: true,
			AffectSplashRadius: true,
			AffectSkillCDR:     true,
			UseTimeDilation:    true,
			UseFOVBump:         true,
		},
		Pylons: Pylons{
			Duration:        35,
			Cooldown:        180,
			MaxSimultaneous: 2,
			AnchorsPerMap:   3,
			EnableFrenzy:    true,
			EnableConquest:  true,
			ShowHints:       true,
		},
		Uber: Uber{
			DropChance: 1000,
		},
	}
}

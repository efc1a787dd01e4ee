// Package config loads and hot-reloads the mission's difficulty
// profile: the twenty scalar multipliers and handful of discrete
// choices that scale ghost/player behavior without the simulation
// core ever needing to know which named difficulty tier produced them.
package config

import (
	"context"
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DifficultyProfile holds every scalar and discrete-choice input the
// simulation core reads from the mission's difficulty selection. The
// core treats every field as read-only input; nothing in the
// simulation writes back into it.
type DifficultyProfile struct {
	// Scalar multipliers.
	GhostSpeedMul              float64 `mapstructure:"GhostSpeedMul"`
	GhostRageLikelihoodMul     float64 `mapstructure:"GhostRageLikelihoodMul"`
	GhostHuntDurationMul       float64 `mapstructure:"GhostHuntDurationMul"`
	GhostHuntCooldownMul       float64 `mapstructure:"GhostHuntCooldownMul"`
	GhostHuntAggressionMul     float64 `mapstructure:"GhostHuntAggressionMul"`
	InteractionFrequencyMul    float64 `mapstructure:"InteractionFrequencyMul"`
	AttractionToBreachMul      float64 `mapstructure:"AttractionToBreachMul"`
	ProvocationRadiusMul       float64 `mapstructure:"ProvocationRadiusMul"`
	AmbientTemperatureMul      float64 `mapstructure:"AmbientTemperatureMul"`
	TemperatureSpreadSpeedMul  float64 `mapstructure:"TemperatureSpreadSpeedMul"`
	LightHeatMul               float64 `mapstructure:"LightHeatMul"`
	DarknessIntensityMul       float64 `mapstructure:"DarknessIntensityMul"`
	EnvironmentGammaMul        float64 `mapstructure:"EnvironmentGammaMul"`
	StartingSanityMul          float64 `mapstructure:"StartingSanityMul"`
	SanityDrainRateMul         float64 `mapstructure:"SanityDrainRateMul"`
	HealthDrainRateMul         float64 `mapstructure:"HealthDrainRateMul"`
	HealthRecoveryRateMul      float64 `mapstructure:"HealthRecoveryRateMul"`
	PlayerSpeedMul             float64 `mapstructure:"PlayerSpeedMul"`
	EvidenceVisibilityMul      float64 `mapstructure:"EvidenceVisibilityMul"`
	EquipmentSensitivityMul    float64 `mapstructure:"EquipmentSensitivityMul"`

	// Additional knobs the target-selection and influence-scoring math
	// needs beyond the twenty named multipliers above; these default to
	// 1 (no bias) and are still pure difficulty input.
	AttractiveInfluenceMul float64 `mapstructure:"AttractiveInfluenceMul"`
	RepulsiveInfluenceMul  float64 `mapstructure:"RepulsiveInfluenceMul"`
	DestinationSampleCount int     `mapstructure:"DestinationSampleCount"`

	// Discrete choices.
	VanAutoOpen       bool     `mapstructure:"VanAutoOpen"`
	DefaultVanTab     string   `mapstructure:"DefaultVanTab"`
	InitialGear       []string `mapstructure:"InitialGear"`
	GhostSetSubset    []string `mapstructure:"GhostSetSubset"`
	TruckGearList     []string `mapstructure:"TruckGearList"`
	TutorialChapter   int      `mapstructure:"TutorialChapter"`
}

// GhostSpeed, GhostHuntingAggression, ... satisfy pkg/ghost.Difficulty
// and pkg/influence's scoring inputs, reading straight through the
// multiplier fields above. The mission layer passes a *DifficultyProfile
// wherever those packages ask for their narrower interface.
func (d *DifficultyProfile) GhostSpeed() float64               { return d.GhostSpeedMul }
func (d *DifficultyProfile) GhostHuntingAggression() float64   { return d.GhostHuntAggressionMul }
func (d *DifficultyProfile) GhostAttractionToBreach() float64  { return d.AttractionToBreachMul }
func (d *DifficultyProfile) GhostRageLikelihood() float64      { return d.GhostRageLikelihoodMul }
func (d *DifficultyProfile) GhostHuntDuration() float64        { return d.GhostHuntDurationMul }
func (d *DifficultyProfile) GhostHuntCooldown() float64        { return d.GhostHuntCooldownMul }
func (d *DifficultyProfile) HealthDrainRate() float64          { return d.HealthDrainRateMul }
func (d *DifficultyProfile) HuntProvocationRadius() float64    { return d.ProvocationRadiusMul }
func (d *DifficultyProfile) AttractiveInfluenceMultiplier() float64 {
	return d.AttractiveInfluenceMul
}
func (d *DifficultyProfile) RepulsiveInfluenceMultiplier() float64 {
	return d.RepulsiveInfluenceMul
}
func (d *DifficultyProfile) NumDestinationSamples() int { return d.DestinationSampleCount }
func (d *DifficultyProfile) GhostInteractionFrequency() float64 {
	return d.InteractionFrequencyMul
}

// C is the global difficulty profile instance.
var C DifficultyProfile

// mu protects concurrent access to C during hot-reload.
var mu sync.RWMutex

var (
	watcherMu       sync.Mutex
	watcherActive   bool
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	currentCallback ReloadCallback
)

// ReloadCallback is called when the difficulty profile is hot-reloaded.
type ReloadCallback func(old, new DifficultyProfile)

// Load reads the difficulty profile from config.toml (searched in the
// working directory, then $HOME/.unhaunter), populating C with defaults
// for anything unset; environment variables are not consulted. A
// "normal" tier's worth of defaults (every multiplier at 1, provocation
// radius and sample counts at sane non-zero bases) is used so a
// mission can run unconfigured.
func Load() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.unhaunter")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return viper.Unmarshal(&C)
}

func setDefaults() {
	viper.SetDefault("GhostSpeedMul", 1.0)
	viper.SetDefault("GhostRageLikelihoodMul", 1.0)
	viper.SetDefault("GhostHuntDurationMul", 1.0)
	viper.SetDefault("GhostHuntCooldownMul", 1.0)
	viper.SetDefault("GhostHuntAggressionMul", 1.0)
	viper.SetDefault("InteractionFrequencyMul", 1.0)
	viper.SetDefault("AttractionToBreachMul", 1.0)
	viper.SetDefault("ProvocationRadiusMul", 5.0)
	viper.SetDefault("AmbientTemperatureMul", 1.0)
	viper.SetDefault("TemperatureSpreadSpeedMul", 1.0)
	viper.SetDefault("LightHeatMul", 1.0)
	viper.SetDefault("DarknessIntensityMul", 1.0)
	viper.SetDefault("EnvironmentGammaMul", 1.0)
	viper.SetDefault("StartingSanityMul", 1.0)
	viper.SetDefault("SanityDrainRateMul", 1.0)
	viper.SetDefault("HealthDrainRateMul", 1.0)
	viper.SetDefault("HealthRecoveryRateMul", 1.0)
	viper.SetDefault("PlayerSpeedMul", 1.0)
	viper.SetDefault("EvidenceVisibilityMul", 1.0)
	viper.SetDefault("EquipmentSensitivityMul", 1.0)
	viper.SetDefault("AttractiveInfluenceMul", 1.0)
	viper.SetDefault("RepulsiveInfluenceMul", 1.0)
	viper.SetDefault("DestinationSampleCount", 8)
	viper.SetDefault("VanAutoOpen", false)
	viper.SetDefault("DefaultVanTab", "evidence")
	viper.SetDefault("InitialGear", []string{"flashlight", "thermometer"})
	viper.SetDefault("GhostSetSubset", []string{})
	viper.SetDefault("TruckGearList", []string{"flashlight", "thermometer", "emf-reader", "repellent"})
	viper.SetDefault("TutorialChapter", 0)
}

// Save writes the current difficulty profile back to config.toml.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	viper.Set("GhostSpeedMul", C.GhostSpeedMul)
	viper.Set("GhostRageLikelihoodMul", C.GhostRageLikelihoodMul)
	viper.Set("GhostHuntDurationMul", C.GhostHuntDurationMul)
	viper.Set("GhostHuntCooldownMul", C.GhostHuntCooldownMul)
	viper.Set("GhostHuntAggressionMul", C.GhostHuntAggressionMul)
	viper.Set("InteractionFrequencyMul", C.InteractionFrequencyMul)
	viper.Set("AttractionToBreachMul", C.AttractionToBreachMul)
	viper.Set("ProvocationRadiusMul", C.ProvocationRadiusMul)
	viper.Set("AmbientTemperatureMul", C.AmbientTemperatureMul)
	viper.Set("TemperatureSpreadSpeedMul", C.TemperatureSpreadSpeedMul)
	viper.Set("LightHeatMul", C.LightHeatMul)
	viper.Set("DarknessIntensityMul", C.DarknessIntensityMul)
	viper.Set("EnvironmentGammaMul", C.EnvironmentGammaMul)
	viper.Set("StartingSanityMul", C.StartingSanityMul)
	viper.Set("SanityDrainRateMul", C.SanityDrainRateMul)
	viper.Set("HealthDrainRateMul", C.HealthDrainRateMul)
	viper.Set("HealthRecoveryRateMul", C.HealthRecoveryRateMul)
	viper.Set("PlayerSpeedMul", C.PlayerSpeedMul)
	viper.Set("EvidenceVisibilityMul", C.EvidenceVisibilityMul)
	viper.Set("EquipmentSensitivityMul", C.EquipmentSensitivityMul)
	viper.Set("AttractiveInfluenceMul", C.AttractiveInfluenceMul)
	viper.Set("RepulsiveInfluenceMul", C.RepulsiveInfluenceMul)
	viper.Set("DestinationSampleCount", C.DestinationSampleCount)
	viper.Set("VanAutoOpen", C.VanAutoOpen)
	viper.Set("DefaultVanTab", C.DefaultVanTab)
	viper.Set("InitialGear", C.InitialGear)
	viper.Set("GhostSetSubset", C.GhostSetSubset)
	viper.Set("TruckGearList", C.TruckGearList)
	viper.Set("TutorialChapter", C.TutorialChapter)

	return viper.WriteConfig()
}

// Watch starts watching config.toml for changes and calls the callback
// on reload. Returns a stop function to cancel watching. Only one
// watcher can be active at a time; calling Watch again replaces the
// callback but keeps the same underlying file watcher, avoiding viper
// race conditions.
func Watch(callback ReloadCallback) (stop func(), err error) {
	watcherMu.Lock()
	defer watcherMu.Unlock()

	if !watcherActive {
		ctx, cancel := context.WithCancel(context.Background())
		watcherCtx = ctx
		watcherCancel = cancel
		currentCallback = callback
		watcherActive = true

		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			watcherMu.Lock()
			cb := currentCallback
			ctx := watcherCtx
			watcherMu.Unlock()

			if ctx != nil {
				select {
				case <-ctx.Done():
					return
				default:
				}
			}

			mu.Lock()
			old := C
			var newProfile DifficultyProfile
			if err := viper.Unmarshal(&newProfile); err == nil {
				C = newProfile
				mu.Unlock()
				if cb != nil {
					cb(old, newProfile)
				}
			} else {
				mu.Unlock()
			}
		})
	} else {
		currentCallback = callback
	}

	return func() {
		watcherMu.Lock()
		defer watcherMu.Unlock()
		if watcherCancel != nil {
			watcherCancel()
			watcherCancel = nil
			watcherCtx = nil
		}
		watcherActive = false
		currentCallback = nil
	}, nil
}

// Get returns a copy of the current difficulty profile safely.
func Get() DifficultyProfile {
	mu.RLock()
	defer mu.RUnlock()
	return C
}

// Set updates the difficulty profile safely.
func Set(p DifficultyProfile) {
	mu.Lock()
	C = p
	mu.Unlock()
}

// internal/config/settings.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConfigFileName is looked up in the directory passed to Load.
const ConfigFileName = "tanks.cfg.json"

// Arena holds the tunables for map generation.
type Arena struct {
	Width    int     `json:"width" mapstructure:"width"`
	Height   int     `json:"height" mapstructure:"height"`
	Fullness float64 `json:"fullness" mapstructure:"fullness"`
	Seed     uint64  `json:"seed" mapstructure:"seed"`
}

// Tanks holds the tunables for spawned tanks.
type Tanks struct {
	MaxAmmo int `json:"maxAmmo" mapstructure:"maxAmmo"`
	AICount int `json:"aiCount" mapstructure:"aiCount"`
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("arena.width", 32)
	viper.SetDefault("arena.height", 20)
	viper.SetDefault("arena.fullness", 0.3)
	viper.SetDefault("arena.seed", 1)

	viper.SetDefault("tanks.maxAmmo", DefaultMaxAmmo)
	viper.SetDefault("tanks.aiCount", 3)
}

// Load sets the defaults and reads the JSON config file from configDir.
// Defaults stay in effect when the file cannot be read.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LogLevel returns the configured logrus level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// ArenaSettings returns the arena section.
func ArenaSettings() Arena {
	return Arena{
		Width:    viper.GetInt("arena.width"),
		Height:   viper.GetInt("arena.height"),
		Fullness: viper.GetFloat64("arena.fullness"),
		Seed:     viper.GetUint64("arena.seed"),
	}
}

// TankSettings returns the tanks section.
func TankSettings() Tanks {
	return Tanks{
		MaxAmmo: viper.GetInt("tanks.maxAmmo"),
		AICount: viper.GetInt("tanks.aiCount"),
	}
}

// Validate reports settings the generator and world cannot work with.
func (a Arena) Validate() error {
	if a.Width < 3 || a.Height < 3 {
		return fmt.Errorf("arena must be at least 3x3, got %dx%d", a.Width, a.Height)
	}
	if a.Fullness < 0 || a.Fullness > 1 {
		return fmt.Errorf("arena fullness must be within [0, 1], got %v", a.Fullness)
	}
	return nil
}

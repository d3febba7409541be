package tween

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const defaultPoolWarnThreshold = 1000

// Config configures a Scheduler. The zero value is usable; DefaultConfig
// fills in the recommended warning threshold.
type Config struct {
	// Prewarm is the number of execution contexts created up front.
	Prewarm int `yaml:"prewarm" validate:"gte=0"`

	// MaxStep caps the frame delta passed to Update, in seconds, so a long
	// hitch does not skip most of a tween. Zero disables the cap.
	MaxStep float64 `yaml:"max_step" validate:"gte=0"`

	// Debug logs context acquisition and release at debug level.
	Debug bool `yaml:"debug"`

	// RecoverPanics recovers panics raised by tween callbacks, reports them
	// as *PanicError and stops only the offending tween.
	RecoverPanics bool `yaml:"recover_panics"`

	// PoolWarnThreshold logs a warning whenever the context pool grows past
	// this many entries. Zero disables the warning.
	PoolWarnThreshold int `yaml:"pool_warn_threshold" validate:"gte=0"`

	// Logger receives scheduler logs. Nil discards them.
	Logger *zerolog.Logger `yaml:"-" validate:"-"`

	// Registry resolves interpolators for tweens created on the scheduler.
	// Nil uses NewRegistry().
	Registry *Registry `yaml:"-" validate:"-"`

	// ErrorHandler receives recovered callback panics. Nil logs them at error
	// level.
	ErrorHandler func(error) `yaml:"-" validate:"-"`
}

// DefaultConfig returns the configuration used by NewScheduler when callers
// have no preferences.
func DefaultConfig() Config {
	return Config{PoolWarnThreshold: defaultPoolWarnThreshold}
}

var configValidator = validator.New()

// LoadConfig parses a YAML scheduler configuration. Fields absent from data
// keep their DefaultConfig values.
//
//	prewarm: 16
//	max_step: 0.1
//	debug: true
//	recover_panics: true
//	pool_warn_threshold: 256
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse tween config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports out-of-range fields.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid tween config: %w", err)
	}
	return nil
}

package watch

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/marktriggs/globby/pkg/configutils"
	"github.com/marktriggs/globby/pkg/logging"
)

// ConfigKey is the root configuration key (in Viper) for this module.
const ConfigKey = "watch"

// DefaultSyncPeriod is the interval between full re-listings when the
// configuration does not set one.
const DefaultSyncPeriod = 10 * time.Second

type Config struct {
	Logger logging.Interface

	// Pattern is the glob whose matches are re-listed on every sync.
	Pattern string `mapstructure:"pattern" validate:"required,startswith=/"`

	// SyncPeriod bounds how stale a snapshot can get when no filesystem
	// events arrive.
	SyncPeriod time.Duration `mapstructure:"sync_period"`

	// DisableFsnotify turns off the directory event trigger, leaving only
	// the periodic re-listing.
	DisableFsnotify bool `mapstructure:"disable_fsnotify"`
}

type Option func(*Config) error

// Apply applies the given options to the configuration.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}

		if err := o(c); err != nil {
			return err
		}
	}
	return nil
}

// defaultConfig returns a new configuration with default values.
func defaultConfig() *Config {
	return &Config{
		SyncPeriod: DefaultSyncPeriod,
	}
}

// NewWatchConfig builds and returns a new configuration from the given options.
func NewWatchConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithLogger sets the logger for the configuration.
func WithLogger(logger logging.Interface) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithViper reads the "watch" subtree of the given viper into the
// configuration.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		*c = *defaultConfig()
		if err := configutils.BindEnvsRecursive(v, c, ConfigKey); err != nil {
			return fmt.Errorf("error occurred when binding environment variables: %+v", err)
		}

		if err := v.UnmarshalKey(ConfigKey, c); err != nil {
			return fmt.Errorf("error occurred when unmarshalling config: %+v", err)
		}
		return nil
	}
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.SyncPeriod <= 0 {
		return fmt.Errorf("sync_period must be positive, not %s", c.SyncPeriod)
	}
	return nil
}

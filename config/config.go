package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/igris/builder"
	"github.com/katalvlaran/igris/topology"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "IGRIS"

// Configuration keys.
const (
	KeyServerAddress      = "server.address"
	KeyServerReadTimeout  = "server.read_timeout"
	KeyServerWriteTimeout = "server.write_timeout"
	KeyLogLevel           = "log_level"
	KeyRewiringProb       = "generator.rewiring_prob"
	KeyHubConnectivity    = "generator.hub_connectivity"
	KeyRewirePolicy       = "generator.rewire_policy"
	KeySeed               = "generator.seed"
	KeyActivityInterval   = "activity.interval"
	KeyActivitySampleSize = "activity.sample_size"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Activity  ActivityConfig  `mapstructure:"activity" yaml:"activity"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address      string        `mapstructure:"address" yaml:"address" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"gt=0"`
}

// GeneratorConfig holds the default generation parameters. Seed 0 means a
// fresh time-based seed per generation.
type GeneratorConfig struct {
	RewiringProb    float64 `mapstructure:"rewiring_prob" yaml:"rewiring_prob" validate:"gte=0,lte=1"`
	HubConnectivity int     `mapstructure:"hub_connectivity" yaml:"hub_connectivity" validate:"gte=1,lte=20"`
	RewirePolicy    string  `mapstructure:"rewire_policy" yaml:"rewire_policy" validate:"oneof=drop resample"`
	Seed            int64   `mapstructure:"seed" yaml:"seed"`
}

// ActivityConfig paces the activity stream.
type ActivityConfig struct {
	Interval   time.Duration `mapstructure:"interval" yaml:"interval" validate:"gt=0"`
	SampleSize int           `mapstructure:"sample_size" yaml:"sample_size" validate:"gte=1,lte=100"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		LogLevel: "info",
		Generator: GeneratorConfig{
			RewiringProb:    0.1,
			HubConnectivity: 4,
			RewirePolicy:    builder.RewireDrop.String(),
		},
		Activity: ActivityConfig{
			Interval:   2 * time.Second,
			SampleSize: 5,
		},
	}
}

// SetDefaults registers Default() with v so that environment variables can
// override every key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyServerAddress, d.Server.Address)
	v.SetDefault(KeyServerReadTimeout, d.Server.ReadTimeout)
	v.SetDefault(KeyServerWriteTimeout, d.Server.WriteTimeout)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyRewiringProb, d.Generator.RewiringProb)
	v.SetDefault(KeyHubConnectivity, d.Generator.HubConnectivity)
	v.SetDefault(KeyRewirePolicy, d.Generator.RewirePolicy)
	v.SetDefault(KeySeed, d.Generator.Seed)
	v.SetDefault(KeyActivityInterval, d.Activity.Interval)
	v.SetDefault(KeyActivitySampleSize, d.Activity.SampleSize)
}

// NewViper returns a viper instance with defaults and environment binding.
// A non-empty path is read as the configuration file.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return v, nil
}

// Load reads the file at path (optional) and decodes a validated Config.
func Load(path string) (*Config, *viper.Viper, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// FromViper decodes and validates the current state of v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Generator.RewirePolicy = strings.ToLower(cfg.Generator.RewirePolicy)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s must be %s %s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}

// GeneratorOptions turns the generator section into topology options.
func (g GeneratorConfig) GeneratorOptions() ([]topology.Option, error) {
	policy, err := builder.ParseRewirePolicy(g.RewirePolicy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []topology.Option{topology.WithRewirePolicy(policy)}
	if g.Seed != 0 {
		opts = append(opts, topology.WithSeed(g.Seed))
	}
	return opts, nil
}

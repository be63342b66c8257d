// Package config loads the rwseg command-line configuration.
//
// A Config is read from YAML, completed with defaults and validated with
// struct tags. Command-line flags override individual fields afterwards; call
// Validate again after overriding.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rwseg/amg"
	"github.com/katalvlaran/rwseg/randomwalker"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root document.
type Config struct {
	Solver    Solver    `yaml:"solver"`
	Multigrid Multigrid `yaml:"multigrid"`
	Logging   Logging   `yaml:"logging"`
	Metrics   Metrics   `yaml:"metrics"`
}

// Solver mirrors the randomwalker options.
type Solver struct {
	Mode              string  `yaml:"mode" validate:"oneof=bf cg cg_j cg_mg"`
	Tolerance         float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
	MaxIterations     int     `yaml:"max_iterations" validate:"gte=0"`
	Workers           int     `yaml:"workers" validate:"gte=0"`
	Clamp             bool    `yaml:"clamp"`
	FullProbabilities bool    `yaml:"full_probabilities"`
}

// Multigrid mirrors the amg options. Disabled forces the Jacobi fallback.
type Multigrid struct {
	Disabled  bool    `yaml:"disabled"`
	Theta     float64 `yaml:"theta" validate:"gte=0,lte=1"`
	MaxLevels int     `yaml:"max_levels" validate:"gte=1"`
	MaxCoarse int     `yaml:"max_coarse" validate:"gte=1"`
}

// Logging selects the zap logger flavor.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Metrics names the Prometheus namespace of the solve metrics dump.
type Metrics struct {
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: Solver{
			Mode:              randomwalker.DefaultMode.String(),
			Tolerance:         randomwalker.DefaultTolerance,
			FullProbabilities: randomwalker.DefaultFullProbabilities,
			Clamp:             randomwalker.DefaultClamp,
		},
		Multigrid: Multigrid{
			Theta:     amg.DefaultStrengthTheta,
			MaxLevels: amg.DefaultMaxLevels,
			MaxCoarse: amg.DefaultMaxCoarse,
		},
		Logging: Logging{Level: "info"},
		Metrics: Metrics{Namespace: "rwseg"},
	}
}

// Load reads path, fills unset fields from Default and validates the result.
// An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if cfg, err = Parse(data); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every struct tag and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// SolverOptions translates the configuration into randomwalker options.
// The logger and observer are supplied by the caller.
func (c Config) SolverOptions() ([]randomwalker.Option, error) {
	mode, err := randomwalker.ParseMode(c.Solver.Mode)
	if err != nil {
		return nil, err
	}
	opts := []randomwalker.Option{
		randomwalker.WithMode(mode),
		randomwalker.WithTolerance(c.Solver.Tolerance),
		randomwalker.WithMaxIterations(c.Solver.MaxIterations),
		randomwalker.WithWorkers(c.Solver.Workers),
		randomwalker.WithClamp(c.Solver.Clamp),
		randomwalker.WithFullProbabilities(c.Solver.FullProbabilities),
	}
	if c.Multigrid.Disabled {
		opts = append(opts, randomwalker.WithMultigrid(nil))
	} else {
		opts = append(opts, randomwalker.WithMultigrid(randomwalker.AMGBackend(
			amg.WithStrengthTheta(c.Multigrid.Theta),
			amg.WithMaxLevels(c.Multigrid.MaxLevels),
			amg.WithMaxCoarse(c.Multigrid.MaxCoarse),
		)))
	}

	return opts, nil
}

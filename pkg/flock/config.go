package flock

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed flock.schema.json
var configSchema string

const configSchemaURL = "mem://flock/flock.schema.json"

// RuleSet switches steering rules on or off for a whole run.
// A disabled rule contributes nothing to the velocity.
type RuleSet struct {
	Cohesion   bool `json:"cohesion"`
	Alignment  bool `json:"alignment"`
	Separation bool `json:"separation"`
}

// Config holds the tunable parameters of one simulation run.
// It is copied into the Engine at construction and never changes afterwards.
type Config struct {
	// World Dimensions, used by the boundary correction
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	Population int    `json:"population"`
	Seed       uint64 `json:"seed"`

	// Perception
	VisionRadius     float64 `json:"visionRadius"`     // diameter of the vision disc, agents see VisionRadius/2 away
	SeparationRadius float64 `json:"separationRadius"` // personal space

	// Rule weights
	CohesionWeight   float64 `json:"cohesionWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	SeparationWeight float64 `json:"separationWeight"`

	// Physics
	MinSpeed      float64 `json:"minSpeed"`
	MaxSpeed      float64 `json:"maxSpeed"`
	BoundaryNudge float64 `json:"boundaryNudge"` // velocity added per decision while out of bounds

	// Decision throttling
	DecisionInterval int  `json:"decisionInterval"` // coast ticks between two decisions
	StaggerDecisions bool `json:"staggerDecisions"` // randomise the first decision tick per agent

	Rules RuleSet `json:"rules"`
}

// DefaultConfig returns a 1000x1000 world with 200 agents and all rules on.
func DefaultConfig() Config {
	return Config{
		WorldWidth:       1000,
		WorldHeight:      1000,
		Population:       200,
		Seed:             1,
		VisionRadius:     250,
		SeparationRadius: 60,
		CohesionWeight:   0.01,
		AlignmentWeight:  0.125,
		SeparationWeight: 0.01,
		MinSpeed:         2.5,
		MaxSpeed:         7,
		BoundaryNudge:    1,
		DecisionInterval: 5,
		StaggerDecisions: true,
		Rules: RuleSet{
			Cohesion:   true,
			Alignment:  true,
			Separation: true,
		},
	}
}

// Validate reports every constraint the configuration violates.
// The returned error wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Population > 0, "population must be positive, got %d", c.Population)
	check(isPositive(c.WorldWidth), "worldWidth must be positive, got %v", c.WorldWidth)
	check(isPositive(c.WorldHeight), "worldHeight must be positive, got %v", c.WorldHeight)
	check(isPositive(c.VisionRadius), "visionRadius must be positive, got %v", c.VisionRadius)
	check(isFinite(c.SeparationRadius) && c.SeparationRadius >= 0, "separationRadius must not be negative, got %v", c.SeparationRadius)
	check(isPositive(c.MinSpeed), "minSpeed must be positive, got %v", c.MinSpeed)
	check(isPositive(c.MaxSpeed), "maxSpeed must be positive, got %v", c.MaxSpeed)
	check(c.MinSpeed <= c.MaxSpeed, "minSpeed %v exceeds maxSpeed %v", c.MinSpeed, c.MaxSpeed)
	check(c.DecisionInterval >= 1, "decisionInterval must be at least 1, got %d", c.DecisionInterval)
	check(isFinite(c.BoundaryNudge) && c.BoundaryNudge >= 0, "boundaryNudge must not be negative, got %v", c.BoundaryNudge)
	check(isFinite(c.CohesionWeight), "cohesionWeight must be finite")
	check(isFinite(c.AlignmentWeight), "alignmentWeight must be finite")
	check(isFinite(c.SeparationWeight), "separationWeight must be finite")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.Join(errs...))
}

// Warnings lists settings that are legal but unusual.
func (c Config) Warnings() []string {
	var w []string
	if c.SeparationRadius >= c.VisionRadius/2 {
		w = append(w, fmt.Sprintf("separationRadius %v is not smaller than the vision range %v, every perceived neighbour repels", c.SeparationRadius, c.VisionRadius/2))
	}
	if !c.Rules.Cohesion && !c.Rules.Alignment && !c.Rules.Separation {
		w = append(w, "all steering rules are disabled, agents fly straight")
	}
	return w
}

// LoadConfig reads a JSON or TOML (.toml extension) configuration file, validates it
// against the embedded schema and overlays it on DefaultConfig. Keys missing from the
// file keep their default value.
func LoadConfig(configFile string) (Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		return ParseTOMLConfig(b)
	}
	return ParseConfig(b)
}

// ParseTOMLConfig accepts the same keys as ParseConfig, with rules as a [rules] table.
func ParseTOMLConfig(data []byte) (Config, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Config{}, fmt.Errorf("failed to decode config toml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return Config{}, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return ParseConfig(b)
}

// ParseConfig is LoadConfig for an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return Config{}, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v any
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return Config{}, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isPositive(f float64) bool {
	return isFinite(f) && f > 0
}

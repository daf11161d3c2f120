// Package envconfig provides configuration structs for creating
// gridworld environments by name. Environment configurations in this
// package are JSON serializable.
package envconfig

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/samuelfneumann/gridworlds/environment"
	"github.com/samuelfneumann/gridworlds/environment/gridworld"
	ts "github.com/samuelfneumann/gridworlds/timestep"
)

// ErrUnknownEnvironment is returned when creating an environment with
// a name that has not been registered
var ErrUnknownEnvironment = errors.New("unknown environment")

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld         EnvName = "GridWorld-v0"
	SlipperyGridWorld EnvName = "SlipperyGridWorld-v0"
	WindyGridWorld    EnvName = "WindyGridWorld-v0"
	CliffGridWorld    EnvName = "CliffGridWorld-v0"
)

// Factory returns the gridworld configuration of a named environment.
// Dimensions of zero select the environment's default dimensions.
type Factory func(width, height int, slippery bool) gridworld.Config

// registered maps environment names to their factories
var registered = map[EnvName]Factory{
	GridWorld: func(w, h int, slippery bool) gridworld.Config {
		w, h = dims(w, h, gridworld.DefaultWidth, gridworld.DefaultHeight)
		return gridworld.GridWorldConfig(w, h, slippery)
	},
	SlipperyGridWorld: func(w, h int, _ bool) gridworld.Config {
		w, h = dims(w, h, gridworld.DefaultWidth, gridworld.DefaultHeight)
		return gridworld.SlipperyConfig(w, h)
	},
	WindyGridWorld: func(w, h int, _ bool) gridworld.Config {
		w, h = dims(w, h, gridworld.DefaultWindyWidth,
			gridworld.DefaultWindyHeight)
		return gridworld.WindyConfig(w, h)
	},
	CliffGridWorld: func(w, h int, slippery bool) gridworld.Config {
		w, h = dims(w, h, gridworld.DefaultCliffWidth,
			gridworld.DefaultCliffHeight)
		return gridworld.CliffConfig(w, h, slippery)
	},
}

func dims(w, h, defaultW, defaultH int) (int, int) {
	if w == 0 {
		w = defaultW
	}
	if h == 0 {
		h = defaultH
	}
	return w, h
}

// Register registers a new named environment. Registering a name that
// already exists replaces its factory.
func Register(name EnvName, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("register: nil factory for %v", name))
	}
	log.Printf("Registering: %v", name)
	registered[name] = f
}

// Registered returns the names of all registered environments in
// sorted order
func Registered() []EnvName {
	names := make([]EnvName, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Config implements a specific configuration of a named environment.
// Width and Height of zero select the default dimensions of the
// environment. Slippery is ignored by environments that are always or
// never slippery. An EpisodeCutoff of zero never cuts episodes off.
type Config struct {
	Environment   EnvName `json:"environment"`
	Width         int     `json:"width,omitempty"`
	Height        int     `json:"height,omitempty"`
	Slippery      bool    `json:"slippery,omitempty"`
	EpisodeCutoff uint    `json:"episodeCutoff,omitempty"`
	Discount      float64 `json:"discount"`
}

// NewConfig returns a new environment Config with default dimensions
func NewConfig(envName EnvName, slippery bool, episodeCutoff uint,
	discount float64) Config {
	return Config{
		Environment:   envName,
		Slippery:      slippery,
		EpisodeCutoff: episodeCutoff,
		Discount:      discount,
	}
}

// GridWorldConfig returns the gridworld configuration that the Config
// describes
func (c Config) GridWorldConfig() (gridworld.Config, error) {
	f, ok := registered[c.Environment]
	if !ok {
		return gridworld.Config{}, fmt.Errorf("gridWorldConfig: %w: %v",
			ErrUnknownEnvironment, c.Environment)
	}
	return f(c.Width, c.Height, c.Slippery), nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (*gridworld.GridWorld, ts.TimeStep,
	error) {
	conf, err := c.GridWorldConfig()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	g, step, err := gridworld.New(conf, c.Discount, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: could not create "+
			"%v: %w", c.Environment, err)
	}

	if c.EpisodeCutoff > 0 {
		g.SetEnder(environment.NewStepLimit(int(c.EpisodeCutoff)))
	}
	return g, step, nil
}

// Make creates the named environment with default dimensions, no
// episode cutoff, and a discount of 1
func Make(name EnvName, seed uint64) (*gridworld.GridWorld, ts.TimeStep,
	error) {
	return NewConfig(name, false, 0, 1.0).Create(seed)
}

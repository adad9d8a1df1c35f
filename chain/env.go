// Package chain implements the NChain environment: an agent walks a linear
// chain of states with two actions and a slip probability of executing the
// opposite of the requested action. Walking forward pays nothing until the
// end of the chain, where repeating forward pays a large reward; backward
// returns to the start for a small reward.
//
// The environment is described in section 6.1 of "A Bayesian Framework for
// Reinforcement Learning" by Malcolm Strens (2000).
package chain

import (
	"errors"
	"fmt"
	"time"

	erand "golang.org/x/exp/rand"
)

// ErrInvalidAction is returned by Step for actions outside {Forward, Backward}.
var ErrInvalidAction = errors.New("action outside the action space")

// Config parameterizes the chain. Values are accepted as given; degenerate
// configurations such as Length=0 are not guarded.
type Config struct {
	// Length is the number of states in the chain.
	Length int
	// Slip is the probability that the executed action is the opposite of
	// the requested one.
	Slip float64
	// SmallReward is paid whenever the executed action is Backward.
	SmallReward float64
	// LargeReward is paid for executing Forward at the end of the chain.
	LargeReward float64
	// MaxEpisodeSteps is the step budget after which an episode terminates.
	MaxEpisodeSteps int
}

func DefaultConfig() Config {
	return Config{
		Length:          5,
		Slip:            0.2,
		SmallReward:     2,
		LargeReward:     10,
		MaxEpisodeSteps: 1000,
	}
}

// Environment holds the mutable state of one chain instance. It is not safe
// for concurrent use; it is meant to be driven by a single agent loop.
type Environment struct {
	cfg   Config
	model *Model

	state int
	steps int
	rand  *erand.Rand
}

func New(cfg Config) *Environment {
	e := &Environment{
		cfg:   cfg,
		model: NewModel(cfg),
	}
	e.Seed()
	return e
}

func (e *Environment) Config() Config {
	return e.cfg
}

// Model returns the static transition table of this environment.
func (e *Environment) Model() *Model {
	return e.model
}

func (e *Environment) ActionSpace() Discrete {
	return Discrete{N: NumActions}
}

func (e *Environment) ObservationSpace() Discrete {
	return Discrete{N: e.cfg.Length}
}

// Seed replaces the environment's random source. With no argument the new
// source is seeded from the clock. The seed actually used is returned as a
// single-element slice so a run can be reproduced. Neither the current state
// nor the step counter are touched.
func (e *Environment) Seed(seed ...uint64) []uint64 {
	s := uint64(time.Now().UnixNano())
	if len(seed) > 0 {
		s = seed[0]
	}
	e.rand = erand.New(erand.NewSource(s))
	return []uint64{s}
}

// Reset moves the agent back to the start of the chain and returns the
// observation. The step counter is deliberately left alone: it is cleared
// only when an episode runs out its budget in Step.
func (e *Environment) Reset() int {
	e.state = 0
	return e.state
}

// Step executes one action. The returned tuple is the new observation, the
// reward, whether the episode hit its step budget, and an empty info map.
// An action outside the action space fails with ErrInvalidAction and leaves
// the environment untouched.
func (e *Environment) Step(action int) (int, float64, bool, map[string]interface{}, error) {
	if !e.ActionSpace().Contains(action) {
		return e.state, 0, false, nil, fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}

	executed := action
	if e.rand.Float64() < e.cfg.Slip {
		executed = 1 - action
	}

	var reward float64
	switch {
	case executed == Backward:
		reward = e.cfg.SmallReward
		e.state = 0
	case e.state < e.cfg.Length-1:
		e.state++
	default:
		// Forward at the end of the chain: stay and collect.
		reward = e.cfg.LargeReward
	}

	done := false
	e.steps++
	if e.steps == e.cfg.MaxEpisodeSteps {
		done = true
		e.steps = 0
	}

	return e.state, reward, done, map[string]interface{}{}, nil
}

package nchain

import (
	"fmt"
	"strconv"

	"github.com/zeu5/nchain-rl-testing/chain"
	"github.com/zeu5/nchain-rl-testing/core"
)

// Position is the observed chain index.
type Position struct {
	Index int
}

var _ core.State = &Position{}

func (p *Position) Hash() string {
	return strconv.Itoa(p.Index)
}

func (p *Position) Actions() []core.Action {
	return AllMoves
}

type Move struct {
	Action int
}

var _ core.Action = &Move{}

func (m *Move) Hash() string {
	if m.Action == chain.Forward {
		return "Forward"
	}
	return "Backward"
}

var (
	MoveForward                = &Move{chain.Forward}
	MoveBackward               = &Move{chain.Backward}
	AllMoves     []core.Action = []core.Action{MoveForward, MoveBackward}
)

// Env binds a chain.Environment to the experiment framework.
type Env struct {
	env *chain.Environment
}

var _ core.Environment = &Env{}

func NewEnv(env *chain.Environment) *Env {
	return &Env{env: env}
}

func (e *Env) Reset() (core.State, error) {
	return &Position{Index: e.env.Reset()}, nil
}

func (e *Env) Step(a core.Action, _ *core.StepContext) (*core.StepResult, error) {
	move, ok := a.(*Move)
	if !ok {
		return nil, fmt.Errorf("unexpected action type %T", a)
	}
	obs, reward, done, _, err := e.env.Step(move.Action)
	if err != nil {
		return nil, err
	}
	return &core.StepResult{
		State:  &Position{Index: obs},
		Reward: reward,
		Done:   done,
	}, nil
}

// ChainEnvConstructor builds one chain per worker, each seeded
// deterministically from the base seed and the instance number so that
// parallel experiments are reproducible and independent.
type ChainEnvConstructor struct {
	cfg      chain.Config
	baseSeed uint64
}

var _ core.EnvironmentConstructor = &ChainEnvConstructor{}

func NewChainEnvConstructor(cfg chain.Config, baseSeed uint64) *ChainEnvConstructor {
	return &ChainEnvConstructor{
		cfg:      cfg,
		baseSeed: baseSeed,
	}
}

func (c *ChainEnvConstructor) NewEnvironment(instance int) core.Environment {
	env := chain.New(c.cfg)
	env.Seed(c.baseSeed + uint64(instance))
	return NewEnv(env)
}

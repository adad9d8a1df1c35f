package chain

// Actions of the chain. Forward walks up the chain for no immediate reward,
// Backward returns to the start for a small one.
const (
	Forward  = 0
	Backward = 1

	NumActions = 2
)

// Transition is one weighted outcome of taking an action in a state.
type Transition struct {
	Prob      float64
	NextState int
	Reward    float64
}

// Model is the static transition/reward table of the chain, indexed by
// [state][action]. Each cell holds exactly two weighted outcomes whose
// probabilities sum to 1. Step does not consult the table, it samples the
// same slip-then-deterministic process directly; the table exists for
// model-based callers such as the value-iteration solver.
type Model struct {
	numStates   int
	transitions [][][2]Transition
}

func NewModel(cfg Config) *Model {
	m := &Model{
		numStates:   cfg.Length,
		transitions: make([][][2]Transition, cfg.Length),
	}
	for s := 0; s < cfg.Length; s++ {
		forwardReward := float64(0)
		forwardNext := s + 1
		if s == cfg.Length-1 {
			forwardReward = cfg.LargeReward
			forwardNext = s
		}
		m.transitions[s] = make([][2]Transition, NumActions)
		m.transitions[s][Forward] = [2]Transition{
			{Prob: 1 - cfg.Slip, NextState: forwardNext, Reward: forwardReward},
			{Prob: cfg.Slip, NextState: 0, Reward: cfg.SmallReward},
		}
		m.transitions[s][Backward] = [2]Transition{
			{Prob: 1 - cfg.Slip, NextState: 0, Reward: cfg.SmallReward},
			{Prob: cfg.Slip, NextState: forwardNext, Reward: forwardReward},
		}
	}
	return m
}

func (m *Model) NumStates() int {
	return m.numStates
}

// Outcomes returns the two weighted outcomes of taking action a in state s.
func (m *Model) Outcomes(s, a int) [2]Transition {
	return m.transitions[s][a]
}

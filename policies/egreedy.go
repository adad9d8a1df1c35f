package policies

import (
	"math/rand"
	"time"

	"github.com/zeu5/nchain-rl-testing/core"
)

// EGreedyPolicy is a tabular Q-learning policy with epsilon-greedy
// exploration. The update uses the observed reward:
//
//	q(s,a) <- (1-alpha)*q(s,a) + alpha*(r + gamma*max_a' q(s',a'))
type EGreedyPolicy struct {
	qTable   *QTable
	visits   *QTable
	alpha    float64
	discount float64
	epsilon  float64
	rand     *rand.Rand
}

var _ core.Policy = &EGreedyPolicy{}

func NewEGreedyPolicy(alpha, discount, epsilon float64) *EGreedyPolicy {
	return &EGreedyPolicy{
		qTable:   NewQTable(),
		visits:   NewQTable(),
		alpha:    alpha,
		discount: discount,
		epsilon:  epsilon,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *EGreedyPolicy) Record(path string) {
	e.qTable.Record(path)
}

func (e *EGreedyPolicy) Reset() {
	e.qTable = NewQTable()
	e.visits = NewQTable()
}

func (e *EGreedyPolicy) ResetEpisode(_ *core.EpisodeContext) {
}

func (e *EGreedyPolicy) PickAction(step *core.StepContext, state core.State, actions []core.Action) core.Action {
	if e.rand.Float64() < e.epsilon {
		i := e.rand.Intn(len(actions))
		return actions[i]
	}

	actionsMap := make(map[string]core.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := e.qTable.MaxAmong(state.Hash(), availableActions, 0)
	if maxAction == "" {
		return nil
	}
	return actionsMap[maxAction]
}

func (e *EGreedyPolicy) UpdateStep(sCtx *core.StepContext, state core.State, action core.Action, res *core.StepResult) {
	stateHash := state.Hash()
	actionHash := action.Hash()
	nextStateHash := res.State.Hash()
	t := e.visits.Get(stateHash, actionHash, 0) + 1
	e.visits.Set(stateHash, actionHash, t)

	_, nextStateVal := e.qTable.Max(nextStateHash, 0)
	if res.Done {
		nextStateVal = 0
	}
	curVal := e.qTable.Get(stateHash, actionHash, 0)

	newVal := (1-e.alpha)*curVal + e.alpha*(res.Reward+e.discount*nextStateVal)
	e.qTable.Set(stateHash, actionHash, newVal)
}

func (e *EGreedyPolicy) UpdateEpisode(_ *core.EpisodeContext) {
}

type EGreedyPolicyConstructor struct {
	alpha    float64
	discount float64
	epsilon  float64
}

var _ core.PolicyConstructor = &EGreedyPolicyConstructor{}

func NewEGreedyPolicyConstructor(alpha, discount, epsilon float64) *EGreedyPolicyConstructor {
	return &EGreedyPolicyConstructor{
		alpha:    alpha,
		discount: discount,
		epsilon:  epsilon,
	}
}

func (e *EGreedyPolicyConstructor) NewPolicy() core.Policy {
	return NewEGreedyPolicy(e.alpha, e.discount, e.epsilon)
}

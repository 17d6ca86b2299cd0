package regretmin

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrOutOfDomain reports a lookup of an information set or action that was
// not registered when the table was constructed. It indicates a mismatch
// between the table's registered domain and the game's actual reachable set,
// and is never retried.
var ErrOutOfDomain = errors.New("information set or action not registered")

// policy is the per-information-set bookkeeping: running-average regret,
// the current strategy, the accumulated strategy weights, and the number of
// regret updates applied. Slices are indexed by the table's action order.
type policy struct {
	regret      []float64
	strategy    []float64
	strategySum []float64
	visits      int
}

// PolicyTable owns one player's regret and strategy state across all of that
// player's information sets. The action set is global to the player: every
// information set shares the same registered actions. Tables are constructed
// once per player before any iterations and mutated in place across them;
// access is not synchronized, iterations must run sequentially.
type PolicyTable struct {
	actions     []Move
	actionIndex map[Move]int
	policies    map[InfoSetKey]*policy
}

// NewPolicyTable registers the player's full information-set and action sets
// and initializes every strategy to the uniform distribution, with regrets,
// strategy sums, and visit counts at zero. Empty inputs are a configuration
// error.
func NewPolicyTable(infoSets []InfoSetKey, actions []Move) (*PolicyTable, error) {
	if len(actions) == 0 {
		return nil, errors.New("policy table requires at least one action")
	}
	if len(infoSets) == 0 {
		return nil, errors.New("policy table requires at least one information set")
	}

	t := &PolicyTable{
		actions:     append([]Move(nil), actions...),
		actionIndex: make(map[Move]int, len(actions)),
		policies:    make(map[InfoSetKey]*policy, len(infoSets)),
	}
	for i, a := range actions {
		if _, ok := t.actionIndex[a]; ok {
			return nil, errors.Errorf("duplicate action %q", a)
		}
		t.actionIndex[a] = i
	}
	for _, info := range infoSets {
		if _, ok := t.policies[info]; ok {
			return nil, errors.Errorf("duplicate information set %q", info)
		}
		t.policies[info] = &policy{
			regret:      make([]float64, len(actions)),
			strategy:    uniformDist(len(actions)),
			strategySum: make([]float64, len(actions)),
		}
	}

	return t, nil
}

// Actions returns the player's global action set in registration order.
func (t *PolicyTable) Actions() []Move {
	return append([]Move(nil), t.actions...)
}

// GetStrategy returns the current probability of playing action at info.
func (t *PolicyTable) GetStrategy(info InfoSetKey, action Move) (float64, error) {
	p, err := t.lookup(info)
	if err != nil {
		return 0, err
	}
	i, ok := t.actionIndex[action]
	if !ok {
		return 0, errors.Wrapf(ErrOutOfDomain, "action %q", action)
	}
	return p.strategy[i], nil
}

// UpdateStrategy recomputes info's current strategy by regret matching and
// accumulates it into the strategy sum. Positive regret mass is normalized
// into a distribution; when no action has positive accumulated regret, the
// strategy falls back to uniform. The strategy-sum accumulation happens on
// every call, including the fallback branch. The walker calls this before
// the acting player expands info's actions, fixing the mixing probabilities
// for the current iteration.
func (t *PolicyTable) UpdateStrategy(info InfoSetKey) error {
	p, err := t.lookup(info)
	if err != nil {
		return err
	}

	var total float64
	for i, r := range p.regret {
		if r > 0 {
			p.strategy[i] = r
			total += r
		} else {
			p.strategy[i] = 0
		}
	}
	if total > 0 {
		floats.Scale(1/total, p.strategy)
	} else {
		setUniform(p.strategy)
	}

	floats.Add(p.strategySum, p.strategy)
	return nil
}

// UpdateRegret folds one traversal's counterfactual utilities into info's
// regret. oppReach is the product of the other player's action probabilities
// along the path to the node; chance contributes nothing to it because its
// outcome is forced per traversal rather than probability-weighted. baseline
// is the utility realized by the mixed strategy just played, from the acting
// player's viewpoint, and actionUtils holds each expanded action's resulting
// utility from the same viewpoint.
//
// The update is a running average over the information set's visit count,
//
//	regret[a] = (regret[a]*t + oppReach*(u(a) - baseline)) / (t+1)
//
// so long-run regret is an arithmetic mean of per-visit terms rather than the
// textbook cumulative sum. This changes convergence dynamics and is kept
// deliberately.
func (t *PolicyTable) UpdateRegret(info InfoSetKey, oppReach, baseline float64, actionUtils map[Move]float64) error {
	p, err := t.lookup(info)
	if err != nil {
		return err
	}

	tn := float64(p.visits)
	for a, u := range actionUtils {
		i, ok := t.actionIndex[a]
		if !ok {
			return errors.Wrapf(ErrOutOfDomain, "action %q", a)
		}
		p.regret[i] = (p.regret[i]*tn + oppReach*(u-baseline)) / (tn + 1)
	}
	p.visits++

	return nil
}

// StrategySum returns a copy of info's accumulated per-iteration strategy
// weights, the raw material for the time-averaged equilibrium strategy.
func (t *PolicyTable) StrategySum(info InfoSetKey) (map[Move]float64, error) {
	p, err := t.lookup(info)
	if err != nil {
		return nil, err
	}
	return t.asMap(p.strategySum), nil
}

// Regret returns a copy of info's running-average regrets, for diagnostics
// and convergence inspection. Values may be negative.
func (t *PolicyTable) Regret(info InfoSetKey) (map[Move]float64, error) {
	p, err := t.lookup(info)
	if err != nil {
		return nil, err
	}
	return t.asMap(p.regret), nil
}

// Visits returns the number of regret updates applied to info.
func (t *PolicyTable) Visits(info InfoSetKey) (int, error) {
	p, err := t.lookup(info)
	if err != nil {
		return 0, err
	}
	return p.visits, nil
}

// AverageStrategy returns info's normalized strategy sum, the time-averaged
// strategy that approximates the equilibrium. It is uniform for an
// information set that has never been updated.
func (t *PolicyTable) AverageStrategy(info InfoSetKey) (map[Move]float64, error) {
	p, err := t.lookup(info)
	if err != nil {
		return nil, err
	}

	total := floats.Sum(p.strategySum)
	if total <= 0 {
		return t.asMap(uniformDist(len(t.actions))), nil
	}
	avg := make([]float64, len(p.strategySum))
	copy(avg, p.strategySum)
	floats.Scale(1/total, avg)
	return t.asMap(avg), nil
}

func (t *PolicyTable) lookup(info InfoSetKey) (*policy, error) {
	p, ok := t.policies[info]
	if !ok {
		return nil, errors.Wrapf(ErrOutOfDomain, "information set %q", info)
	}
	return p, nil
}

func (t *PolicyTable) asMap(values []float64) map[Move]float64 {
	result := make(map[Move]float64, len(t.actions))
	for i, a := range t.actions {
		result[a] = values[i]
	}
	return result
}

func uniformDist(n int) []float64 {
	result := make([]float64, n)
	floats.AddConst(1.0/float64(n), result)
	return result
}

func setUniform(v []float64) {
	for i := range v {
		v[i] = 0
	}
	floats.AddConst(1.0/float64(len(v)), v)
}

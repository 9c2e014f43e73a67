package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns pre-arranged results in order so tests can assert
// exact outcomes of random draws. Results are not checked against the die size.
type ScriptedRoller struct {
	mu      sync.Mutex
	results []int
	calls   []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that will return results in order
func NewScriptedRoller(results ...int) *ScriptedRoller {
	return &ScriptedRoller{results: results}
}

// Push appends more results to the script
func (r *ScriptedRoller) Push(results ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, results...)
}

// Roll returns the next scripted result, or an error when the script is exhausted
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, size)
	if len(r.results) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted on d%d", size)
	}
	next := r.results[0]
	r.results = r.results[1:]
	return next, nil
}

// RollN returns the next count scripted results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.calls))
	copy(out, r.calls)
	return out
}

// Remaining returns how many scripted results are unused
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// ConstantRoller always returns the same face, capped at the die size
type ConstantRoller int

// Roll returns the constant
func (c ConstantRoller) Roll(size int) (int, error) {
	if int(c) > size {
		return size, nil
	}
	return int(c), nil
}

// RollN returns count copies of the constant
func (c ConstantRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = c.Roll(size)
	}
	return out, nil
}

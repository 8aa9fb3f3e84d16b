// File: graph.go
// Role: thread-safe in-memory Kripke structure: states + directed transitions.
// Adapted from lvlath/core's Graph (types.go/methods.go): same split-lock
// discipline (muState guards the state set, muAdj guards the adjacency),
// same "AddEdge auto-adds missing endpoints" ergonomics, generalised from
// string vertex IDs to integer-vector states.

package kripkegraph

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Graph is the in-memory Kripke structure: a fixed, ordered set of
// Variables, a set of States (tuples over those variables), and a directed
// Transitions relation between states.
//
// muState protects variables/states; muAdj protects outAdj/inAdj. Both are
// sync.RWMutex so concurrent readers never block each other, mirroring
// core.Graph's muVert/muEdgeAdj split.
type Graph struct {
	muState sync.RWMutex
	muAdj   sync.RWMutex

	id uuid.UUID

	variables []Variable
	varIndex  map[string]int

	states map[State][]int // State -> decoded coordinate tuple
	order  []State         // insertion order, for stable iteration

	outAdj map[State]map[State]struct{}
	inAdj  map[State]map[State]struct{}
}

// NewGraph creates an empty Kripke structure over the given ordered
// Variables. Returns ErrEmptyVariables, ErrDuplicateVariable, or
// ErrNegativeMax for malformed input.
// Complexity: O(n) where n = len(vars).
func NewGraph(vars ...Variable) (*Graph, error) {
	if len(vars) == 0 {
		return nil, ErrEmptyVariables
	}
	idx := make(map[string]int, len(vars))
	for i, v := range vars {
		if v.Max < 0 {
			return nil, ErrNegativeMax
		}
		if _, dup := idx[v.Name]; dup {
			return nil, ErrDuplicateVariable
		}
		idx[v.Name] = i
	}

	return &Graph{
		id:        uuid.New(),
		variables: append([]Variable(nil), vars...),
		varIndex:  idx,
		states:    make(map[State][]int),
		outAdj:    make(map[State]map[State]struct{}),
		inAdj:     make(map[State]map[State]struct{}),
	}, nil
}

// ID returns the graph's identity, generated once at construction. It has
// no bearing on evaluation; callers use it to correlate log lines or
// result tables across multiple graphs in the same process.
func (g *Graph) ID() uuid.UUID {
	return g.id
}

// Variables returns the graph's declared variables, in index order.
// Complexity: O(n).
func (g *Graph) Variables() []Variable {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return append([]Variable(nil), g.variables...)
}

// MaxValues returns the per-axis inclusive upper bounds, in variable order.
// Complexity: O(n).
func (g *Graph) MaxValues() []int {
	g.muState.RLock()
	defer g.muState.RUnlock()

	out := make([]int, len(g.variables))
	for i, v := range g.variables {
		out[i] = v.Max
	}

	return out
}

// validateCoordinates checks values has the right arity and every
// coordinate is within [0, max_v]. Caller must hold muState (read lock ok,
// since g.variables is immutable after construction).
func (g *Graph) validateCoordinates(values []int) error {
	if len(values) != len(g.variables) {
		return ErrArityMismatch
	}
	for i, v := range values {
		if v < 0 || v > g.variables[i].Max {
			return ErrOutOfRangeCoordinate
		}
	}

	return nil
}

// AddState inserts a state with the given coordinate tuple, returning its
// canonical State key. If the state already exists, this is a no-op
// returning the existing key (idempotent, like core.Graph.AddVertex).
// Returns ErrArityMismatch or ErrOutOfRangeCoordinate for malformed input.
// Complexity: O(n) where n = number of variables.
func (g *Graph) AddState(values []int) (State, error) {
	g.muState.Lock()
	defer g.muState.Unlock()

	if err := g.validateCoordinates(values); err != nil {
		return "", err
	}
	key := encodeState(values)
	if _, exists := g.states[key]; exists {
		return key, nil
	}
	g.states[key] = append([]int(nil), values...)
	g.order = append(g.order, key)

	g.muAdj.Lock()
	if g.outAdj[key] == nil {
		g.outAdj[key] = make(map[State]struct{})
	}
	if g.inAdj[key] == nil {
		g.inAdj[key] = make(map[State]struct{})
	}
	g.muAdj.Unlock()

	return key, nil
}

// HasState reports whether s exists in the graph.
// Complexity: O(1).
func (g *Graph) HasState(s State) bool {
	g.muState.RLock()
	defer g.muState.RUnlock()
	_, ok := g.states[s]

	return ok
}

// States returns every state in the graph, in insertion order.
// Complexity: O(|States|).
func (g *Graph) States() []State {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return append([]State(nil), g.order...)
}

// AddTransition adds a directed edge from -> to. Both endpoints are
// auto-added (as AddState would) if absent, mirroring core.Graph.AddEdge's
// "ensure endpoints exist" ergonomics. Self-loops are permitted (required
// for the sink-state workaround described in package doc).
// Returns ErrArityMismatch or ErrOutOfRangeCoordinate for malformed tuples.
// Complexity: O(n).
func (g *Graph) AddTransition(from, to []int) error {
	fromKey, err := g.AddState(from)
	if err != nil {
		return err
	}
	toKey, err := g.AddState(to)
	if err != nil {
		return err
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.outAdj[fromKey][toKey] = struct{}{}
	g.inAdj[toKey][fromKey] = struct{}{}

	return nil
}

// Successors returns the states reachable from s via one transition, sorted
// lexicographically by canonical key for deterministic iteration (mirroring
// core's "sort by Edge.ID" determinism discipline). Returns ErrStateNotFound
// if s is absent.
// Complexity: O(d log d) where d = out-degree of s.
func (g *Graph) Successors(s State) ([]State, error) {
	return g.neighbors(s, g.outAdj)
}

// Predecessors returns the states with a transition into s, sorted
// lexicographically by canonical key. Returns ErrStateNotFound if s is
// absent.
// Complexity: O(d log d) where d = in-degree of s.
func (g *Graph) Predecessors(s State) ([]State, error) {
	return g.neighbors(s, g.inAdj)
}

func (g *Graph) neighbors(s State, adj map[State]map[State]struct{}) ([]State, error) {
	if !g.HasState(s) {
		return nil, ErrStateNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	set := adj[s]
	out := make([]State, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Validate checks the structural-integrity invariant the evaluator relies
// on: every state has at least one successor. Returns ErrSinkState wrapping
// the offending state's identity if the invariant is violated.
// Complexity: O(|States|).
func (g *Graph) Validate() error {
	for _, s := range g.States() {
		succ, err := g.Successors(s)
		if err != nil {
			return err
		}
		if len(succ) == 0 {
			return &SinkStateError{State: s}
		}
	}

	return nil
}

// SinkStateError reports which state violated the no-sinks invariant.
type SinkStateError struct {
	State State
}

func (e *SinkStateError) Error() string {
	return ErrSinkState.Error() + ": " + e.State.String()
}

func (e *SinkStateError) Unwrap() error {
	return ErrSinkState
}

package gridpath

import (
	"container/heap"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridpath/internal/arena"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      []Cell
	Closed    []Cell
	Done      bool
	Found     bool
	Path      Path
	StepIndex int
}

// Stepper runs an A* search one expansion at a time.
type Stepper struct {
	grid    *Grid
	start   Cell
	goal    Cell
	options Options

	nodes    *arena.Arena[Cell]
	openSet  frontier
	openRefs []int
	closed   []bool
	expanded []bool
	sequence uint64

	current   Cell
	goalNode  arena.Handle
	stepCount int
	done      bool
	found     bool
}

// NewStepper validates the endpoints and seeds the frontier with start.
func NewStepper(grid *Grid, start, goal Cell, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	if !grid.IsWalkable(start) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "start %v", start)
	}
	if !grid.IsWalkable(goal) {
		return nil, errors.Wrapf(ErrInvalidEndpoint, "goal %v", goal)
	}

	size := grid.rows * grid.cols
	s := &Stepper{
		grid:     grid,
		start:    start,
		goal:     goal,
		options:  opts,
		nodes:    arena.New[Cell](size),
		openSet:  make(frontier, 0, size),
		openRefs: make([]int, size),
		closed:   make([]bool, size),
		expanded: make([]bool, size),
		current:  start,
		goalNode: arena.NoParent,
	}
	heap.Init(&s.openSet)
	s.push(start, 0, arena.NoParent)
	return s, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() StepSnapshot {
	if !s.done {
		s.advance()
	}
	return s.snapshot()
}

// Run advances the search until it finishes and returns its outcome.
func (s *Stepper) Run() (Result, error) {
	for !s.done {
		s.advance()
	}

	logger := s.options.Logger.With(
		zap.Stringer("start", s.start),
		zap.Stringer("goal", s.goal),
		zap.Stringer("policy", s.options.ClosePolicy),
		zap.Int("expanded", s.stepCount),
	)
	if !s.found {
		logger.Debug("search exhausted frontier")
		return Result{ExpandedNodes: s.stepCount}, errors.Wrapf(ErrNoPathFound,
			"from %v to %v after %d expansions", s.start, s.goal, s.stepCount)
	}

	goalNode := s.nodes.Get(s.goalNode)
	logger.Debug("search reached goal", zap.Int("cost", goalNode.G))
	return Result{
		Path:          s.nodes.Trace(s.goalNode),
		TotalCost:     goalNode.G,
		ExpandedNodes: s.stepCount,
		Found:         true,
	}, nil
}

// advance pops until it expands one cell, reaches the goal or empties the frontier.
func (s *Stepper) advance() {
	for {
		if s.openSet.Len() == 0 {
			s.done = true
			return
		}

		item := heap.Pop(&s.openSet).(frontierItem)
		node := s.nodes.Get(item.Node)
		index := s.grid.index(node.Value)
		s.openRefs[index]--

		if node.Value == s.goal {
			s.stepCount++
			s.current = node.Value
			s.goalNode = item.Node
			s.done = true
			s.found = true
			return
		}

		// Skip stale entries
		if s.options.ClosePolicy == ClosePolicyOnPop {
			if s.closed[index] {
				continue
			}
			s.closed[index] = true
		}
		s.expanded[index] = true
		s.stepCount++
		s.current = node.Value

		for _, d := range directions {
			next := Cell{Row: node.Value.Row + d.Row, Col: node.Value.Col + d.Col}
			if !s.grid.IsWalkable(next) || s.closed[s.grid.index(next)] {
				continue
			}
			s.push(next, node.G+1, item.Node)
		}
		return
	}
}

func (s *Stepper) push(c Cell, g int, parent arena.Handle) {
	h := Manhattan(c, s.goal)
	handle := s.nodes.Add(c, g, h, parent)
	heap.Push(&s.openSet, frontierItem{
		Node:     handle,
		FCost:    g + h,
		HCost:    h,
		Sequence: s.sequence,
	})
	s.sequence++

	index := s.grid.index(c)
	s.openRefs[index]++
	if s.options.ClosePolicy == ClosePolicyOnPush {
		s.closed[index] = true
	}
}

func (s *Stepper) snapshot() StepSnapshot {
	snap := StepSnapshot{
		Current:   s.current,
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	for i := range s.expanded {
		c := Cell{Row: i / s.grid.cols, Col: i % s.grid.cols}
		switch {
		case s.expanded[i]:
			snap.Closed = append(snap.Closed, c)
		case s.openRefs[i] > 0:
			snap.Open = append(snap.Open, c)
		}
	}
	if s.found {
		snap.Path = s.nodes.Trace(s.goalNode)
	}
	return snap
}

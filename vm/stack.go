package vm

import (
	"fmt"

	"github.com/joshuapare/gckit/heap"
)

// Stack is the bounded root set. It is the only way into the object graph.
type Stack struct {
	refs []heap.Ref
}

// NewStack creates an empty stack holding at most capacity refs.
func NewStack(capacity int) *Stack {
	return &Stack{refs: make([]heap.Ref, 0, capacity)}
}

// Push appends r. At capacity it returns ErrStackOverflow and leaves the
// stack unchanged.
func (s *Stack) Push(r heap.Ref) error {
	if len(s.refs) == cap(s.refs) {
		return fmt.Errorf("%w: capacity %d", ErrStackOverflow, cap(s.refs))
	}
	s.refs = append(s.refs, r)
	return nil
}

// Pop removes and returns the most recently pushed ref.
func (s *Stack) Pop() (heap.Ref, error) {
	n := len(s.refs)
	if n == 0 {
		return heap.Nil, ErrStackUnderflow
	}
	r := s.refs[n-1]
	s.refs = s.refs[:n-1]
	return r, nil
}

// Peek returns the ref depth entries below the top without removing it.
func (s *Stack) Peek(depth int) (heap.Ref, error) {
	i := len(s.refs) - 1 - depth
	if depth < 0 || i < 0 {
		return heap.Nil, ErrStackUnderflow
	}
	return s.refs[i], nil
}

// Len returns the number of refs on the stack.
func (s *Stack) Len() int { return len(s.refs) }

// Cap returns the stack capacity.
func (s *Stack) Cap() int { return cap(s.refs) }

// Root returns entry i, counting from the bottom.
func (s *Stack) Root(i int) heap.Ref { return s.refs[i] }

// SetRoot replaces entry i. Used by the collector to relocate roots.
func (s *Stack) SetRoot(i int, r heap.Ref) { s.refs[i] = r }

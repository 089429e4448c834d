package core

import "fmt"

// Arena owns node storage. Nodes are created empty, wired with Link,
// AddWeightedEdge, and Lock, and keep their identity for the arena's
// lifetime, which must outlive any solver run over them.
//
// The arena also remembers creation order, which diagnostic tooling
// uses to list a circuit's nodes deterministically.
type Arena struct {
	nodes []Redstone
}

// NewArena creates an empty arena.
// Complexity: O(1).
func NewArena() *Arena {
	return &Arena{}
}

// MakeTorch allocates a torch. The name is a diagnostic label;
// uniqueness is not required.
// Complexity: O(1) amortized.
func (a *Arena) MakeTorch(name string) *Torch {
	t := &Torch{node: node{name: name}}
	a.nodes = append(a.nodes, t)
	return t
}

// MakeDust allocates a dust.
// Complexity: O(1) amortized.
func (a *Arena) MakeDust(name string) *Dust {
	d := &Dust{node: node{name: name}}
	a.nodes = append(a.nodes, d)
	return d
}

// MakeBlock allocates a solid block.
// Complexity: O(1) amortized.
func (a *Arena) MakeBlock(name string) *Block {
	b := &Block{node: node{name: name}}
	a.nodes = append(a.nodes, b)
	return b
}

// MakeRepeater allocates a repeater with the given delay in frames.
// Panics if delay is outside [MinRepeaterDelay, MaxRepeaterDelay].
// Complexity: O(1) amortized.
func (a *Arena) MakeRepeater(name string, delay Frame) *Repeater {
	if delay < MinRepeaterDelay || delay > MaxRepeaterDelay {
		panic(fmt.Sprintf("core: repeater %q delay %d outside [%d, %d]",
			name, delay, MinRepeaterDelay, MaxRepeaterDelay))
	}
	r := &Repeater{node: node{name: name}, delay: delay}
	a.nodes = append(a.nodes, r)
	return r
}

// Nodes returns every node in creation order. The slice is shared;
// callers must not mutate it.
// Complexity: O(1).
func (a *Arena) Nodes() []Redstone { return a.nodes }

// Len returns the number of nodes allocated so far.
// Complexity: O(1).
func (a *Arena) Len() int { return len(a.nodes) }

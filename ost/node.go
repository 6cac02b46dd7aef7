// Package ost implements an intrusive, order-maintaining AVL tree: a
// balanced binary search tree whose in-order traversal is the sequence
// of elements inserted into it, augmented with subtree height and
// volume (node count). It is the bottom layer of the dynagraph module;
// the Euler-tour tree in package ett is built directly on top of it.
//
// The tree never allocates: operations take references to
// already-allocated nodes supplied by the caller and only rewire their
// parent/left/right/height/volume fields. A type participates by
// implementing Node[N] for itself (typically a pointer type), usually
// by embedding Mixin[N].
package ost

// Node is the capability a type must provide to be stored in an OST.
// N is expected to be a pointer type; the zero value of N plays the
// role of a null reference throughout this package.
type Node[N any] interface {
	comparable

	Parent() N
	SetParent(N)
	Left() N
	SetLeft(N)
	Right() N
	SetRight(N)

	Height() int
	SetHeight(int)
	Volume() int
	SetVolume(int)
}

// Augmenter is an optional hook. If a node's concrete type implements
// it, Augment is called every time the node's height/volume are
// recomputed — after every rotation and at every step of every
// structural edit's walk to the root. The core of this package never
// uses it; it exists so higher layers can piggyback their own subtree
// aggregates on the same rebalancing walk.
type Augmenter interface {
	Augment()
}

// Mixin provides the five intrusive fields and their accessors. A user
// type embeds Mixin[*UserType] by value and gets Node[*UserType] for
// free via method promotion.
type Mixin[N any] struct {
	parent, left, right N
	height, volume      int
}

func (m *Mixin[N]) Parent() N     { return m.parent }
func (m *Mixin[N]) SetParent(n N) { m.parent = n }
func (m *Mixin[N]) Left() N       { return m.left }
func (m *Mixin[N]) SetLeft(n N)   { m.left = n }
func (m *Mixin[N]) Right() N      { return m.right }
func (m *Mixin[N]) SetRight(n N)  { m.right = n }
func (m *Mixin[N]) Height() int     { return m.height }
func (m *Mixin[N]) SetHeight(h int) { m.height = h }
func (m *Mixin[N]) Volume() int     { return m.volume }
func (m *Mixin[N]) SetVolume(v int) { m.volume = v }

// Singleton resets n's fields so that it is a valid, detached tree of
// height 1 and volume 1 — the state every node must be in before it is
// passed to InsertBefore or InsertAfter, and the state Remove leaves it
// in afterward.
func Singleton[N Node[N]](n N) {
	var zero N
	n.SetParent(zero)
	n.SetLeft(zero)
	n.SetRight(zero)
	n.SetHeight(1)
	n.SetVolume(1)
}

func isNil[N Node[N]](n N) bool {
	var zero N
	return n == zero
}

package ost

// Iterator walks an OST in in-order sequence, in either direction.
// The zero Iterator is not usable; construct one with Sequence's
// Begin/End/RBegin/REnd.
//
// Once an iterator has run off either end, cur is the zero value and
// no position is kept: End and REnd carry no sentinel, and a Done
// iterator cannot be stepped back onto the sequence.
type Iterator[N Node[N]] struct {
	cur N
	end N // not set by this package
}

// Done reports whether the iterator has run off either end of the
// sequence.
func (it *Iterator[N]) Done() bool {
	var zero N
	return it.cur == zero
}

// Node returns the node the iterator currently refers to. Calling it
// when Done is true returns the zero value.
func (it *Iterator[N]) Node() N {
	return it.cur
}

// Next advances the iterator to the following node.
func (it *Iterator[N]) Next() {
	n, ok := Next(it.cur)
	if !ok {
		var zero N
		it.cur = zero
		return
	}
	it.cur = n
}

// Prev moves the iterator to the preceding node.
func (it *Iterator[N]) Prev() {
	n, ok := Previous(it.cur)
	if !ok {
		var zero N
		it.cur = zero
		return
	}
	it.cur = n
}

// Sequence is a read-through view of the ordered sequence rooted at
// (any node of) a tree. It holds no state of its own beyond the root
// it was constructed from; structural edits elsewhere in the same
// tree are reflected immediately.
type Sequence[N Node[N]] struct {
	root N
}

// Of returns the Sequence view of the whole tree containing n.
func Of[N Node[N]](n N) Sequence[N] {
	var zero N
	if isNil(n) {
		return Sequence[N]{root: zero}
	}
	return Sequence[N]{root: FindRoot(n)}
}

// Len returns the number of nodes in the sequence.
func (s Sequence[N]) Len() int {
	if isNil(s.root) {
		return 0
	}
	return Size(s.root)
}

// Begin returns an iterator positioned at the first node.
func (s Sequence[N]) Begin() Iterator[N] {
	if isNil(s.root) {
		var zero N
		return Iterator[N]{cur: zero}
	}
	return Iterator[N]{cur: FindHead(s.root)}
}

// End returns the past-the-end iterator (Done is true).
func (s Sequence[N]) End() Iterator[N] {
	var zero N
	return Iterator[N]{cur: zero}
}

// RBegin returns an iterator positioned at the last node, for
// iterating in reverse with Prev.
func (s Sequence[N]) RBegin() Iterator[N] {
	if isNil(s.root) {
		var zero N
		return Iterator[N]{cur: zero}
	}
	return Iterator[N]{cur: FindTail(s.root)}
}

// REnd returns the before-the-start iterator (Done is true).
func (s Sequence[N]) REnd() Iterator[N] {
	var zero N
	return Iterator[N]{cur: zero}
}

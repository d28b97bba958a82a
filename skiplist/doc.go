package skiplist

/*

# Skip list primitives for go-skiplog

This package provides an ordered, multi-level linked index over uint32 values
with string keys. It is the in-memory half of the persistent skip list; the
`skipfile` package turns a List into a flat byte buffer and back.

It follows the same style as the other forestrie primitive packages:

- explicit byte layouts (see `nodeencoding.go`)
- index arithmetic instead of pointers
- a burden of knowledge on the caller for hot paths

## Arena layout

Nodes are never referenced by Go pointers. A List owns a dense arena of Node
records and every forward slot holds a `Ref`, the arena index of the
successor, or `NoRef`. The head sentinel is an ordinary arena record keyed
"head" with no value. Removed records are put on a free list and reused.

	arena:  [ head | d(6) | a(10) | c(15) | b(20) ]
	level 1  head -----------> a -------------> NoRef
	level 0  head --> d -----> a ----> c -----> b --> NoRef

The same numbering trick is used by the file format, which assigns dense
indices by breadth first traversal from the head.

## Core invariants

1. for every level i, the chain starting at head.Forwards[i] is strictly
   increasing by value and ends in NoRef
2. level 0 holds every real node exactly once
3. a node with LevelCapacity c is linked on exactly the levels 0..c-1

Remove treats a violation of (3) as corruption and fails with
ErrNodeMismatch rather than silently unlinking a subset of levels.

## Level selection

The level of a new node is chosen by a LevelPolicy. GeometricPolicy is the
classical coin flipping distribution and is the default. ParityPolicy
gives a skewed distribution that draws from the lower or upper half of the level range depending on whether
the list size is even or odd.

There is no internal locking. Callers serialize access.

*/

package skipfile

/*

# Flat file format for go-skiplog skip lists

This package serializes a `skiplist.List` into a single byte buffer and
rebuilds an equivalent list from it. The format carries no pointers: nodes are
numbered by a breadth first traversal from the head and every forward chain
is written as the ordered list of those numbers.

## Layout

All integers are little endian.

	+---------------------------+  header, 11 bytes
	| magic     DE AD BE EF     |
	| level     u32             |  highest populated level at save time
	| reserved  3 bytes, zero   |  future version and checksum flags
	+---------------------------+  node records, one per reachable node
	| 0xBE | index u32 | len u32 | payload (skiplist node encoding)
	| ...                       |
	+---------------------------+  lane records, level .. 0
	| 0xEF | level u32 | count u32 | count x index u32
	| ...                       |
	+---------------------------+
	| end marker EE 0F          |
	+---------------------------+

A lane lists the head index followed by every node on that level in chain
order. The decoder rebuilds the chain by walking it: starting at the head,
each index becomes the successor of the previous node. No forward pointer is
ever stored, so the file needs no back references and the decoder needs no
recursion.

## Numbering

Enumerate assigns dense indices in breadth first order over all non empty
forward slots, head first. The head is therefore always index 0. Indices are
u32 on the wire but 0xFFFF is reserved as the "no node" sentinel, which caps
a file at 0xFFFF nodes.

## What is deliberately missing

There is no version field, no checksum, no padding to a page size and the
list size is not stored (Unmarshal recomputes it). The reserved header bytes
are the place to add a version and checksum. Nothing here makes writes
atomic; see the storage package.

*/

// Package skiplist provides ordered associative containers — Set and Map —
// built on a probabilistic skip list. Both are non-concurrent, single-owner
// data structures with expected logarithmic get/insert/remove.
package skiplist

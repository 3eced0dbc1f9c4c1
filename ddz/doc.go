// Package ddz classifies, compares and answers hands of a Dou Dizhu style
// shedding game.
//
// A Hand is built from card identifiers 1..54 and is immutable. Construction
// sorts the cards by (rank, suit), groups them into rank buckets, assigns one
// Shape from a closed set and derives a Value (tier, length, comparable rank).
//
// # Basic Usage
//
//	bomb := ddz.MustHand(3, 16, 29, 42)   // four threes
//	single := ddz.MustHand(13)            // a king
//	bomb.Compare(single)                  // ddz.Greater
//
//	pool := ddz.MustHand(1, 5, 18, 31, 44)
//	responses, err := ddz.FindBeating(pool, single)
//	// responses: [[A♣] [5♣ 5♦ 5♥ 5♠]]
//
// # Ordering
//
// Two hands compare only when both are legal plays. Within a tier hands of
// equal length compare by Value.Rank; unequal lengths are Incomparable.
// Across tiers the higher tier wins: a bomb beats any ordinary hand and the
// rocket beats everything.
//
// # Enumeration
//
// The Finder is a representative enumerator over rank shapes: cards of one
// rank are interchangeable, so each candidate uses the lowest-suited cards of
// every rank it needs. Shape-specific candidates come first in ascending rank
// order, followed by bombs and finally the rocket. FindBeatingContext runs
// those three branches concurrently and FindAll answers many targets with a
// bounded worker pool.
package ddz

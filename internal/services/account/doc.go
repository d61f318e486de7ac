// Package account is the path-addressed facade over one seed.
//
// Every operation parses its path, derives the node, materializes the key
// pair it needs and discards the node again; nothing is cached between calls
// and the seed is never written. A Service is therefore safe for concurrent
// use without locks.
//
// # Seed lifetime
//
// The seed is reference counted. The owner holds one reference until Close;
// each in-flight operation holds another while it derives. The seed is wiped
// by whichever release drops the count to zero, so Close never races an
// operation that already started. Operations begun after Close fail with
// domain.ErrAccountClosed.
package account

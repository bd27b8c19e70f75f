// Package ledger implements an append-only, hash-chained history of the
// rounds played at a table.
//
// # Core Components
//
// Blockchain: An append-only log of round outcomes with SHA-256 hash
// chaining for tamper detection.
//
// Block: A single round outcome with its index, timestamp and the hash of
// the block before it.
//
// # Usage
//
// Create a blockchain, append one block per finished round, and call Verify
// at any time to check that no recorded round was altered.
package ledger

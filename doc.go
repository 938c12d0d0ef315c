// Package solo demonstrates a lazily constructed, process-wide singleton in Go.
//
// The repository is small on purpose:
//
//   - singleton: Holder (construct once, safe under concurrency), RacyHolder
//     (the unsynchronized check-then-act accessor, kept to show the race) and
//     the process-wide Instance behind GetInstance
//   - cmd/solo: calls GetInstance twice and prints whether both calls returned
//     the same object
//   - examples/concurrent: runs both holders under concurrent first access
//
// Start with cmd/solo for the end-to-end behavior and singleton for the API.
package solo

// Package hash provides concurrent access maps.
//
// [RWMap] is a map with [sync.RWMutex] embedded. Reads take the read lock
// only; loading an absent key upgrades to the write lock and re-checks.
package hash

// Package config bundles the compile-time parameters of a hierarchical
// bitset: the three bitblock types used at Level0, Level1, and the data
// level, and a cache policy tag selecting how the iterator machinery caches
// resolved Level1 handles while it scans.
package config

// Package domain holds the core types of the Solid Edge tool surface:
// collection and geometry kinds, boundary ordinals, and the typed errors
// every manager reports through.
//
// Everything here is dependency-free. Ordinals at this level are always
// 0-based; only the topology package translates to the kernel's 1-based
// Item() convention.
package domain

// Package topology gives stable small-integer addresses to transient kernel
// topology. Kernel handles are only valid while the document stays open and
// their internal identity can differ between two enumerations of the same
// collection, so nothing here ever holds a resolved object across calls:
// an ordinal is resolved by a fresh enumeration, every time.
package topology

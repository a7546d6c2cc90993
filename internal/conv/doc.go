// Package conv provides checked integer conversions.
//
// Slot indices in the node store are uint32 while Go lengths are int; every
// crossing between the two goes through this package.
package conv

// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Element buffers start on a 64-byte boundary so that any 4- or 8-byte
// element lies inside a single cache line and wide loads never straddle one.
package mem

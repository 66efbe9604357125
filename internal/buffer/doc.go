// Package buffer implements the raw element storage of a vector.
//
// A Buffer is a fixed-size, 64-byte aligned block of bytes holding
// dimensions elements of a single precision. Elements are always stored
// little-endian, independent of the host byte order, so the in-memory layout
// is identical on every platform.
//
// Single precision buffers round every written value to the nearest float32
// and widen on read, so callers never observe double precision noise.
package buffer

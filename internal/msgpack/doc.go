// Package msgpack encodes vectors as MessagePack arrays of floats.
//
// # Wire Format
//
//	header:  0x90|n (n <= 15) | 0xdc u16 | 0xdd u32   (big-endian length, n >= 1)
//	element: 0xca f32 | 0xcb f64                      (big-endian payload)
//
// Every element of one array carries the same tag: 0xca for single precision
// vectors and 0xcb for double precision vectors. The payload byte order is
// big-endian as MessagePack requires, while the in-memory element storage is
// little-endian; the codec converts between the two.
//
// Any standard MessagePack decoder reads the output as an array of floats.
package msgpack

// Package flatvec provides a fixed-length numeric vector backed by one flat,
// contiguous little-endian buffer of IEEE-754 floats.
//
// A Vector has a fixed number of dimensions and a precision, Single (float32)
// or Double (float64). Single precision vectors round every stored value and
// every result to the nearest float32; reductions accumulate in float64 and
// round once at the end.
//
// # Quick Start
//
//	a, _ := flatvec.FromValues([]float64{1, 2, 3})
//	b, _ := flatvec.FromValues([]float64{4, 5, 6})
//
//	sum, _ := flatvec.Add(a, b)     // [5 7 9]
//	dot, _ := flatvec.Dot(a, b)     // 32
//	norm, _ := sum.PNorm(2)         // 12.449...
//
// # Precision
//
//	v, _ := flatvec.New(1024, flatvec.WithPrecision(flatvec.Single))
//	v.Set(0, 0.1)
//	x, _ := v.Get(0) // 0.10000000149011612
//
// # Engines
//
// Every vector is bound to the engine.Engine it was created with. Binary
// operations require both operands to come from the same engine, with the
// same precision and dimensions. Most programs use the process-wide
// engine.Default; a dedicated engine carries its own logger, metrics collector
// and parallelism settings:
//
//	eng, _ := engine.Load(engine.WithWorkers(4), engine.WithLogger(slog.Default()))
//	v, _ := flatvec.New(1<<20, flatvec.WithEngine(eng))
//
// # Serialization
//
// MarshalBinary produces a MessagePack array of float32 or float64 values that
// any MessagePack decoder can read. A *Vector also implements the msgp
// Marshaler, Unmarshaler, Encodable, Decodable and Sizer interfaces, so it can
// be embedded in msgp generated types.
//
// Vectors are not safe for concurrent mutation.
package flatvec

package flatvec

import (
	"encoding"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/flatvec/engine"
)

var (
	_ encoding.BinaryMarshaler   = (*Vector)(nil)
	_ encoding.BinaryUnmarshaler = (*Vector)(nil)
	_ msgp.Marshaler             = (*Vector)(nil)
	_ msgp.Unmarshaler           = (*Vector)(nil)
	_ msgp.Encodable             = (*Vector)(nil)
	_ msgp.Decodable             = (*Vector)(nil)
	_ msgp.Sizer                 = (*Vector)(nil)
)

// MarshalBinary returns the MessagePack form of v: an array of float32 or
// float64 values, big-endian, matching the precision of v.
func (v *Vector) MarshalBinary() ([]byte, error) {
	return v.MarshalMsg(nil)
}

// UnmarshalBinary replaces v with the vector decoded from data. Bytes after
// the last element are ignored. On error v is unchanged.
func (v *Vector) UnmarshalBinary(data []byte) error {
	_, err := v.UnmarshalMsg(data)
	return err
}

// MarshalMsg implements msgp.Marshaler.
func (v *Vector) MarshalMsg(b []byte) ([]byte, error) {
	out, err := v.eng.Encode(b, v.buf)
	if err != nil {
		return b, translateError(err)
	}
	return out, nil
}

// UnmarshalMsg implements msgp.Unmarshaler. The decoded vector keeps the
// engine of v, or engine.Default() when v has none.
func (v *Vector) UnmarshalMsg(bts []byte) ([]byte, error) {
	eng := v.engineOrDefault()

	buf, rest, err := eng.Decode(bts)
	if err != nil {
		return bts, translateError(err)
	}
	v.buf = buf
	v.eng = eng
	return rest, nil
}

// EncodeMsg implements msgp.Encodable.
func (v *Vector) EncodeMsg(w *msgp.Writer) error {
	return translateError(v.eng.EncodeTo(w, v.buf))
}

// DecodeMsg implements msgp.Decodable.
func (v *Vector) DecodeMsg(r *msgp.Reader) error {
	eng := v.engineOrDefault()

	buf, err := eng.DecodeFrom(r)
	if err != nil {
		return translateError(err)
	}
	v.buf = buf
	v.eng = eng
	return nil
}

// Msgsize implements msgp.Sizer. It returns the exact encoded size.
func (v *Vector) Msgsize() int {
	n, err := v.eng.EncodedSize(v.buf)
	if err != nil {
		return 0
	}
	return n
}

func (v *Vector) engineOrDefault() *engine.Engine {
	if v.eng == nil {
		return engine.Default()
	}
	return v.eng
}

// Package compat serializes the account primitive types to the exact byte
// layout the legacy library produces for its equivalent types, over the
// wire framework's native encodings. Every codec is stateless and pure;
// decoding never panics on malformed input and reports typed errors
// instead, so a caller working through a batch can keep going after a
// failure.
package compat

// Codec translates one primitive type to and from its legacy wire form.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

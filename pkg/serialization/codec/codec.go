package codec

// Codec is the general-purpose serialization framework boundary. Two
// implementations are kept side by side: the in-house wire codec and the
// independently maintained SCALE codec, so byte compatibility between them
// can be checked rather than assumed.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	MarshalCompact(x uint64) ([]byte, error)
	MarshalFixedWidth(x uint64, l uint8) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

package compat

import (
	"reflect"
	"sync"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
)

// Registry resolves the codec responsible for a field type. The structure
// serialization layer looks codecs up here while walking a record's fields.
type Registry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]any
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[reflect.Type]any)}
}

// Register binds c as the codec for T, replacing any previous binding.
func Register[T any](r *Registry, c Codec[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[reflect.TypeOf((*T)(nil)).Elem()] = c
}

// Lookup returns the codec registered for T.
func Lookup[T any](r *Registry) (Codec[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	codec, ok := c.(Codec[T])
	return codec, ok
}

// DefaultRegistry returns a registry pre-populated with the primitive
// codecs and their optional variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	Register[ethtypes.Uint256](r, U256Codec{})
	Register[ethtypes.Uint512](r, U512Codec{})
	Register[ethtypes.Address](r, AddressCodec{})
	Register[ethtypes.Hash](r, HashCodec{})
	Register[ethtypes.Signature](r, SignatureCodec{})
	Register[*ethtypes.Uint256](r, Optional[ethtypes.Uint256](U256Codec{}))
	Register[*ethtypes.Uint512](r, Optional[ethtypes.Uint512](U512Codec{}))
	Register[*ethtypes.Address](r, Optional[ethtypes.Address](AddressCodec{}))
	Register[*ethtypes.Hash](r, Optional[ethtypes.Hash](HashCodec{}))
	Register[*ethtypes.Signature](r, Optional[ethtypes.Signature](SignatureCodec{}))
	return r
}

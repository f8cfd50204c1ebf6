package ethtypes

// Signature is an ECDSA-style signature: the r and s scalars plus the
// recovery parity bit selecting which of the two candidate public keys the
// signature corresponds to. The legacy 27/28 recovery marker never appears
// here; translating it is the codec layer's job.
type Signature struct {
	R      Uint256
	S      Uint256
	Parity bool
}

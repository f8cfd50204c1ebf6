package ethtypes

const (
	AddressSize  = 20
	HashSize     = 32
	Uint256Size  = 32
	Uint512Size  = 64
	Uint256Limbs = 4
	Uint512Limbs = 8

	// SignatureWireSize is r and s as 256-bit integers plus a 64-bit
	// recovery marker, matching the legacy three-field record.
	SignatureWireSize = 2*Uint256Size + 8
)

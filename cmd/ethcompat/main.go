// Command ethcompat generates and verifies wire-format test vectors for the
// legacy compatibility codecs. The generated file pins the exact bytes the
// codecs produce so a change that silently breaks the legacy format shows
// up as a vector mismatch.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
	"github.com/matterhornlabs/ethcompat/pkg/log"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/compat"
)

type vector struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Encoded string `json:"encoded"`
}

func main() {
	generate := flag.Bool("generate", false, "write a fresh vector file")
	verify := flag.Bool("verify", false, "re-encode the vector file and compare")
	path := flag.String("vectors", "vectors/compat.json", "vector file path")
	count := flag.Int("count", 16, "vectors per primitive type")
	loglevel := flag.String("loglevel", "info", "log level")
	flag.Parse()

	level, err := log.ParseLogLevel(*loglevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Init(log.Options{LogLevel: level, Type: log.ConsoleLogger})

	switch {
	case *generate:
		if err := generateVectors(*path, *count); err != nil {
			log.Vectors.Error().Err(err).Msg("generating vectors")
			os.Exit(1)
		}
	case *verify:
		if err := verifyVectors(*path); err != nil {
			log.Vectors.Error().Err(err).Msg("verifying vectors")
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func generateVectors(path string, count int) error {
	var vectors []vector
	for i := 0; i < count; i++ {
		batch, err := randomVectors()
		if err != nil {
			return err
		}
		vectors = append(vectors, batch...)
	}

	data, err := json.MarshalIndent(vectors, "", "	")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing vector file: %w", err)
	}

	log.Vectors.Info().Int("vectors", len(vectors)).Str("path", path).Msg("vector file written")
	return nil
}

func randomVectors() ([]vector, error) {
	var out []vector

	u256, err := randomUint256()
	if err != nil {
		return nil, err
	}
	encoded, err := compat.U256Codec{}.Encode(u256)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "u256", Value: u256.Hex(), Encoded: hex.EncodeToString(encoded)})

	u512, err := randomUint512()
	if err != nil {
		return nil, err
	}
	encoded, err = compat.U512Codec{}.Encode(u512)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "u512", Value: u512.Hex(), Encoded: hex.EncodeToString(encoded)})

	var addr ethtypes.Address
	if _, err := rand.Read(addr[:]); err != nil {
		return nil, err
	}
	encoded, err = compat.AddressCodec{}.Encode(addr)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "address", Value: addr.Hex(), Encoded: hex.EncodeToString(encoded)})

	var hash ethtypes.Hash
	if _, err := rand.Read(hash[:]); err != nil {
		return nil, err
	}
	encoded, err = compat.HashCodec{}.Encode(hash)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "hash", Value: hash.Hex(), Encoded: hex.EncodeToString(encoded)})

	sig, err := randomSignature()
	if err != nil {
		return nil, err
	}
	encoded, err = compat.SignatureCodec{}.Encode(sig)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{
		Kind:    "signature",
		Value:   fmt.Sprintf("r=%s s=%s parity=%t", sig.R.Hex(), sig.S.Hex(), sig.Parity),
		Encoded: hex.EncodeToString(encoded),
	})

	optional := compat.Optional[ethtypes.Address](compat.AddressCodec{})
	encoded, err = optional.Encode(nil)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "optional_address", Value: "none", Encoded: hex.EncodeToString(encoded)})

	encoded, err = optional.Encode(&addr)
	if err != nil {
		return nil, err
	}
	out = append(out, vector{Kind: "optional_address", Value: addr.Hex(), Encoded: hex.EncodeToString(encoded)})

	return out, nil
}

func verifyVectors(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading vector file: %w", err)
	}

	var vectors []vector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("unmarshaling vector file: %w", err)
	}

	mismatches := 0
	for i, v := range vectors {
		reencoded, err := reencode(v)
		if err != nil {
			return fmt.Errorf("vector %d (%s): %w", i, v.Kind, err)
		}
		if reencoded != v.Encoded {
			mismatches++
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(v.Encoded),
				B:        difflib.SplitLines(reencoded),
				FromFile: "expected",
				ToFile:   "actual",
				Context:  1,
			})
			log.Vectors.Error().Int("vector", i).Str("kind", v.Kind).Msg("encoding mismatch\n" + diff)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d vectors mismatched", mismatches, len(vectors))
	}
	log.Vectors.Info().Int("vectors", len(vectors)).Msg("all vectors match")
	return nil
}

func reencode(v vector) (string, error) {
	var encoded []byte
	switch v.Kind {
	case "u256":
		value, err := ethtypes.Uint256FromHex(v.Value)
		if err != nil {
			return "", err
		}
		encoded, err = compat.U256Codec{}.Encode(value)
		if err != nil {
			return "", err
		}
	case "u512":
		value, err := ethtypes.Uint512FromHex(v.Value)
		if err != nil {
			return "", err
		}
		encoded, err = compat.U512Codec{}.Encode(value)
		if err != nil {
			return "", err
		}
	case "address":
		value, err := ethtypes.AddressFromHex(v.Value)
		if err != nil {
			return "", err
		}
		encoded, err = compat.AddressCodec{}.Encode(value)
		if err != nil {
			return "", err
		}
	case "hash":
		value, err := ethtypes.HashFromHex(v.Value)
		if err != nil {
			return "", err
		}
		encoded, err = compat.HashCodec{}.Encode(value)
		if err != nil {
			return "", err
		}
	case "signature", "optional_address":
		// decode-and-re-encode: the stored bytes themselves are the input
		raw, err := hex.DecodeString(v.Encoded)
		if err != nil {
			return "", err
		}
		encoded, err = roundTrip(v.Kind, raw)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown vector kind %q", v.Kind)
	}
	return hex.EncodeToString(encoded), nil
}

func roundTrip(kind string, raw []byte) ([]byte, error) {
	switch kind {
	case "signature":
		sig, err := compat.SignatureCodec{}.Decode(raw)
		if err != nil {
			return nil, err
		}
		return compat.SignatureCodec{}.Encode(sig)
	default:
		optional := compat.Optional[ethtypes.Address](compat.AddressCodec{})
		value, err := optional.Decode(raw)
		if err != nil {
			return nil, err
		}
		return optional.Encode(value)
	}
}

func randomUint256() (ethtypes.Uint256, error) {
	var b [ethtypes.Uint256Size]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ethtypes.Uint256{}, err
	}
	return ethtypes.Uint256FromBytes32(b), nil
}

func randomUint512() (ethtypes.Uint512, error) {
	var b [ethtypes.Uint512Size]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ethtypes.Uint512{}, err
	}
	return ethtypes.Uint512FromBytes64(b), nil
}

// randomSignature signs a random digest with a throwaway secp256k1 key so
// the vector carries a genuine recovery marker, not a synthetic one.
func randomSignature() (ethtypes.Signature, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return ethtypes.Signature{}, err
	}

	msg := make([]byte, 64)
	if _, err := rand.Read(msg); err != nil {
		return ethtypes.Signature{}, err
	}
	digest := ethtypes.Keccak256(msg)

	compact := secpecdsa.SignCompact(key, digest[:], false)
	if len(compact) != 65 || (compact[0] != 27 && compact[0] != 28) {
		return ethtypes.Signature{}, fmt.Errorf("unexpected compact signature shape")
	}

	return ethtypes.Signature{
		R:      ethtypes.Uint256FromBytes32([32]byte(compact[1:33])),
		S:      ethtypes.Uint256FromBytes32([32]byte(compact[33:65])),
		Parity: compact[0] == 28,
	}, nil
}

package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm indicates a digest name that FromName does not recognize.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

// Spec describes a one-way hash function to the HMAC, HOTP, and PBKDF2
// engines. Hash must be pure and deterministic, always returning exactly
// Size bytes. Specs are plain values; the zero Spec is not usable — obtain
// one from the constructors or FromName.
type Spec struct {
	// Name is the canonical algorithm name, e.g. "SHA1".
	Name string
	// BlockSize is the internal block size in bytes that HMAC pads keys to.
	BlockSize int
	// Size is the output length of Hash in bytes.
	Size int
	// Hash computes the digest of data.
	Hash func(data []byte) []byte
}

// SHA1 returns the spec for SHA-1 (block 64, output 20), the RFC 4226
// reference digest.
func SHA1() Spec {
	return Spec{
		Name:      "SHA1",
		BlockSize: 64,
		Size:      sha1.Size,
		Hash: func(data []byte) []byte {
			sum := sha1.Sum(data)
			return sum[:]
		},
	}
}

// SHA256 returns the spec for SHA-256 (block 64, output 32).
func SHA256() Spec {
	return Spec{
		Name:      "SHA256",
		BlockSize: 64,
		Size:      sha256.Size,
		Hash: func(data []byte) []byte {
			sum := sha256.Sum256(data)
			return sum[:]
		},
	}
}

// SHA512 returns the spec for SHA-512 (block 128, output 64).
func SHA512() Spec {
	return Spec{
		Name:      "SHA512",
		BlockSize: 128,
		Size:      sha512.Size,
		Hash: func(data []byte) []byte {
			sum := sha512.Sum512(data)
			return sum[:]
		},
	}
}

// SHA3_256 returns the spec for SHA3-256. The block size is the sponge rate
// (136 bytes), which is what HMAC-SHA3 pads keys to.
func SHA3_256() Spec {
	return Spec{
		Name:      "SHA3-256",
		BlockSize: 136,
		Size:      32,
		Hash: func(data []byte) []byte {
			sum := sha3.Sum256(data)
			return sum[:]
		},
	}
}

// BLAKE2b256 returns the spec for BLAKE2b-256 (block 128, output 32).
func BLAKE2b256() Spec {
	return Spec{
		Name:      "BLAKE2b-256",
		BlockSize: blake2b.BlockSize,
		Size:      32,
		Hash: func(data []byte) []byte {
			sum := blake2b.Sum256(data)
			return sum[:]
		},
	}
}

// Algorithms lists the canonical names accepted by FromName.
func Algorithms() []string {
	return []string{"SHA1", "SHA256", "SHA512", "SHA3-256", "BLAKE2b-256"}
}

// FromName resolves a digest spec by name. Matching is case-insensitive and
// tolerates the hyphenated SHA spellings ("SHA-1").
func FromName(name string) (Spec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha1", "sha-1":
		return SHA1(), nil
	case "sha256", "sha-256":
		return SHA256(), nil
	case "sha512", "sha-512":
		return SHA512(), nil
	case "sha3-256", "sha3256":
		return SHA3_256(), nil
	case "blake2b-256", "blake2b256", "blake2b":
		return BLAKE2b256(), nil
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

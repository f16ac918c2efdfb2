package hmac

import (
	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/trace"
)

// RFC 2104 pad constants.
const (
	ipad = 0x36
	opad = 0x5C
)

// Sum computes HMAC(key, message) over the supplied digest and returns
// d.Size bytes. An empty key is legal and pads to an all-zero block; a key
// longer than d.BlockSize is hashed down to d.Size bytes before padding, per
// RFC 2104 §2.
func Sum(d digest.Spec, key, message []byte) []byte {
	return SumTrace(d, key, message, nil)
}

// SumTrace is Sum with an optional step recorder. The recorder observes the
// normalized key, the inner digest, and the final MAC; nil disables tracing.
func SumTrace(d digest.Spec, key, message []byte, tr trace.Recorder) []byte {
	k0 := normalizeKey(d, key)
	trace.Emit(tr, "hmac/k0", k0)

	// inner = H(K0 ^ ipad || message), outer = H(K0 ^ opad || inner).
	inner := make([]byte, d.BlockSize+len(message))
	outer := make([]byte, d.BlockSize, d.BlockSize+d.Size)
	for i, b := range k0 {
		inner[i] = b ^ ipad
		outer[i] = b ^ opad
	}
	copy(inner[d.BlockSize:], message)

	innerSum := d.Hash(inner)
	trace.Emit(tr, "hmac/inner", innerSum)

	sum := d.Hash(append(outer, innerSum...))
	trace.Emit(tr, "hmac/sum", sum)
	return sum
}

// normalizeKey produces K0: the key pre-hashed if it exceeds the block size,
// then right-padded with zeros to exactly d.BlockSize bytes.
func normalizeKey(d digest.Spec, key []byte) []byte {
	if len(key) > d.BlockSize {
		key = d.Hash(key)
	}
	k0 := make([]byte, d.BlockSize)
	copy(k0, key)
	return k0
}

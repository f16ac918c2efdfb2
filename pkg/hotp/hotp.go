package hotp

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/hmac"
	"github.com/jhahn/go-prf/pkg/trace"
)

// Common errors returned by the HOTP generator.
var (
	// ErrInvalidDigits indicates a requested code length outside [1,10].
	ErrInvalidDigits = errors.New("hotp: digits must be between 1 and 10")
	// ErrDigestTooShort indicates a digest whose output cannot satisfy the
	// dynamic truncation window (offset+4 bytes). This is a configuration
	// mismatch between the digest and the algorithm, not a transient failure.
	ErrDigestTooShort = errors.New("hotp: digest output too short for dynamic truncation")
)

// DefaultDigits is the code length used when GenerateOpts.Digits is zero.
const DefaultDigits = 6

// GenerateOpts controls code generation. The zero value requests a 6-digit
// SHA-1 code with no tracing, matching RFC 4226.
type GenerateOpts struct {
	// Digits is the code length (1–10). Default: 6.
	Digits uint
	// Algorithm is the digest to run HMAC over. Default: digest.SHA1().
	Algorithm digest.Spec
	// Trace optionally observes the counter bytes, HMAC steps, and the
	// truncated value. Default: nil (silent).
	Trace trace.Recorder
}

// GenerateCode computes the RFC 4226 code for key and counter with default
// options (6 digits, SHA-1).
//
// The counter is caller-owned: this package never increments or stores it.
func GenerateCode(key []byte, counter uint64) (string, error) {
	return GenerateCodeCustom(key, counter, GenerateOpts{})
}

// GenerateCodeCustom computes the RFC 4226 code for key and counter.
// The result is a decimal string of exactly opts.Digits characters,
// zero-padded on the left. Identical inputs always yield the identical code.
func GenerateCodeCustom(key []byte, counter uint64, opts GenerateOpts) (string, error) {
	digits := opts.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits > 10 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidDigits, digits)
	}
	d := opts.Algorithm
	if d.Hash == nil {
		d = digest.SHA1()
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	trace.Emit(opts.Trace, "hotp/counter", msg[:])

	sum := hmac.SumTrace(d, key, msg[:], opts.Trace)

	value, err := DynamicTruncate(sum)
	if err != nil {
		return "", err
	}
	trace.Emit(opts.Trace, "hotp/truncated", binary.BigEndian.AppendUint32(nil, value))

	code := uint64(value) % pow10(digits)
	return fmt.Sprintf("%0*d", int(digits), code), nil
}

// Validate reports whether passcode matches counter under default options.
func Validate(passcode string, counter uint64, key []byte) bool {
	ok, err := ValidateCustom(passcode, counter, key, GenerateOpts{})
	return err == nil && ok
}

// ValidateCustom reports whether passcode matches counter. The comparison is
// constant-time in the code value. Counter look-ahead windows and counter
// persistence are the caller's concern.
func ValidateCustom(passcode string, counter uint64, key []byte, opts GenerateOpts) (bool, error) {
	want, err := GenerateCodeCustom(key, counter, opts)
	if err != nil {
		return false, err
	}
	if len(passcode) != len(want) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(passcode), []byte(want)) == 1, nil
}

// DynamicTruncate extracts the 31-bit dynamic binary code from an HMAC
// output per RFC 4226 §5.3: the low nibble of the final byte selects an
// offset, and the four bytes starting there are read big-endian with the
// sign bit masked off. The result is therefore always < 2^31.
//
// Exported so callers can test or reuse the truncation step directly.
func DynamicTruncate(sum []byte) (uint32, error) {
	if len(sum) == 0 {
		return 0, fmt.Errorf("%w: empty output", ErrDigestTooShort)
	}
	offset := int(sum[len(sum)-1] & 0x0F)
	if offset+4 > len(sum) {
		return 0, fmt.Errorf("%w: offset %d with %d-byte output", ErrDigestTooShort, offset, len(sum))
	}
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF, nil
}

func pow10(n uint) uint64 {
	p := uint64(1)
	for i := uint(0); i < n; i++ {
		p *= 10
	}
	return p
}

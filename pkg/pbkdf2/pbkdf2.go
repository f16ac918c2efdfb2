package pbkdf2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/hmac"
	"github.com/jhahn/go-prf/pkg/trace"
)

// Common errors returned by the key derivation driver.
var (
	// ErrKeyTooLong indicates a requested key length above 2^32-1 blocks of
	// digest output, the RFC 2898 ceiling.
	ErrKeyTooLong = errors.New("pbkdf2: derived key too long")
	// ErrInvalidIterations indicates an iteration count below 1.
	ErrInvalidIterations = errors.New("pbkdf2: iteration count must be at least 1")
	// ErrInvalidKeyLength indicates a requested key length below 1 byte.
	ErrInvalidKeyLength = errors.New("pbkdf2: key length must be at least 1 byte")
)

// Opts controls key derivation. The zero value requests sequential
// PBKDF2-HMAC-SHA1 with no tracing.
type Opts struct {
	// Algorithm is the digest to run the HMAC PRF over. Default: digest.SHA1().
	Algorithm digest.Spec
	// Parallelism bounds the number of goroutines deriving blocks. Blocks
	// are mutually independent, so any value produces the same key; values
	// <= 1 derive sequentially. Ignored when Trace is set, because recorders
	// are not required to be goroutine-safe.
	Parallelism int
	// Trace optionally observes each block's first PRF output and its final
	// XOR-accumulated value. Default: nil (silent).
	Trace trace.Recorder
}

// Key derives keyLen bytes from password and salt with default options
// (HMAC-SHA1 PRF, sequential), per RFC 2898 §5.2.
func Key(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return KeyCustom(password, salt, iterations, keyLen, Opts{})
}

// KeyCustom derives keyLen bytes from password and salt. The result is
// deterministic in (password, salt, iterations, keyLen, digest); the
// iteration count linearly scales cost and is the caller's work-factor knob.
//
// There is no partial output: the returned slice has exactly keyLen bytes or
// the error is non-nil.
func KeyCustom(password, salt []byte, iterations, keyLen int, opts Opts) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, keyLen)
	}
	d := opts.Algorithm
	if d.Hash == nil {
		d = digest.SHA1()
	}
	hLen := d.Size
	if uint64(keyLen) > 0xFFFFFFFF*uint64(hLen) {
		return nil, fmt.Errorf("%w: %d bytes requested", ErrKeyTooLong, keyLen)
	}

	blockCount := (keyLen + hLen - 1) / hLen
	dk := make([]byte, blockCount*hLen)

	if opts.Parallelism > 1 && blockCount > 1 && opts.Trace == nil {
		deriveParallel(d, password, salt, iterations, blockCount, opts.Parallelism, dk)
	} else {
		for i := 1; i <= blockCount; i++ {
			block(d, password, salt, iterations, uint32(i), dk[(i-1)*hLen:i*hLen], opts.Trace)
		}
	}
	return dk[:keyLen], nil
}

// block computes T_i = F(password, salt, iterations, index) into out, which
// must be exactly d.Size bytes. U_1 is the PRF over salt || INT(index) with a
// 1-based big-endian index; each further round re-applies the PRF to the
// previous U and XOR-accumulates. Both XOR operands are always PRF outputs of
// identical length, so no padding is involved.
func block(d digest.Spec, password, salt []byte, iterations int, index uint32, out []byte, tr trace.Recorder) {
	msg := make([]byte, 0, len(salt)+4)
	msg = append(msg, salt...)
	msg = binary.BigEndian.AppendUint32(msg, index)

	u := hmac.Sum(d, password, msg)
	copy(out, u)
	trace.Emit(tr, "pbkdf2/u1/"+strconv.FormatUint(uint64(index), 10), u)

	for c := 2; c <= iterations; c++ {
		u = hmac.Sum(d, password, u)
		for j := range out {
			out[j] ^= u[j]
		}
	}
	trace.Emit(tr, "pbkdf2/t/"+strconv.FormatUint(uint64(index), 10), out)
}

// deriveParallel fans the independent block computations out over a bounded
// set of workers. Each worker writes only its own hLen-sized region of dk, so
// no synchronization beyond the WaitGroup is needed.
func deriveParallel(d digest.Spec, password, salt []byte, iterations, blockCount, workers int, dk []byte) {
	if workers > blockCount {
		workers = blockCount
	}
	hLen := d.Size

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				block(d, password, salt, iterations, uint32(i), dk[(i-1)*hLen:i*hLen], nil)
			}
		}()
	}
	for i := 1; i <= blockCount; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}

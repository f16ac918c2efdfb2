// Package pbkdf2 implements the RFC 2898 (PKCS #5 v2.0) key derivation
// function from first principles over the HMAC engine in pkg/hmac.
//
//	dk, err := pbkdf2.Key([]byte("password"), []byte("salt"), 600000, 32)
//
// The digest, an optional block-level parallelism bound, and an optional
// trace recorder go through KeyCustom:
//
//	dk, err := pbkdf2.KeyCustom(password, salt, iter, 64, pbkdf2.Opts{
//	    Algorithm:   digest.SHA256(),
//	    Parallelism: runtime.NumCPU(),
//	})
//
// Blocks of the derived key are mutually independent — a documented weakness
// of the construction that also makes them safely parallelizable; the output
// is identical whatever the parallelism. Derivation either returns exactly
// keyLen bytes or fails outright; nothing is clamped or partially produced.
//
// golang.org/x/crypto/pbkdf2 is used only as a test oracle, never in the
// implementation path.
package pbkdf2

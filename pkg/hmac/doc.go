// Package hmac implements the RFC 2104 keyed-hash message authentication
// code from first principles over a pluggable digest.
//
// This package deliberately does not call crypto/hmac — building the
// construction out of the raw hash function is the point. The standard
// library implementation is used only as a test oracle.
//
//	mac := hmac.Sum(digest.SHA1(), key, message)
//
// Sum is a pure function: identical inputs always produce identical output,
// and no state is kept between calls. Callers own the key buffer; it is not
// retained.
//
// This HMAC is not constant-time with respect to the key or message and is
// intended as the PRF inside HOTP and PBKDF2, where the output is public or
// further processed, rather than as a general-purpose MAC verifier.
package hmac

// Package digest adapts one-way hash functions for the HMAC, HOTP, and
// PBKDF2 engines.
//
// A Spec carries the three things those engines need — block size, output
// size, and a pure hash function — so the engines themselves never name a
// hash algorithm. Swapping SHA-1 for SHA-256 (or SHA3-256, or BLAKE2b-256)
// is a matter of passing a different Spec value:
//
//	code, err := hotp.GenerateCodeCustom(key, counter, hotp.GenerateOpts{
//	    Algorithm: digest.SHA256(),
//	})
//
// SHA-1 remains the RFC 4226 reference digest and is the default everywhere,
// but nothing in the engines depends on it.
package digest

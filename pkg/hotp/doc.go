// Package hotp implements the RFC 4226 HMAC-based one-time password
// algorithm from first principles: counter serialization, the HMAC engine
// from pkg/hmac, dynamic truncation, and decimal rendering.
//
//	code, err := hotp.GenerateCode(key, counter)       // 6 digits, SHA-1
//	ok := hotp.Validate(code, counter, key)            // constant-time compare
//
// Non-default digit counts and digests go through GenerateCodeCustom:
//
//	code, err := hotp.GenerateCodeCustom(key, counter, hotp.GenerateOpts{
//	    Digits:    8,
//	    Algorithm: digest.SHA512(),
//	})
//
// Generation is pure: both ends of a two-factor exchange stay in sync
// because the same (key, counter, digits) always yields the same code. The
// package never increments or persists the counter and never decodes
// provisioning secrets — the key parameter is raw bytes, already decoded by
// the caller.
package hotp

// Package trace defines an optional observer for the intermediate values the
// primitive packages compute (HMAC pads, truncation input, PBKDF2 blocks).
//
// Tracing is always injected per call through the option structs of the
// primitive packages; there is no package-level debug switch. A nil Recorder
// disables tracing entirely.
//
//	rec := trace.RecorderFunc(func(step string, value []byte) {
//	    fmt.Printf("%-16s %x\n", step, value)
//	})
//
//	code, err := hotp.GenerateCodeCustom(key, counter, hotp.GenerateOpts{
//	    Trace: rec,
//	})
//
// Step names are stable strings of the form "pkg/step", e.g. "hmac/inner" or
// "pbkdf2/t/3". Recorders must treat the value slice as read-only and must not
// retain it after the call returns.
package trace

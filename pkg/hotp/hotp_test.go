package hotp

import (
	"encoding/base32"
	"errors"
	"testing"

	"github.com/pquerna/otp"
	pqhotp "github.com/pquerna/otp/hotp"

	"github.com/jhahn/go-prf/pkg/digest"
	"github.com/jhahn/go-prf/pkg/trace"
)

// rfc4226Key is the shared secret of RFC 4226 Appendix D.
var rfc4226Key = []byte("12345678901234567890")

// TestGenerateCode_RFC4226 checks the ten Appendix D reference codes.
func TestGenerateCode_RFC4226(t *testing.T) {
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}
	for counter, expected := range want {
		got, err := GenerateCode(rfc4226Key, uint64(counter))
		if err != nil {
			t.Fatalf("counter %d: %v", counter, err)
		}
		if got != expected {
			t.Errorf("counter %d: got %q, want %q", counter, got, expected)
		}
	}
}

// TestGenerateCode_Base32Secret checks codes for a base32-provisioned secret
// against values confirmed with an authenticator app.
func TestGenerateCode_Base32Secret(t *testing.T) {
	key, err := base32.StdEncoding.DecodeString("BASE32SECRET3232")
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	wantKey := []byte{0x08, 0x24, 0x4D, 0xEA, 0x44, 0x14, 0x49, 0x3D, 0xEB, 0x7A}
	if string(key) != string(wantKey) {
		t.Fatalf("decoded key = % X, want % X", key, wantKey)
	}

	tests := []struct {
		counter uint64
		want    string
	}{
		{1, "055283"},
		{2, "795760"},
	}
	for _, tt := range tests {
		got, err := GenerateCode(key, tt.counter)
		if err != nil {
			t.Fatalf("counter %d: %v", tt.counter, err)
		}
		if got != tt.want {
			t.Errorf("counter %d: got %q, want %q", tt.counter, got, tt.want)
		}
	}
}

// TestGenerateCodeCustom_MatchesPquerna cross-checks generation against the
// pquerna/otp reference library for every algorithm and digit count both
// implementations support.
func TestGenerateCodeCustom_MatchesPquerna(t *testing.T) {
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(rfc4226Key)

	tests := []struct {
		name   string
		spec   digest.Spec
		pqAlgo otp.Algorithm
		digits uint
	}{
		{"SHA1 6 digits", digest.SHA1(), otp.AlgorithmSHA1, 6},
		{"SHA1 7 digits", digest.SHA1(), otp.AlgorithmSHA1, 7},
		{"SHA1 8 digits", digest.SHA1(), otp.AlgorithmSHA1, 8},
		{"SHA256 6 digits", digest.SHA256(), otp.AlgorithmSHA256, 6},
		{"SHA256 8 digits", digest.SHA256(), otp.AlgorithmSHA256, 8},
		{"SHA512 6 digits", digest.SHA512(), otp.AlgorithmSHA512, 6},
		{"SHA512 8 digits", digest.SHA512(), otp.AlgorithmSHA512, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for counter := uint64(0); counter < 20; counter++ {
				got, err := GenerateCodeCustom(rfc4226Key, counter, GenerateOpts{
					Digits:    tt.digits,
					Algorithm: tt.spec,
				})
				if err != nil {
					t.Fatalf("counter %d: %v", counter, err)
				}
				want, err := pqhotp.GenerateCodeCustom(secret, counter, pqhotp.ValidateOpts{
					Digits:    otp.Digits(tt.digits),
					Algorithm: tt.pqAlgo,
				})
				if err != nil {
					t.Fatalf("counter %d: pquerna: %v", counter, err)
				}
				if got != want {
					t.Errorf("counter %d: got %q, pquerna %q", counter, got, want)
				}
			}
		})
	}
}

// TestGenerateCodeCustom_CodeShape verifies the output is always exactly
// digits decimal characters, for every supported digit count.
func TestGenerateCodeCustom_CodeShape(t *testing.T) {
	for digits := uint(1); digits <= 10; digits++ {
		for counter := uint64(0); counter < 50; counter++ {
			code, err := GenerateCodeCustom(rfc4226Key, counter, GenerateOpts{Digits: digits})
			if err != nil {
				t.Fatalf("digits %d counter %d: %v", digits, counter, err)
			}
			if uint(len(code)) != digits {
				t.Fatalf("digits %d counter %d: code %q has length %d", digits, counter, code, len(code))
			}
			for _, r := range code {
				if r < '0' || r > '9' {
					t.Fatalf("digits %d counter %d: code %q has non-digit %q", digits, counter, code, r)
				}
			}
		}
	}
}

func TestGenerateCodeCustom_InvalidDigits(t *testing.T) {
	_, err := GenerateCodeCustom(rfc4226Key, 0, GenerateOpts{Digits: 11})
	if !errors.Is(err, ErrInvalidDigits) {
		t.Errorf("digits 11: got %v, want ErrInvalidDigits", err)
	}
}

func TestGenerateCode_Deterministic(t *testing.T) {
	a, err := GenerateCode(rfc4226Key, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateCode(rfc4226Key, 42)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("two calls disagree: %q vs %q", a, b)
	}
}

func TestDynamicTruncate(t *testing.T) {
	// RFC 4226 §5.4 worked example.
	sum := []byte{
		0x1f, 0x86, 0x98, 0x69, 0x0e, 0x02, 0xca, 0x16, 0x61, 0x85,
		0x50, 0xef, 0x7f, 0x19, 0xda, 0x8e, 0x94, 0x5b, 0x55, 0x5a,
	}
	got, err := DynamicTruncate(sum)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint32(0x50ef7f19); got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

// TestDynamicTruncate_TopBitClear verifies the sign bit is masked for every
// possible offset nibble.
func TestDynamicTruncate_TopBitClear(t *testing.T) {
	sum := make([]byte, 20)
	for i := range sum {
		sum[i] = 0xFF
	}
	for nibble := byte(0); nibble < 16; nibble++ {
		sum[len(sum)-1] = 0xF0 | nibble
		v, err := DynamicTruncate(sum)
		if err != nil {
			t.Fatalf("nibble %d: %v", nibble, err)
		}
		if v >= 1<<31 {
			t.Errorf("nibble %d: value %#x has top bit set", nibble, v)
		}
	}
}

func TestDynamicTruncate_ShortDigest(t *testing.T) {
	tests := []struct {
		name string
		sum  []byte
	}{
		{"empty", nil},
		{"window past end", []byte{0, 0, 0, 0, 0, 0, 0x0F}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DynamicTruncate(tt.sum); !errors.Is(err, ErrDigestTooShort) {
				t.Errorf("got %v, want ErrDigestTooShort", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	code, err := GenerateCode(rfc4226Key, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !Validate(code, 5, rfc4226Key) {
		t.Error("valid code rejected")
	}
	if Validate(code, 6, rfc4226Key) {
		t.Error("code accepted for wrong counter")
	}
	if Validate("00"+code, 5, rfc4226Key) {
		t.Error("code of wrong length accepted")
	}
}

func TestValidateCustom_PropagatesErrors(t *testing.T) {
	_, err := ValidateCustom("123456", 0, rfc4226Key, GenerateOpts{Digits: 11})
	if !errors.Is(err, ErrInvalidDigits) {
		t.Errorf("got %v, want ErrInvalidDigits", err)
	}
}

func TestGenerateCodeCustom_Trace(t *testing.T) {
	seen := map[string]bool{}
	rec := trace.RecorderFunc(func(step string, value []byte) {
		seen[step] = true
	})
	traced, err := GenerateCodeCustom(rfc4226Key, 1, GenerateOpts{Trace: rec})
	if err != nil {
		t.Fatal(err)
	}
	plain, err := GenerateCode(rfc4226Key, 1)
	if err != nil {
		t.Fatal(err)
	}
	if traced != plain {
		t.Errorf("tracing changed the code: %q vs %q", traced, plain)
	}
	for _, step := range []string{"hotp/counter", "hmac/sum", "hotp/truncated"} {
		if !seen[step] {
			t.Errorf("step %q not recorded (saw %v)", step, seen)
		}
	}
}

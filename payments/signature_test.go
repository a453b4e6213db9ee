package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"payment.succeeded","object":{"id":"pay_1"}}`)
	secret := "whsec_test"

	tests := []struct {
		name      string
		signature string
		secret    string
		want      bool
	}{
		{
			name:      "valid",
			signature: sign(body, secret),
			secret:    secret,
			want:      true,
		},
		{
			name:      "valid uppercase hex",
			signature: "0x", // replaced below
			secret:    secret,
			want:      true,
		},
		{
			name:      "wrong secret",
			signature: sign(body, "other"),
			secret:    secret,
			want:      false,
		},
		{
			name:      "empty signature",
			signature: "",
			secret:    secret,
			want:      false,
		},
		{
			name:      "empty secret",
			signature: sign(body, secret),
			secret:    "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := tt.signature
			if tt.name == "valid uppercase hex" {
				sig = toUpper(sign(body, secret))
			}
			if got := VerifySignature(body, sig, tt.secret); got != tt.want {
				t.Errorf("VerifySignature = %v, want %v", got, tt.want)
			}
		})
	}
}

func toUpper(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'a' && b <= 'f' {
			out[i] = b - 'a' + 'A'
		}
	}
	return string(out)
}

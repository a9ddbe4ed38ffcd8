package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"testing"
)

func sign(newHash func() hash.Hash, secret string, body []byte) string {
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)
	secret := "s3cret"

	cases := []struct {
		name   string
		header string
		ok     bool
		err    error
	}{
		{"sha1", "sha1=" + sign(sha1.New, secret, body), true, nil},
		{"sha256", "sha256=" + sign(sha256.New, secret, body), true, nil},
		{"upper case algo", "SHA256=" + sign(sha256.New, secret, body), true, nil},
		{"wrong secret", "sha1=" + sign(sha1.New, "other", body), false, nil},
		{"algo mismatch", "sha256=" + sign(sha1.New, secret, body), false, nil},
		{"missing", "", false, ErrMissingSignature},
		{"no separator", "sha1", false, ErrMalformedSignature},
		{"empty digest", "sha1=", false, ErrMalformedSignature},
		{"not hex", "sha1=zzzz", false, ErrMalformedSignature},
		{"unknown algo", "whirlpool=abcd", false, ErrUnsupportedAlgorithm},
	}
	for _, tc := range cases {
		ok, err := Verify(tc.header, body, secret)
		if ok != tc.ok || !errors.Is(err, tc.err) {
			t.Fatalf("%s: want=%v/%v got=%v/%v", tc.name, tc.ok, tc.err, ok, err)
		}
	}
}

func TestVerifyTamperedBody(t *testing.T) {
	header := "sha1=" + sign(sha1.New, "k", []byte("a"))
	if ok, err := Verify(header, []byte("b"), "k"); ok || err != nil {
		t.Fatalf("tampered: got=%v/%v", ok, err)
	}
}

package webhook

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"strings"
)

const SignatureHeader = "X-Hub-Signature"

var (
	ErrMissingSignature     = errors.New("signature header missing")
	ErrMalformedSignature   = errors.New("signature header is not algo=hexdigest")
	ErrUnsupportedAlgorithm = errors.New("unsupported signature algorithm")
)

var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Verify checks an "algo=hexdigest" header against the HMAC of body keyed by secret.
func Verify(signatureHeader string, body []byte, secret string) (bool, error) {
	if signatureHeader == "" {
		return false, ErrMissingSignature
	}
	name, digest, ok := strings.Cut(signatureHeader, "=")
	if !ok || name == "" || digest == "" {
		return false, ErrMalformedSignature
	}
	newHash, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return false, ErrUnsupportedAlgorithm
	}
	expected, err := hex.DecodeString(digest)
	if err != nil {
		return false, ErrMalformedSignature
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected), nil
}

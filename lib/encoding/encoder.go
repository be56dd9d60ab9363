// Package encoding seals small values into URL-safe tokens.
//
// Two modes are supported:
//   - Signed (default): msgpack + base64 + HMAC tag, readable but tamper-proof
//   - Encrypted: msgpack sealed with AES-256-GCM, opaque to clients
//
// uplink uses it to carry the RouteNotFound details through a redirect to
// the error page without trusting the query string.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid token format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// encryptedPrefix marks tokens produced in encrypted mode so Decode can
// tell the two formats apart.
const encryptedPrefix = "e."

// tagSize is the truncated HMAC length (128 bits).
const tagSize = 16

// Encoder seals and opens tokens with a single key.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys that are not exactly 32 bytes are
// stretched with SHA-256 so any secret can be used.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty key")
	}
	if len(key) != 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encoding: cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encoding: gcm: %w", err)
	}

	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode serializes v with msgpack and returns a token.
// If sensitive is true the token is encrypted, otherwise it is signed.
func (e *Encoder) Encode(v any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}

	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode opens a token produced by Encode into v.
// The mode is detected from the token itself.
func (e *Encoder) Decode(token string, v any) error {
	var (
		packed []byte
		err    error
	)
	if rest, ok := strings.CutPrefix(token, encryptedPrefix); ok {
		packed, err = e.decrypt(rest)
	} else {
		packed, err = e.verify(token)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(data))
	return b64 + "." + sig
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:tagSize]
}

// verify checks and strips the signature of a signed token.
func (e *Encoder) verify(token string) ([]byte, error) {
	body, tag, ok := strings.Cut(token, ".")
	if !ok || body == "" || tag == "" {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(tag)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encoding: nonce: %w", err)
	}

	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return encryptedPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *Encoder) decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(sealed) < e.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce, ciphertext := sealed[:e.gcm.NonceSize()], sealed[e.gcm.NonceSize():]
	data, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}

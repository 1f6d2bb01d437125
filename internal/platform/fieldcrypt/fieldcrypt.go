// Package fieldcrypt seals individual payloads with AES-GCM under a key
// derived per tenant from one master secret.
package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// Prefix marks a sealed token.
const Prefix = "enc:v1:"

const keySize = 32

var (
	ErrShortKey  = errors.New("fieldcrypt: master key must be at least 32 bytes")
	ErrMalformed = errors.New("fieldcrypt: malformed token")
)

// Cipher is safe for concurrent use.
type Cipher struct {
	master []byte
	aeads  sync.Map // tenant -> cipher.AEAD
}

func New(masterKey []byte) (*Cipher, error) {
	if len(masterKey) < keySize {
		return nil, ErrShortKey
	}
	return &Cipher{master: append([]byte(nil), masterKey...)}, nil
}

// IsSealed reports whether s looks like a token produced by Seal.
func IsSealed(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Seal encrypts plaintext for tenantID. The tenant is bound as associated
// data, so a token cannot be opened under another tenant.
func (c *Cipher) Seal(tenantID string, plaintext []byte) (string, error) {
	aead, err := c.aead(tenantID)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("fieldcrypt: nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, plaintext, []byte(tenantID))
	return Prefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (c *Cipher) Open(tenantID, token string) ([]byte, error) {
	raw, ok := strings.CutPrefix(token, Prefix)
	if !ok {
		return nil, ErrMalformed
	}
	data, err := base64.RawStdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	aead, err := c.aead(tenantID)
	if err != nil {
		return nil, err
	}
	if len(data) < aead.NonceSize() {
		return nil, ErrMalformed
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(tenantID))
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: open: %w", err)
	}
	return plaintext, nil
}

func (c *Cipher) aead(tenantID string) (cipher.AEAD, error) {
	if v, ok := c.aeads.Load(tenantID); ok {
		return v.(cipher.AEAD), nil
	}
	key := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, c.master, nil, []byte("caseregistry/tenant/"+tenantID))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("fieldcrypt: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: gcm: %w", err)
	}
	actual, _ := c.aeads.LoadOrStore(tenantID, aead)
	return actual.(cipher.AEAD), nil
}

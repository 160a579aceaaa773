// Package crypto seals control-socket messages with NaCl secretbox when a
// token is configured.
//
// The 32-byte key is derived from the token with HKDF-SHA256. Each sealed
// message is a random 24-byte nonce followed by the ciphertext:
//
//	[ 24-byte nonce ][ ciphertext ]
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var hkdfInfo = []byte("klippy-control-v1")

// ErrOpen is returned when a message fails authentication.
var ErrOpen = errors.New("decryption failed (wrong token?)")

// Key is a secretbox key.
type Key [keySize]byte

// DeriveKey derives a Key from token. An empty token yields a nil Key, which
// the wire layer treats as "no encryption".
func DeriveKey(token string) (*Key, error) {
	if token == "" {
		return nil, nil
	}
	h := hkdf.New(sha256.New, []byte(token), nil, hkdfInfo)
	var k Key
	if _, err := io.ReadFull(h, k[:]); err != nil {
		return nil, fmt.Errorf("key derivation: %w", err)
	}
	return &k, nil
}

// Seal encrypts plaintext and returns nonce+ciphertext.
func (k *Key) Seal(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("nonce generation: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, (*[keySize]byte)(k)), nil
}

// Open reverses Seal.
func (k *Key) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("ciphertext too short")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, (*[keySize]byte)(k))
	if !ok {
		return nil, ErrOpen
	}
	return plain, nil
}

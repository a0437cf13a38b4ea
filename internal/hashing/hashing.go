// Package hashing turns wordlist candidates into the hex digests stored in
// users.password_hash.
package hashing

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
	ErrMissingKey       = errors.New("hash algorithm requires a key")
)

// Hasher produces lowercase hex digests.
type Hasher interface {
	Name() string
	Sum(data []byte) string
}

type digest struct {
	name    string
	newHash func() hash.Hash
}

func (d digest) Name() string { return d.name }

func (d digest) Sum(data []byte) string {
	h := d.newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

var algorithms = []string{"blake2b-256", "hmac-sha256", "md5", "sha1", "sha256"}

// Algorithms lists the supported algorithm names.
func Algorithms() []string {
	return append([]string(nil), algorithms...)
}

func constructor(name string, key []byte) (func() hash.Hash, error) {
	switch name {
	case "md5":
		return md5.New, nil
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "hmac-sha256":
		if len(key) == 0 {
			return nil, ErrMissingKey
		}
		return func() hash.Hash { return hmac.New(sha256.New, key) }, nil
	case "blake2b-256":
		// blake2b rejects keys longer than 64 bytes; surface that once here
		// rather than on every Sum.
		if _, err := blake2b.New256(key); err != nil {
			return nil, err
		}
		return func() hash.Hash {
			h, _ := blake2b.New256(key)
			return h
		}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// New returns the Hasher for algorithm. key is used by the keyed algorithms
// and ignored by the plain digests.
func New(algorithm string, key []byte) (Hasher, error) {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	newHash, err := constructor(name, key)
	if errors.Is(err, ErrUnknownAlgorithm) {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownAlgorithm, algorithm, strings.Join(algorithms, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return digest{name: name, newHash: newHash}, nil
}

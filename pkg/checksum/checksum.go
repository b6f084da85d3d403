package checksum

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
)

// Algorithm represents a supported digest algorithm.
type Algorithm string

const (
	AlgorithmNone   Algorithm = ""
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// Supported lists the algorithms accepted by Parse, in help-text order.
var Supported = []Algorithm{AlgorithmSHA256, AlgorithmSHA512, AlgorithmBLAKE3}

// Parse maps a user-supplied name to an Algorithm. The empty string means no checksum.
func Parse(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if a == AlgorithmNone {
		return AlgorithmNone, nil
	}
	for _, s := range Supported {
		if a == s {
			return a, nil
		}
	}
	return AlgorithmNone, fmt.Errorf("unsupported checksum algorithm %q (supported: %s)", name, SupportedList())
}

// SupportedList returns the supported algorithm names joined for help and error text.
func SupportedList() string {
	names := make([]string, len(Supported))
	for i, s := range Supported {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// NewHasher returns a fresh hash for the algorithm, or nil for AlgorithmNone.
func (a Algorithm) NewHasher() hash.Hash {
	switch a {
	case AlgorithmSHA256:
		return sha256.New()
	case AlgorithmSHA512:
		return sha512.New()
	case AlgorithmBLAKE3:
		return blake3.New()
	default:
		return nil
	}
}

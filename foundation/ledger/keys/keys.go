// Package keys provides support for deriving wallet addresses from
// private secrets.
package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
)

// AddressPrefix is prepended to every derived address.
const AddressPrefix = "MC"

// addressHashLength is the number of hex characters taken from the
// RIPEMD-160 digest when forming an address.
const addressHashLength = 38

// secretLength is the number of random bytes in a generated secret.
const secretLength = 32

// GenerateSecret creates a new random private secret, hex encoded. The
// secret is the only credential for the wallet it derives; it is returned
// to the caller and never persisted.
func GenerateSecret() (string, error) {
	secret := make([]byte, secretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", err
	}

	return hex.EncodeToString(secret), nil
}

// PublicKeyHash derives the public key material for the specified secret
// as a hex encoded SHA-256 digest.
func PublicKeyHash(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(hash[:])
}

// DeriveAddress derives the wallet address that is controlled by the
// specified secret. The RIPEMD-160 digest is taken over the hex encoding
// of the public key hash, not the raw digest bytes. Any secret, including
// the empty string, maps to an address, and callers recompute the mapping
// on every access instead of persisting it.
func DeriveAddress(secret string) string {
	h := ripemd160.New()
	h.Write([]byte(PublicKeyHash(secret)))

	return AddressPrefix + hex.EncodeToString(h.Sum(nil))[:addressHashLength]
}

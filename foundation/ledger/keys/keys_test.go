package keys_test

import (
	"testing"

	"github.com/mycoinlabs/mycoin/foundation/ledger/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddress(t *testing.T) {
	const secret = "kennedy"

	address := keys.DeriveAddress(secret)
	assert.Equal(t, "MC2c9ecd01918c3e904307ec0f4c7a6c6acd3eb1", address)
	assert.Len(t, address, 40)

	// Derivation is pure. The same secret must resolve to the same
	// address on every call.
	assert.Equal(t, address, keys.DeriveAddress(secret))
}

func TestDeriveAddressEmptySecret(t *testing.T) {

	// Any byte string is a valid secret, including the empty one.
	address := keys.DeriveAddress("")
	assert.Equal(t, "MCba084d3f143f2896809d3f1d7dffed472b39d8", address)
}

func TestDeriveAddressDistinct(t *testing.T) {
	secrets := []string{"a", "b", "kennedy", "kenned", ""}

	seen := make(map[string]string)
	for _, secret := range secrets {
		address := keys.DeriveAddress(secret)
		if prev, exists := seen[address]; exists {
			t.Fatalf("secrets %q and %q derived the same address %s", prev, secret, address)
		}
		seen[address] = secret
	}
}

func TestPublicKeyHash(t *testing.T) {
	pkh := keys.PublicKeyHash("kennedy")
	assert.Equal(t, "214f3a838430f20ccd9ed41e1dc8983dfb989301ce22fd7676416ec73e34a6f9", pkh)
}

func TestGenerateSecret(t *testing.T) {
	s1, err := keys.GenerateSecret()
	require.NoError(t, err)

	s2, err := keys.GenerateSecret()
	require.NoError(t, err)

	assert.Len(t, s1, 64)
	assert.NotEqual(t, s1, s2)
}

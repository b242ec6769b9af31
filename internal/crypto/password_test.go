package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastService returns a service with a reduced round count so that the
// combinational tests stay quick. The production constant is exercised by
// TestDefaultService_RoundTrip.
func fastService() *passwordService {
	return &passwordService{iterations: 1_000}
}

func TestDefaultService_RoundTrip(t *testing.T) {
	svc := NewPasswordService()

	stored, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, svc.CheckPassword(stored, "correct horse battery staple"))
	assert.False(t, svc.CheckPassword(stored, "correct horse battery staplex"))
}

func TestHashPassword_StoredFormat(t *testing.T) {
	svc := fastService()

	stored, err := svc.HashPassword("secret")
	require.NoError(t, err)

	salt, digest, found := strings.Cut(stored, "$")
	require.True(t, found, "stored credential must contain a $ separator")
	assert.Len(t, salt, saltBytes*2, "salt must be hex of 16 random bytes")
	assert.Len(t, digest, keyBytes*2, "digest must be hex of the 32-byte key")
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	svc := fastService()

	first, err := svc.HashPassword("secret")
	require.NoError(t, err)
	second, err := svc.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must hash to different credentials")
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	svc := fastService()

	stored, err := svc.HashPassword("secret")
	require.NoError(t, err)

	assert.False(t, svc.CheckPassword(stored, "Secret"))
	assert.False(t, svc.CheckPassword(stored, ""))
}

func TestCheckPassword_MalformedStored(t *testing.T) {
	svc := fastService()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "no dollar separator", stored: "malformed-no-dollar"},
		{name: "empty string", stored: ""},
		{name: "empty salt", stored: "$deadbeef"},
		{name: "empty digest", stored: "deadbeef$"},
		{name: "lone dollar", stored: "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.CheckPassword(tt.stored, "whatever"))
		})
	}
}

// TestCheckPassword_SplitsOnFirstDollar pins the parse rule: everything
// after the first "$" is the digest, even if it contains more dollars.
func TestCheckPassword_SplitsOnFirstDollar(t *testing.T) {
	svc := fastService()

	stored, err := svc.HashPassword("pa$$word")
	require.NoError(t, err)

	assert.True(t, svc.CheckPassword(stored, "pa$$word"))
}

// TestIterationCountsAreSymmetric guards against the hash/verify count
// drifting apart: a credential produced by HashPassword must always verify
// through CheckPassword on the same service.
func TestIterationCountsAreSymmetric(t *testing.T) {
	svc := &passwordService{iterations: hashIterations}

	stored, err := svc.HashPassword("symmetry")
	require.NoError(t, err)
	assert.True(t, svc.CheckPassword(stored, "symmetry"))
}

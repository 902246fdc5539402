package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("acc-1", "admin@t1.test", "T1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", accountID)
}

func TestJWTCodec_Expired(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("acc-1", "admin@t1.test", "T1", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	issuer, _ := NewJWTCodec("secret-a")
	_, verifier := NewJWTCodec("secret-b")

	token, err := issuer.Issue("acc-1", "admin@t1.test", "T1", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_Garbage(t *testing.T) {
	_, verifier := NewJWTCodec("test-secret")
	_, err := verifier.Verify("not-a-token")
	require.Error(t, err)
}

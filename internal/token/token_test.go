package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New([]byte("test_secret"), DefaultTTL)

	raw, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)

	id, err := claims.UserID()
	require.NoError(t, err)
	require.EqualValues(t, 42, id)
}

func TestVerifyRejectsTampered(t *testing.T) {
	svc := New([]byte("test_secret"), DefaultTTL)

	raw, err := svc.Issue(1)
	require.NoError(t, err)

	flipped := []byte(raw)
	flipped[len(flipped)-1] ^= 0x01
	_, err = svc.Verify(string(flipped))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsEmptyAndGarbage(t *testing.T) {
	svc := New([]byte("test_secret"), DefaultTTL)

	_, err := svc.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	raw, err := New([]byte("secret_a"), DefaultTTL).Issue(7)
	require.NoError(t, err)

	_, err = New([]byte("secret_b"), DefaultTTL).Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := New([]byte("test_secret"), -time.Minute)

	raw, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecretFailsClosed(t *testing.T) {
	svc := New(nil, DefaultTTL)

	_, err := svc.Issue(1)
	require.ErrorIs(t, err, ErrMissingSecret)

	raw, err := New([]byte("test_secret"), DefaultTTL).Issue(1)
	require.NoError(t, err)
	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, ErrMissingSecret)
}

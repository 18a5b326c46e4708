package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/domain"
)

func testIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer([]byte("test-secret"), ttl)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := testIssuer(30 * 24 * time.Hour)
	acc := &domain.Account{ID: domain.AccountID("a@x.com"), Email: "a@x.com"}

	token, err := issuer.Issue(acc)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, claims.AccountID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestVerifyMalformedToken(t *testing.T) {
	issuer := testIssuer(time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := testIssuer(time.Hour)
	acc := &domain.Account{ID: domain.AccountID("a@x.com"), Email: "a@x.com"}

	token, err := issuer.Issue(acc)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "XXXX"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	acc := &domain.Account{ID: domain.AccountID("a@x.com"), Email: "a@x.com"}

	token, err := testIssuer(time.Hour).Issue(acc)
	require.NoError(t, err)

	other := NewTokenIssuer([]byte("different-secret"), time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := testIssuer(-time.Minute)
	acc := &domain.Account{ID: domain.AccountID("a@x.com"), Email: "a@x.com"}

	token, err := issuer.Issue(acc)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "hunter2"))
}

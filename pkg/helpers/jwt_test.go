package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Issue("42", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTManager_RoleDefaultsToUser(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.Issue("42", "")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, DefaultRole, claims.Role)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Issue("42", "")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_ForeignSecret(t *testing.T) {
	other := NewJWTManager("other-secret", time.Hour)
	token, _, err := other.Issue("42", "")
	require.NoError(t, err)

	m := NewJWTManager("test-secret", time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_MalformedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

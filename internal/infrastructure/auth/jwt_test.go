package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
)

const testSecret = "unit-test-signing-key"

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, 0)

	token, err := svc.Issue(42, "alice@x.com", "customer")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	restore := biztime.SetClock(func() time.Time { return issuedAt })
	token, err := svc.Issue(1, "a@x.com", "agent")
	restore()
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsTokenExpiredError(err))
	assert.False(t, errors.IsTokenInvalidError(err))
}

func TestJWTService_ValidJustBeforeExpiry(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	token, err := svc.Issue(1, "a@x.com", "agent")
	require.NoError(t, err)

	restore := biztime.SetClock(func() time.Time { return time.Now().Add(59 * time.Minute) })
	defer restore()

	_, err = svc.Verify(token)
	assert.NoError(t, err)
}

func TestJWTService_CorruptedSignature(t *testing.T) {
	svc := NewJWTService(testSecret, 0)
	token, err := svc.Issue(7, "b@x.com", "admin")
	require.NoError(t, err)

	dot := strings.LastIndex(token, ".")
	sig := []byte(token[dot+1:])
	// flip one bit of the first signature character, staying inside the base64url alphabet
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := token[:dot+1] + string(sig)

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.IsTokenInvalidError(err))
}

func TestJWTService_InvalidInputs(t *testing.T) {
	svc := NewJWTService(testSecret, 0)

	other, err := NewJWTService("another-secret", 0).Issue(1, "a@x.com", "customer")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"wrong secret":    other,
		"alg none":        none,
		"no expiry":       noExpiry,
		"non-numeric sub": badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			require.Error(t, err)
			assert.True(t, errors.IsTokenInvalidError(err))
		})
	}
}

package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRole is the role claim embedded when a caller has no explicit role.
const DefaultRole = "user"

// Verification failures are collapsed into a single 401 at the HTTP
// boundary; these sentinels keep the causes distinguishable for logging
// and tests.
var (
	// ErrTokenExpired means the signature verified but exp is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers signature mismatch, malformed structure and
	// missing required claims.
	ErrTokenInvalid = errors.New("token invalid")
)

// JWTManager issues and verifies signed session tokens (HS256).
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Claims is the signed payload of a session token.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token vouching for subjectID with the manager's TTL.
// An empty role defaults to DefaultRole.
func (m *JWTManager) Issue(subjectID, role string) (string, time.Time, error) {
	if role == "" {
		role = DefaultRole
	}
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify parses and validates a token. On failure it returns ErrTokenExpired
// or ErrTokenInvalid; both must surface as the same 401 externally.
func (m *JWTManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	if claims.Role == "" {
		claims.Role = DefaultRole
	}
	return claims, nil
}

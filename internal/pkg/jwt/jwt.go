package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

// Claims carry the authenticated subject. Scope distinguishes customer
// sessions from admin sessions; the jti keys the server-side session record.
type Claims struct {
	SubjectID int64  `json:"sub_id"`
	Scope     string `json:"scope"`
	jwtlib.RegisteredClaims
}

const (
	ScopeUser  = "user"
	ScopeAdmin = "admin"
)

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

// GenerateToken signs a session token and returns it together with its
// token ID.
func (s *Service) GenerateToken(subjectID int64, scope string) (token string, jti string, err error) {
	jti = uuid.NewString()
	claims := Claims{
		SubjectID: subjectID,
		Scope:     scope,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token, err = jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	return token, jti, err
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}

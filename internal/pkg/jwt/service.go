package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims mirrors what the upstream auth service puts into access tokens.
// This service only validates; issuance lives with the auth collaborator.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Service interface {
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte
	now    func() time.Time
}

func NewHMACService(secret string) *HMACService {
	return &HMACService{secret: []byte(secret), now: time.Now}
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}

var _ Service = (*HMACService)(nil)

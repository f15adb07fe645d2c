package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type contextKey int

const profileKey contextKey = iota + 1

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Profile is the caller identity carried inside the token.
type Profile struct {
	UserID      int      `json:"user_id"`
	Username    string   `json:"username"`
	Superuser   bool     `json:"superuser,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPerm reports whether the profile holds the capability. Superusers hold all of them.
func (p Profile) HasPerm(codename string) bool {
	if p.Superuser {
		return true
	}
	for i := range p.Permissions {
		if p.Permissions[i] == codename {
			return true
		}
	}
	return false
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(key string, ttl time.Duration) *Issuer {
	return &Issuer{
		key: []byte(key),
		ttl: ttl,
		now: time.Now,
	}
}

// Issue signs an HS256 token for the profile and returns it with its expiry.
func (i *Issuer) Issue(p Profile) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "SignedString")
	}
	return token, expiresAt, nil
}

func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return i.key, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileKey, p)
}

func FromContext(ctx context.Context) (Profile, bool) {
	p, ok := ctx.Value(profileKey).(Profile)
	return p, ok
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

func GetUserName(ctx context.Context) (string, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return "", errors.New("anonymous user")
	}
	return p.Username, nil
}

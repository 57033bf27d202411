// Package cursor encodes and verifies opaque pagination cursors for
// the list-sessions query. A cursor pins the (created_at, id) of the
// last row a caller saw so the next page can resume a stable
// created_at-descending, id-tiebroken order. The token is HMAC-signed,
// not encrypted: its claims are readable, but a client cannot forge or
// alter the position.
package cursor

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Claims is the payload signed into every cursor token.
type Claims struct {
	CreatedAtUnixNano int64  `json:"cat"`
	ID                string `json:"id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies cursor tokens with a single HMAC secret.
// It holds no other state and is safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode produces an opaque token for the given position. An empty
// id means "start from the beginning" and Encode returns "".
func (c *Codec) Encode(createdAt time.Time, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	claims := Claims{
		CreatedAtUnixNano: createdAt.UnixNano(),
		ID:                id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode recovers the position encoded by a token minted by Encode.
// An empty token decodes to the zero Claims (start from the beginning).
func (c *Codec) Decode(token string) (Claims, error) {
	if token == "" {
		return Claims{}, nil
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, ErrInvalidCursor
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidCursor
	}
	return *claims, nil
}

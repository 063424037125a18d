package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashCookie names the cookie carrying pending notices.
const FlashCookie = "flash"

const flashPendingKey = "flash.pending"

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type flashClaims struct {
	Messages []Flash `json:"messages"`
	jwt.RegisteredClaims
}

// FlashStore keeps notices between a redirect and the page it leads to.
// Notices travel in an HS256-signed cookie so clients cannot forge them.
type FlashStore struct {
	secret []byte
	ttl    time.Duration
}

// NewFlashStore creates a store signing with secret.
func NewFlashStore(secret string) *FlashStore {
	return &FlashStore{secret: []byte(secret), ttl: 5 * time.Minute}
}

// Add queues a notice for the next page. Call before writing the response.
func (f *FlashStore) Add(c *gin.Context, category, message string) error {
	pending := append(pendingFlashes(c), Flash{Category: category, Message: message})
	c.Set(flashPendingKey, pending)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		Messages: pending,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
		},
	})
	signed, err := token.SignedString(f.secret)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, signed, int(f.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Consume returns pending notices and clears the cookie. Cookies with a
// bad signature or past their expiry yield nothing.
func (f *FlashStore) Consume(c *gin.Context) []Flash {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return nil
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	var claims flashClaims
	_, err = jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return f.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil
	}
	return claims.Messages
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(flashPendingKey); ok {
		if flashes, ok := v.([]Flash); ok {
			return flashes
		}
	}
	return nil
}

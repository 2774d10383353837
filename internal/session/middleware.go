package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session id.
const CookieName = "melon_session"

const localsKey = "session"

// Middleware resolves the visitor's session on every request. The session id
// travels as the "sid" claim of an HS256 token in the session cookie; a
// missing or tampered cookie gets a freshly minted id. The resolved Session
// is stored in the request locals for FromCtx.
func Middleware(store Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ""
		if raw := c.Cookies(CookieName); raw != "" {
			sid = parseSessionToken(raw, secret)
		}

		fresh := sid == ""
		if fresh {
			sid = uuid.NewString()
		}

		c.Locals(localsKey, store.Get(sid))

		if fresh {
			signed, err := signSessionToken(sid, secret)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create session"})
			}
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    signed,
				Path:     "/",
				HTTPOnly: true,
			})
		}

		return c.Next()
	}
}

// FromCtx returns the Session resolved by Middleware for this request.
func FromCtx(c *fiber.Ctx) (*Session, error) {
	v := c.Locals(localsKey)
	if v == nil {
		return nil, fiber.ErrInternalServerError
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, fiber.ErrInternalServerError
	}
	return sess, nil
}

func signSessionToken(sid string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	return token.SignedString(secret)
}

// parseSessionToken returns the embedded session id, or "" if the token does
// not verify.
func parseSessionToken(raw string, secret []byte) string {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

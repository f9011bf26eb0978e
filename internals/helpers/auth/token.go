package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token tidak valid")

// SignAccessToken membuat JWT HS256 untuk akun staff.
func SignAccessToken(secret string, s StaffIdentity, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       s.ProfileID.String(),
		"id":        s.ProfileID.String(),
		"email":     s.Email,
		"full_name": s.FullName,
		"role":      s.Role,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	if s.TeacherID != nil {
		claims["teacher_id"] = s.TeacherID.String()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return tok, exp, err
}

// ParseAccessToken memverifikasi tanda tangan & exp, lalu mengembalikan profile id + exp.
func ParseAccessToken(secret, raw string) (uuid.UUID, time.Time, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, time.Time{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, time.Time{}, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
		return uuid.Nil, time.Time{}, ErrInvalidToken
	}

	idStr := strClaim(claims, "id")
	if idStr == "" {
		idStr = strClaim(claims, "sub")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, time.Time{}, ErrInvalidToken
	}

	var exp time.Time
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0).UTC()
	}
	return id, exp, nil
}

// RawAccessToken: Authorization: Bearer xxx, fallback cookie access_token.
func RawAccessToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if fields := strings.Fields(authz); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

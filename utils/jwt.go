package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by every CollectiQ token. club_id and role mirror the
// app_metadata the identity provider stamps on its JWTs.
type Claims struct {
	UserID uuid.UUID
	Email  string
	ClubID uuid.UUID
	Role   string
}

func GenerateToken(secret []byte, cl Claims, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     cl.UserID.String(),
		"email":   cl.Email,
		"club_id": cl.ClubID.String(),
		"role":    cl.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func VerifyToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := mc["sub"].(string)
	clubID, _ := mc["club_id"].(string)
	role, _ := mc["role"].(string)
	email, _ := mc["email"].(string)

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}
	cid, err := uuid.Parse(clubID)
	if err != nil {
		return nil, errors.New("invalid club_id claim")
	}
	if role == "" {
		return nil, errors.New("missing role claim")
	}

	return &Claims{UserID: userID, Email: email, ClubID: cid, Role: role}, nil
}

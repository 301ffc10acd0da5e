// Package auth issues and verifies the signed bearer credentials the API
// uses to identify users, and hashes their passwords at rest.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/poseform/formtrack/internal/common"
)

// Claims is the JWT claim set: the registered claims plus the owning
// user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs a claim set for userID, valid for validityDuration,
// with HS256 over secretKey.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry and returns the verified user
// identifier. Expired tokens map to common.ErrExpiredCredential; anything
// else wrong with the token (malformed, tampered, wrong algorithm, missing
// user id) maps to common.ErrInvalidCredential.
func VerifyToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrExpiredCredential
		}
		return "", common.ErrInvalidCredential
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidCredential
	}

	return claims.UserID, nil
}

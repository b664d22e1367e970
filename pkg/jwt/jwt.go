package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token lifetime (7 days)
const TokenExpiryLogin = 7 * 24 * time.Hour

// GenerateToken signs a session token carrying only the user's id and
// username. Password material never goes into claims.
func GenerateToken(secret []byte, userID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      username,
		"username": username,
		"user_id":  userID,
		"exp":      time.Now().Add(TokenExpiryLogin).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// UserIDFromClaims pulls the numeric user id out of parsed claims.
func UserIDFromClaims(claims jwt.MapClaims) (uint, error) {
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user_id in token claims")
	}
	return uint(idFloat), nil
}

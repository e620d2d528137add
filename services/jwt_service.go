package services

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

// GenerateJWT issues a signed token carrying the user's ID and role.
// Tokens expire after 24 hours.
func GenerateJWT(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   strconv.FormatUint(uint64(userID), 10),
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(strings.TrimSpace(os.Getenv("JWT_SECRET"))))
}

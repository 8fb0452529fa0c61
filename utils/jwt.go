package utils

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

var (
	jwtSecretOnce sync.Once
	jwtSecret     []byte
)

// loadSecret reads the signing secret, pulling in .env first so the secret
// is found no matter which package touches tokens before main runs.
func loadSecret() []byte {
	_ = godotenv.Load()

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET environment variable not set")
	}
	return []byte(secret)
}

func secretKey() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecret = loadSecret()
	})
	return jwtSecret
}

// Claims carries the caller identity embedded in a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token asserting the given email. Tokens
// expire after one hour; re-issuance is the client's responsibility.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and verifies a session token. It fails for tokens
// that are malformed, expired, or signed with the wrong key or algorithm.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey(), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

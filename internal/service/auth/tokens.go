package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "spa-booking-service"

// Claims содержимое токена сессии администратора
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminID возвращает ID администратора из subject
func (c *Claims) AdminID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenManager выпускает и проверяет подписанные токены сессий (HS256)
type TokenManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// Issue выпускает токен для администратора, jti - идентификатор сессии
func (m *TokenManager) Issue(adminID int64, username string) (string, *Claims, error) {
	now := m.timeProvider.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(adminID, 10),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}
	return token, claims, nil
}

// Parse проверяет подпись, срок действия и издателя токена
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.timeProvider.Now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := claims.AdminID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return claims, nil
}

// Package jwt реализует генерацию и парсинг JWT токенов аккаунтов.
//
// Maker определяет интерфейс для создания и проверки токенов,
// MakerImpl — реализация на секретном ключе HMAC и сроке жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создаёт токен для аккаунта с указанными uid и email.
	GenerateToken(accountUID, email string) (string, error)
	// ParseToken возвращает *CustomClaims с uid и email аккаунта.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

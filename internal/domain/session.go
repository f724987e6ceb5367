package domain

import (
	"strings"
	"time"
)

// Session — серверная сессия администратора.
// Для приложения объект доступен только на чтение.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

func NewSession(token, email string, createdAt time.Time) *Session {
	return &Session{
		Token:     token,
		Email:     email,
		CreatedAt: createdAt,
	}
}

// IsAdmin сравнивает e-mail сессии с адресом администратора без учёта регистра.
func (s *Session) IsAdmin(adminEmail string) bool {
	if s == nil {
		return false
	}

	return strings.EqualFold(s.Email, adminEmail)
}

package converter

import "time"

// SessionRedisModel — JSON-представление сессии администратора в Redis.
type SessionRedisModel struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

package converter

import "github.com/shan-traders/storefront-backend/internal/domain"

// SessionConverter преобразует сессии между domain и Redis-моделью.
type SessionConverter interface {
	ToRedisModel(entity *domain.Session) *SessionRedisModel
	ToEntity(model *SessionRedisModel) *domain.Session
}

type sessionConverter struct{}

func NewSessionConverter() SessionConverter {
	return &sessionConverter{}
}

func (c *sessionConverter) ToRedisModel(entity *domain.Session) *SessionRedisModel {
	if entity == nil {
		return nil
	}

	return &SessionRedisModel{
		Token:     entity.Token,
		Email:     entity.Email,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *sessionConverter) ToEntity(model *SessionRedisModel) *domain.Session {
	if model == nil {
		return nil
	}

	return domain.NewSession(model.Token, model.Email, model.CreatedAt)
}

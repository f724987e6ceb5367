package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase реализует вход единственного администратора и разрешение сессий.
type AuthUseCase struct {
	sessionRepo SessionRepository
	adminCfg    *cfg.AdminCfg
	logger      logger.Logger
}

func NewAuthUC(sessionRepo SessionRepository, adminCfg *cfg.AdminCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		sessionRepo: sessionRepo,
		adminCfg:    adminCfg,
		logger:      logger,
	}
}

// Login проверяет адрес (без учёта регистра) и пароль по bcrypt-хэшу,
// затем создаёт сессию с непрозрачным токеном.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	const op = "AuthUseCase.Login"

	email = strings.TrimSpace(email)

	if !strings.EqualFold(email, a.adminCfg.Email) {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminCfg.PasswordHash), []byte(password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	session := domain.NewSession(uuid.NewString(), email, time.Now().UTC())

	if err := a.sessionRepo.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// Resolve возвращает сессию по токену из cookie.
// Пустой или неизвестный токен — анонимный вызов, а не ошибка.
func (a *AuthUseCase) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	const op = "AuthUseCase.Resolve"

	if token == "" {
		return nil, nil
	}

	session, err := a.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// SignOut удаляет сессию. Отсутствие токена не считается ошибкой.
func (a *AuthUseCase) SignOut(ctx context.Context, token string) error {
	const op = "AuthUseCase.SignOut"

	if token == "" {
		return nil
	}

	if err := a.sessionRepo.Delete(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

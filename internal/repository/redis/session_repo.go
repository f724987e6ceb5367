package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/shan-traders/storefront-backend/internal/cfg"
	"github.com/shan-traders/storefront-backend/internal/domain"
	"github.com/shan-traders/storefront-backend/internal/repository/redis/converter"
	"github.com/shan-traders/storefront-backend/pkg/clients"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// SessionRepo хранит сессии администратора в Redis с TTL.
// Протухание сессии обеспечивается самим Redis, отдельной уборки нет.
type SessionRepo struct {
	client *clients.RedisClient
	conv   converter.SessionConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Save записывает сессию под её токеном с настроенным TTL.
func (r *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(r.conv.ToRedisModel(session))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.sessionKey(session.Token), data, r.cfg.SessionTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Get возвращает сессию по токену. Отсутствие ключа — не ошибка, а nil-сессия.
func (r *SessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("session unmarshal failed, treating as expired: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	return r.conv.ToEntity(&model), nil
}

// Delete удаляет сессию по токену. Удаление несуществующего ключа — no-op.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	if err := r.client.Client.Del(ctx, r.sessionKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ для одной сессии.
func (r *SessionRepo) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

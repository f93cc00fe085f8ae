package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// MemorySessionRepository держит диалоги бота в памяти; неактивная сессия
// забывается через idleTTL.
type MemorySessionRepository struct {
	sessions *cache.Cache
}

// NewMemorySessionRepository создаёт хранилище; idleTTL <= 0 хранит сессии бессрочно.
func NewMemorySessionRepository(idleTTL time.Duration) *MemorySessionRepository {
	if idleTTL <= 0 {
		return &MemorySessionRepository{sessions: cache.New(cache.NoExpiration, 0)}
	}
	return &MemorySessionRepository{sessions: cache.New(idleTTL, 2*idleTTL)}
}

func sessionKey(userID, chatID int64) string {
	return strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(chatID, 10)
}

// Get отдаёт копию: изменения видны другим только после Save
func (r *MemorySessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if v, ok := r.sessions.Get(sessionKey(userID, chatID)); ok {
		s := v.(entity.ChatSession)
		return &s, nil
	}
	return entity.NewChatSession(userID, chatID), nil
}

// Save сохраняет сессию и продлевает её срок жизни
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.ChatSession) error {
	if session == nil {
		return errors.New("nil session")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.sessions.SetDefault(sessionKey(session.UserID, session.ChatID), *session)
	return nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, userID, chatID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.sessions.Delete(sessionKey(userID, chatID))
	return nil
}

var _ port.SessionRepository = (*MemorySessionRepository)(nil)

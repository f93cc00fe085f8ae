package port

import (
	"context"

	"solar-inspector/internal/domain/entity"
)

// SessionRepository хранилище диалогов бота
type SessionRepository interface {
	// Get возвращает сессию чата, новую если её нет или она истекла
	Get(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error)

	Save(ctx context.Context, session *entity.ChatSession) error

	Delete(ctx context.Context, userID, chatID int64) error
}

package app

import (
	"context"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// SessionService шаги диалога Telegram-бота
type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// BeginCheck ждёт от пользователя имя снимка
func (s *SessionService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error) {
	return s.update(ctx, userID, chatID, func(cs *entity.ChatSession) {
		cs.SetState(entity.StateAwaitingImageID)
	})
}

// CompleteCheck запоминает проверенный снимок и возвращает в меню
func (s *SessionService) CompleteCheck(ctx context.Context, userID, chatID int64, imageID string) (*entity.ChatSession, error) {
	return s.update(ctx, userID, chatID, func(cs *entity.ChatSession) {
		cs.CompleteCheck(imageID)
	})
}

func (s *SessionService) Cancel(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error) {
	return s.update(ctx, userID, chatID, func(cs *entity.ChatSession) {
		cs.SetState(entity.StateMainMenu)
	})
}

// Reset забывает диалог целиком
func (s *SessionService) Reset(ctx context.Context, userID, chatID int64) error {
	return s.repo.Delete(ctx, userID, chatID)
}

func (s *SessionService) update(ctx context.Context, userID, chatID int64, apply func(*entity.ChatSession)) (*entity.ChatSession, error) {
	cs, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	apply(cs)
	if err := s.repo.Save(ctx, cs); err != nil {
		return nil, err
	}

	return cs, nil
}

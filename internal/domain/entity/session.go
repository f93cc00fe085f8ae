package entity

// SessionState шаг диалога с ботом
type SessionState string

const (
	StateMainMenu        SessionState = "main_menu"         // В главном меню
	StateAwaitingImageID SessionState = "awaiting_image_id" // Ожидание имени снимка для /check
)

// ChatSession состояние диалога одного пользователя в одном чате
type ChatSession struct {
	UserID      int64        // Telegram User ID
	ChatID      int64        // Telegram Chat ID
	State       SessionState // Текущий шаг диалога
	LastImageID string       // Последний проверенный снимок
}

func NewChatSession(userID, chatID int64) *ChatSession {
	return &ChatSession{
		UserID: userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

func (s *ChatSession) SetState(state SessionState) {
	s.State = state
}

// AwaitsImageID следующий текст нужно трактовать как имя снимка
func (s *ChatSession) AwaitsImageID() bool {
	return s.State == StateAwaitingImageID
}

// CompleteCheck возвращает диалог в меню и запоминает снимок
func (s *ChatSession) CompleteCheck(imageID string) {
	s.State = StateMainMenu
	s.LastImageID = imageID
}

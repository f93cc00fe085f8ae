package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
	"solar-inspector/internal/platform/logger"
)

const (
	msgStart = `👋 Привет! Я показываю результаты проверки солнечных панелей по снимкам электролюминесценции.

📋 Команды:
/summary — сводка по всем снимкам
/images — список снимков и их состояние
/check <снимок> — результат анализа снимка
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /images, чтобы увидеть доступные снимки
2️⃣ Отправьте /check и имя снимка, например /check cell_0001.jpg
3️⃣ Вы получите описание и снимок с подсвеченными дефектами

📋 Команды:
/summary — сводка
/images — список снимков
/check — проверка снимка
/cancel — отменить операцию`

	msgAwaitingImageID = "🖼 Отправьте имя снимка для проверки, например cell_0001.jpg"
	msgLastImage       = "\nПоследний проверенный: %s"
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgUseCommands     = "📋 Используйте /check, чтобы проверить снимок, или /help для справки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgNoImages        = "📭 Снимков нет."
	msgImageNotFound   = "🔍 Снимок %q не найден. Список снимков: /images"
	msgProcessingError = "⚠️ Не удалось получить результат анализа. Попробуйте позже."

	// Ограничения Bot API
	maxMessageLen = 4096
	maxCaptionLen = 1024
)

// Catalog данные для команд /summary, /images и снимков результатов
type Catalog interface {
	ListImages() []entity.ImageSummary
	GetSummary() entity.SummaryStatistics
	GetArtifact(ctx context.Context, imageID string, kind entity.ArtifactKind) (*entity.Artifact, error)
}

type Analyzer interface {
	Simulate(ctx context.Context, imageID string) (entity.AnalysisResult, error)
}

// Sessions хранит шаги диалога
type Sessions interface {
	Get(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error)
	BeginCheck(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error)
	CompleteCheck(ctx context.Context, userID, chatID int64, imageID string) (*entity.ChatSession, error)
	Cancel(ctx context.Context, userID, chatID int64) (*entity.ChatSession, error)
	Reset(ctx context.Context, userID, chatID int64) error
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api       *tgbotapi.BotAPI
	out       sender
	catalog   Catalog
	analyzer  Analyzer
	sessions  Sessions
	describer port.AnalysisDescriber
	log       *logger.Logger
}

type Deps struct {
	Catalog   Catalog
	Analyzer  Analyzer
	Sessions  Sessions
	Describer port.AnalysisDescriber
	Logger    *logger.Logger
}

// NewBot авторизуется в Bot API и создаёт бота
func NewBot(token string, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	b := newBot(api, deps)
	b.api = api
	b.log.Info("telegram bot authorized", "account", api.Self.UserName)
	return b, nil
}

func newBot(out sender, deps Deps) *Bot {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Bot{
		out:       out,
		catalog:   deps.Catalog,
		analyzer:  deps.Analyzer,
		sessions:  deps.Sessions,
		describer: deps.Describer,
		log:       log,
	}
}

// Run обрабатывает обновления до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	session, err := b.sessions.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Error("get session", "user_id", msg.From.ID, "error", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, session)
		return
	}

	if session.AwaitsImageID() {
		b.check(ctx, msg, strings.TrimSpace(msg.Text))
		return
	}

	b.sendMessage(msg.Chat.ID, msgUseCommands)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, session *entity.ChatSession) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if err := b.sessions.Reset(ctx, msg.From.ID, chatID); err != nil {
			b.log.Error("reset session", "user_id", msg.From.ID, "error", err)
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "summary":
		b.sendMessage(chatID, formatSummary(b.catalog.GetSummary()))

	case "images":
		for _, chunk := range formatImages(b.catalog.ListImages(), maxMessageLen) {
			b.sendMessage(chatID, chunk)
		}

	case "check":
		if imageID := strings.TrimSpace(msg.CommandArguments()); imageID != "" {
			b.check(ctx, msg, imageID)
			return
		}
		if _, err := b.sessions.BeginCheck(ctx, msg.From.ID, chatID); err != nil {
			b.log.Error("begin check", "user_id", msg.From.ID, "error", err)
		}
		prompt := msgAwaitingImageID
		if session.LastImageID != "" {
			prompt += fmt.Sprintf(msgLastImage, session.LastImageID)
		}
		b.sendMessage(chatID, prompt)

	case "cancel":
		b.cancel(ctx, msg)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// check отправляет записанный результат анализа снимка
func (b *Bot) check(ctx context.Context, msg *tgbotapi.Message, imageID string) {
	chatID := msg.Chat.ID

	result, err := b.analyzer.Simulate(ctx, imageID)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		b.cancel(ctx, msg)
		b.sendMessage(chatID, fmt.Sprintf(msgImageNotFound, imageID))
		return
	case err != nil:
		b.cancel(ctx, msg)
		b.log.Error("simulate analysis", "image_id", imageID, "error", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	if _, err := b.sessions.CompleteCheck(ctx, msg.From.ID, chatID, result.ImageID); err != nil {
		b.log.Error("complete check", "user_id", msg.From.ID, "error", err)
	}

	caption, err := b.describer.Describe(ctx, &result)
	if err != nil {
		b.log.Warn("describe analysis", "image_id", imageID, "error", err)
		caption = fmt.Sprintf("%s: %s", result.ImageID, result.Status)
	}

	artifact, err := b.catalog.GetArtifact(ctx, result.ImageID, entity.ArtifactResult)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			b.log.Error("load result image", "image_id", imageID, "error", err)
		}
		b.sendMessage(chatID, caption)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: artifact.ImageID, Bytes: artifact.Data})
	if len([]rune(caption)) <= maxCaptionLen {
		photo.Caption = caption
		b.send(photo)
		return
	}
	b.send(photo)
	b.sendMessage(chatID, caption)
}

func (b *Bot) cancel(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := b.sessions.Cancel(ctx, msg.From.ID, msg.Chat.ID); err != nil {
		b.log.Error("cancel session", "user_id", msg.From.ID, "error", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.out.Send(c); err != nil {
		b.log.Error("send telegram message", "error", err)
	}
}

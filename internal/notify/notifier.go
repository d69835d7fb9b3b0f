package notify

import (
	"fmt"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"futures_bot/internal/modules/config"
	"futures_bot/pkg/logger"
)

// Notifier — best-effort side-channel: ошибки отправки логируются
// и никогда не возвращаются вызывающему.
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// New выбирает Telegram при наличии токена, иначе Stdout.
func New(cfg *config.Config) (Notifier, error) {
	if cfg.Telegram.Token == "" {
		return NewStdout(), nil
	}
	return NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
}

// Telegram — пассивный нотифайер, только отправка.
type Telegram struct {
	bot    *tgbot.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: b, chatID: chatID}, nil
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return
	}
	if _, err := t.bot.Send(tgbot.NewMessage(t.chatID, msg)); err != nil {
		logger.Error("telegram send: %v", err)
	}
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }

// Stdout — заглушка без Telegram, пишет в лог.
type Stdout struct{}

func NewStdout() *Stdout                           { return &Stdout{} }
func (s *Stdout) Send(msg string)                  { logger.Info("NOTIFY: %s", msg) }
func (s *Stdout) Sendf(format string, args ...any) { s.Send(fmt.Sprintf(format, args...)) }

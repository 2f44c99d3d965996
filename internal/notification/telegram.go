package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramSender(token string, logger logger.Logger) (*TelegramSender, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, chat delivery disabled")
		return &TelegramSender{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, logger: logger}, nil
}

// Send posts text to the chat. Missing bot or chat id is not an error.
func (t *TelegramSender) Send(ctx context.Context, chatID *int64, text string) error {
	if t.bot == nil {
		t.logger.Debug("telegram message skipped (bot disabled)")
		return nil
	}

	if chatID == nil {
		t.logger.Debug("telegram message skipped (no chat_id)")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", *chatID, err)
	}
	return nil
}

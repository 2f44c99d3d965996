package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type mailSender interface {
	Enabled() bool
	Send(ctx context.Context, to string, msg Message) error
}

type chatSender interface {
	Send(ctx context.Context, chatID *int64, text string) error
}

// Dispatcher renders a delivery and sends it over email and Telegram,
// honouring the recipient's notification preferences.
type Dispatcher struct {
	templates *Templates
	mail      mailSender
	chat      chatSender
	logger    logger.Logger
}

func NewDispatcher(templates *Templates, mail mailSender, chat chatSender, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		templates: templates,
		mail:      mail,
		chat:      chat,
		logger:    logger,
	}
}

func (d *Dispatcher) Deliver(ctx context.Context, del domain.Delivery) error {
	if del.Recipient == nil {
		return errors.New("delivery without recipient")
	}

	data := make(map[string]any, len(del.Data)+1)
	for k, v := range del.Data {
		data[k] = v
	}
	if _, ok := data["Name"]; !ok {
		data["Name"] = del.Recipient.Name
	}

	msg, err := d.templates.Render(del.Template, data)
	if err != nil {
		return err
	}

	var errs []error
	if del.Recipient.WantsEmail() && d.mail.Enabled() {
		if err := d.mail.Send(ctx, del.Recipient.Email, msg); err != nil {
			errs = append(errs, err)
		}
	}
	if del.Recipient.Preferences.Notifications.Push && del.Recipient.TelegramChatID != nil {
		if err := d.chat.Send(ctx, del.Recipient.TelegramChatID, msg.Subject+"\n\n"+msg.Text); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("deliver %s to %s: %w", del.Template, del.Recipient.ID, err)
	}

	d.logger.Debug("delivery sent",
		logger.String("template", del.Template),
		logger.String("user_id", del.Recipient.ID),
	)
	return nil
}

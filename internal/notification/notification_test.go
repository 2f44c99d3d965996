package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type sentMail struct {
	to  string
	msg Message
}

type fakeMail struct {
	enabled bool
	err     error
	sent    []sentMail
}

func (f *fakeMail) Enabled() bool { return f.enabled }

func (f *fakeMail) Send(_ context.Context, to string, msg Message) error {
	f.sent = append(f.sent, sentMail{to: to, msg: msg})
	return f.err
}

type fakeChat struct {
	err   error
	texts []string
}

func (f *fakeChat) Send(_ context.Context, _ *int64, text string) error {
	f.texts = append(f.texts, text)
	return f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestDispatcher(t *testing.T, mail *fakeMail, chat *fakeChat) *Dispatcher {
	t.Helper()
	tpl, err := NewTemplates()
	require.NoError(t, err)
	return NewDispatcher(tpl, mail, chat, newTestLogger(t))
}

func recipient(email, push bool, chatID *int64) *domain.User {
	return &domain.User{
		ID:             "org-1",
		Name:           "Oscar",
		Email:          "oscar@example.com",
		TelegramChatID: chatID,
		Preferences: domain.Preferences{
			Notifications: domain.NotificationPreferences{Email: email, Push: push},
		},
	}
}

func TestTemplates_Render(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	msg, err := tpl.Render(domain.TemplateEventRejected, map[string]any{
		"Name":       "Oscar",
		"EventTitle": "Kizomba <Night>",
		"Reason":     "Missing address",
		"EventURL":   "https://ritmocaribe.test/events/e1",
	})
	require.NoError(t, err)

	assert.Equal(t, `Your event "Kizomba <Night>" was not approved`, msg.Subject)
	assert.Contains(t, msg.Text, "Reason: Missing address")
	assert.Contains(t, msg.HTML, "Kizomba &lt;Night&gt;")
	assert.Contains(t, msg.HTML, "RitmoCaribe")

	_, err = tpl.Render("unknown", nil)
	assert.Error(t, err)
}

func TestDispatcher_Deliver_EmailAndChat(t *testing.T) {
	mail := &fakeMail{enabled: true}
	chat := &fakeChat{}
	d := newTestDispatcher(t, mail, chat)

	chatID := int64(42)
	err := d.Deliver(context.Background(), domain.Delivery{
		Template:  domain.TemplateEventApproved,
		Recipient: recipient(true, true, &chatID),
		Data:      map[string]any{"EventTitle": "Salsa Night", "EventURL": "https://x/e1"},
	})

	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "oscar@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].msg.Text, "Hi Oscar")
	require.Len(t, chat.texts, 1)
	assert.Contains(t, chat.texts[0], `Your event "Salsa Night" is live`)
}

func TestDispatcher_Deliver_HonoursPreferences(t *testing.T) {
	mail := &fakeMail{enabled: true}
	chat := &fakeChat{}
	d := newTestDispatcher(t, mail, chat)

	chatID := int64(42)
	err := d.Deliver(context.Background(), domain.Delivery{
		Template:  domain.TemplateBroadcast,
		Recipient: recipient(false, false, &chatID),
		Data:      map[string]any{"Title": "Hello", "Message": "News"},
	})

	require.NoError(t, err)
	assert.Empty(t, mail.sent)
	assert.Empty(t, chat.texts)
}

func TestDispatcher_Deliver_MailDisabled(t *testing.T) {
	mail := &fakeMail{enabled: false}
	d := newTestDispatcher(t, mail, &fakeChat{})

	err := d.Deliver(context.Background(), domain.Delivery{
		Template:  domain.TemplateBroadcast,
		Recipient: recipient(true, false, nil),
		Data:      map[string]any{"Title": "Hello", "Message": "News"},
	})

	require.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestDispatcher_Deliver_JoinsChannelErrors(t *testing.T) {
	smtpErr := errors.New("smtp refused")
	tgErr := errors.New("chat not found")
	d := newTestDispatcher(t, &fakeMail{enabled: true, err: smtpErr}, &fakeChat{err: tgErr})

	chatID := int64(7)
	err := d.Deliver(context.Background(), domain.Delivery{
		Template:  domain.TemplateBroadcast,
		Recipient: recipient(true, true, &chatID),
		Data:      map[string]any{"Title": "Hello", "Message": "News"},
	})

	assert.ErrorIs(t, err, smtpErr)
	assert.ErrorIs(t, err, tgErr)
}

func TestDispatcher_Deliver_Rejects(t *testing.T) {
	d := newTestDispatcher(t, &fakeMail{enabled: true}, &fakeChat{})

	assert.Error(t, d.Deliver(context.Background(), domain.Delivery{Template: domain.TemplateBroadcast}))
	assert.Error(t, d.Deliver(context.Background(), domain.Delivery{Template: "nope", Recipient: recipient(true, false, nil)}))
}

func TestMailer_DisabledWithoutHost(t *testing.T) {
	m := NewMailer("", 587, "", "", "noreply@ritmocaribe.test")
	assert.False(t, m.Enabled())

	m = NewMailer("smtp.example.com", 587, "user", "pass", "noreply@ritmocaribe.test")
	assert.True(t, m.Enabled())
}

func TestTelegramSender_Disabled(t *testing.T) {
	s, err := NewTelegramSender("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(1)
	assert.NoError(t, s.Send(context.Background(), &chatID, "hi"))
}

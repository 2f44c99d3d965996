package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

type messageTemplate struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

// Message is a rendered transactional message.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

const layout = `<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<h2 style="color:#d35400">RitmoCaribe</h2>
{{template "content" .}}
<p style="font-size:12px;color:#888">You receive this email because email notifications are enabled in your profile.</p>
</body></html>`

var sources = map[string]struct{ subject, text, html string }{
	domain.TemplateEventApproved: {
		subject: `Your event "{{.EventTitle}}" is live`,
		text:    "Hi {{.Name}},\nyour event \"{{.EventTitle}}\" has been approved and is now visible to everyone.\n{{.EventURL}}",
		html: `{{define "content"}}<p>Hi {{.Name}},</p>
<p>your event <strong>{{.EventTitle}}</strong> has been approved and is now visible to everyone.</p>
<p><a href="{{.EventURL}}">Open the event</a></p>{{end}}`,
	},
	domain.TemplateEventRejected: {
		subject: `Your event "{{.EventTitle}}" was not approved`,
		text:    "Hi {{.Name}},\nyour event \"{{.EventTitle}}\" has been rejected.{{if .Reason}}\nReason: {{.Reason}}{{end}}\n{{.EventURL}}",
		html: `{{define "content"}}<p>Hi {{.Name}},</p>
<p>your event <strong>{{.EventTitle}}</strong> has been rejected.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p><a href="{{.EventURL}}">Review the event</a></p>{{end}}`,
	},
	domain.TemplateBroadcast: {
		subject: `{{.Title}}`,
		text:    "Hi {{.Name}},\n{{.Message}}{{if .ActionURL}}\n{{.ActionURL}}{{end}}",
		html: `{{define "content"}}<p>Hi {{.Name}},</p>
<p>{{.Message}}</p>
{{if .ActionURL}}<p><a href="{{.ActionURL}}">Read more</a></p>{{end}}{{end}}`,
	},
}

// Templates renders the transactional messages by name.
type Templates struct {
	byName map[string]messageTemplate
}

func NewTemplates() (*Templates, error) {
	t := &Templates{byName: make(map[string]messageTemplate, len(sources))}
	for name, src := range sources {
		subject, err := texttemplate.New(name + ".subject").Option("missingkey=zero").Parse(src.subject)
		if err != nil {
			return nil, fmt.Errorf("parse %s subject: %w", name, err)
		}
		text, err := texttemplate.New(name + ".text").Option("missingkey=zero").Parse(src.text)
		if err != nil {
			return nil, fmt.Errorf("parse %s text: %w", name, err)
		}
		html, err := htmltemplate.New(name + ".html").Option("missingkey=zero").Parse(layout)
		if err == nil {
			_, err = html.Parse(src.html)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s html: %w", name, err)
		}
		t.byName[name] = messageTemplate{subject: subject, text: text, html: html}
	}
	return t, nil
}

func (t *Templates) Render(name string, data map[string]any) (Message, error) {
	tpl, ok := t.byName[name]
	if !ok {
		return Message{}, fmt.Errorf("unknown template %q", name)
	}

	var subject, text, html bytes.Buffer
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return Message{}, fmt.Errorf("render %s subject: %w", name, err)
	}
	if err := tpl.text.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("render %s text: %w", name, err)
	}
	if err := tpl.html.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render %s html: %w", name, err)
	}

	return Message{Subject: subject.String(), Text: text.String(), HTML: html.String()}, nil
}

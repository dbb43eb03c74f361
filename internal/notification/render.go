package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

const dateLayout = "January 2, 2006 at 3:04 PM MST"

type Renderer struct {
	tmpl       *template.Template
	statusURL  string
	feeLine    string
	reminderIn string
}

type view struct {
	Payload
	EventDate  string
	FeeLine    string
	StatusURL  string
	ReminderIn string
}

func NewRenderer(appURL, feeLine string, reminderDelay time.Duration) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tmpl:       tmpl,
		statusURL:  strings.TrimRight(appURL, "/") + "/status",
		feeLine:    feeLine,
		reminderIn: humanDuration(reminderDelay),
	}, nil
}

func (r *Renderer) Confirmation(p Payload) (Message, error) {
	return r.render("confirmation.html", "Registration Confirmed - "+p.EventTitle, p)
}

func (r *Renderer) Reminder(p Payload) (Message, error) {
	return r.render("reminder.html", "Reminder: "+p.EventTitle+" is coming up", p)
}

func (r *Renderer) render(name, subject string, p Payload) (Message, error) {
	v := view{
		Payload:    p,
		EventDate:  p.EventDate.UTC().Format(dateLayout),
		FeeLine:    r.feeLine,
		StatusURL:  r.statusURL,
		ReminderIn: r.reminderIn,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", name, err)
	}
	return Message{To: p.Email, Subject: subject, HTML: buf.String()}, nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d == time.Hour:
		return "1 hour"
	case d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	case d == time.Minute:
		return "1 minute"
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return d.String()
}

package domain

import "time"

type ChatMessage struct {
	SenderName string
	Text       string
	Timestamp  time.Time
}

type Notification struct {
	Title string
	Body  string
}

const (
	DefaultNotificationTitle = "New Notification"
	DefaultNotificationBody  = "You have a new message."
)

func (n Notification) WithDefaults() Notification {
	if n.Title == "" {
		n.Title = DefaultNotificationTitle
	}
	if n.Body == "" {
		n.Body = DefaultNotificationBody
	}
	return n
}

func (n Notification) Toast() string {
	n = n.WithDefaults()
	return n.Title + ": " + n.Body
}

package message

import (
	"encoding/json"
	"time"
)

// Display formats for the derived time/date labels. Fixed, locale-independent.
const (
	TimeLabelFormat = "3:04 PM"
	DateLabelFormat = "Jan 2, 2006"
)

// Message is one entry in a conversation's ordered history. ID is assigned
// by the store, strictly increasing and never reused; clients use it as the
// polling cursor.
type Message struct {
	ID             int64           `json:"id"`
	ConversationID string          `json:"conversationId"`
	SenderID       string          `json:"senderId"`
	SenderName     string          `json:"senderName"`
	Content        string          `json:"content"`
	Reactions      json.RawMessage `json:"reactions"`
	ReplyTo        *int64          `json:"replyTo"`
	IsEdited       bool            `json:"isEdited"`
	Timestamp      time.Time       `json:"timestamp"`
	TimeLabel      string          `json:"time"`
	DateLabel      string          `json:"date"`
}

// FillLabels renders the display time/date fields from the timestamp.
func (m *Message) FillLabels() {
	m.TimeLabel = m.Timestamp.Format(TimeLabelFormat)
	m.DateLabel = m.Timestamp.Format(DateLabelFormat)
}

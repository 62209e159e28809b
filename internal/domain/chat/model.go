package chat

import (
	"encoding/json"
	"time"
)

// Counterpart is the other participant's public profile, resolved by a join
// against user records when a direct conversation is read.
type Counterpart struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}

// DirectConversation is a two-party conversation whose id is derived from
// the participant pair. Immutable after creation apart from the computed
// counterpart view.
type DirectConversation struct {
	ID           string      `json:"id"`
	ParticipantA string      `json:"participantA"`
	ParticipantB string      `json:"participantB"`
	Counterpart  Counterpart `json:"counterpart"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// GroupConversation is an N-party conversation. Members is an unordered JSON
// collection of member descriptors; membership is tested by value (an object
// with a matching id), and the collection mutates only as a whole.
type GroupConversation struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	CreatorID   string          `json:"creatorId"`
	Members     json.RawMessage `json:"members"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ConversationList is the combined listing view for one user.
type ConversationList struct {
	Directs []DirectConversation `json:"directs"`
	Groups  []GroupConversation  `json:"groups"`
}

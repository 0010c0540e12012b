// Package leads captures completed dialogue outcomes and hands them to the
// studio's administrators: an append-only JSONL log, an optional Postgres
// repository and an optional webhook notification.
package leads

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is one captured request, assembled from the session slots at the
// moment a dialogue reaches its ready stage.
type Lead struct {
	ID             string    `json:"id"`
	Tenant         string    `json:"tenant"`
	ConversationID string    `json:"conversation_id"`
	Scenario       string    `json:"scenario,omitempty"`
	Intent         string    `json:"intent"`
	Phone          string    `json:"phone,omitempty"`
	Age            int       `json:"age,omitempty"`
	ForWhom        string    `json:"for_whom,omitempty"`
	Interest       string    `json:"interest,omitempty"`
	TimePref       string    `json:"time,omitempty"`
	RentDate       string    `json:"rent_date,omitempty"`
	RentTime       string    `json:"rent_time,omitempty"`
	Format         string    `json:"format,omitempty"`
	People         int       `json:"people,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// New assigns identity and timestamp to a lead draft.
func New(draft Lead) Lead {
	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()
	return draft
}

// Summary renders a one-line human summary for notifications.
func (l Lead) Summary() string {
	parts := []string{l.Intent}
	if l.Interest != "" {
		parts = append(parts, l.Interest)
	}
	if l.Age > 0 {
		parts = append(parts, "возраст "+strconv.Itoa(l.Age))
	}
	if l.TimePref != "" {
		parts = append(parts, l.TimePref)
	}
	if l.RentDate != "" {
		parts = append(parts, l.RentDate+" "+l.RentTime)
	}
	if l.Phone != "" {
		parts = append(parts, l.Phone)
	}
	return strings.Join(parts, ", ")
}

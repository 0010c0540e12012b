package dialog

import (
	"context"
	"sync"
)

// Slots are the facts collected from the user across a conversation.
type Slots struct {
	ForWhom       string `json:"for_whom,omitempty"` // "child" or "adult"
	Age           int    `json:"age,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Interest      string `json:"interest,omitempty"`
	TimePref      string `json:"time,omitempty"`
	Format        string `json:"format,omitempty"`
	RentDate      string `json:"rent_date,omitempty"`
	RentTime      string `json:"rent_time,omitempty"`
	RentBucket    string `json:"rent_bucket,omitempty"` // legacy flow: "daytime"/"evening"
	People        int    `json:"people,omitempty"`
	PhoneAttempts int    `json:"phone_attempts,omitempty"`
	TooEarlySeen  bool   `json:"too_early_seen,omitempty"`
}

// SetPhone applies the phone-slot invariant: once set to a valid normalized
// value it is never overwritten by a later extraction.
func (s *Slots) SetPhone(phone string) {
	if s.Phone == "" && phone != "" {
		s.Phone = phone
	}
}

// Session is the unit of continuity across messages of one conversation.
type Session struct {
	Tenant       string `json:"tenant"`
	Scenario     string `json:"scenario,omitempty"`
	ActiveIntent Intent `json:"active_intent,omitempty"`
	Stage        Stage  `json:"stage"`
	Slots        Slots  `json:"slots"`
}

// NewSession creates an empty session for a tenant.
func NewSession(tenant string) *Session {
	return &Session{Tenant: tenant, Stage: StageIdle}
}

// Reset clears scenario, intent lock, slots and stage back to initial.
func (s *Session) Reset() {
	s.Scenario = ""
	s.ActiveIntent = IntentNone
	s.Stage = StageIdle
	s.Slots = Slots{}
}

// ResetTopic clears intent lock, slots and stage but keeps the declared
// scenario. Used by the "назад" command and scenario switches.
func (s *Session) ResetTopic() {
	s.ActiveIntent = IntentNone
	s.Stage = StageIdle
	s.Slots = Slots{}
}

// SessionStore maps conversation identifiers to session state. Get returns
// (nil, nil) when no session exists yet.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*Session, error)
	Save(ctx context.Context, conversationID string, session *Session) error
	Delete(ctx context.Context, conversationID string) error
}

// MemoryStore is the default in-process session store. State survives only
// for the process lifetime.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get returns the stored session or (nil, nil).
func (m *MemoryStore) Get(_ context.Context, conversationID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[conversationID]
	if !ok {
		return nil, nil
	}
	copied := *sess
	return &copied, nil
}

// Save stores a copy of the session.
func (m *MemoryStore) Save(_ context.Context, conversationID string, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[conversationID] = &copied
	return nil
}

// Delete removes a session.
func (m *MemoryStore) Delete(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, conversationID)
	return nil
}

// Package session persists the current identity between restarts of a
// local/dev deployment. Two keys are recognized: one holding the
// Identity, one holding the Session, both as JSON. Presence of both
// means authenticated; a value that fails to parse clears both keys so
// a corrupt session can never wedge the shell.
package session

import (
	"encoding/json"
	"time"

	"github.com/unicampus/portal/models"
)

const (
	identityKey = "identity"
	sessionKey  = "session"
)

type Session struct {
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Manager struct {
	kv KV
}

func NewManager(kv KV) *Manager {
	return &Manager{kv: kv}
}

// Save persists the identity/session pair.
func (m *Manager) Save(id models.Identity, sess Session) error {
	ib, err := json.Marshal(id)
	if err != nil {
		return err
	}
	sb, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := m.kv.Set(identityKey, ib); err != nil {
		return err
	}
	return m.kv.Set(sessionKey, sb)
}

// Current resolves the persisted identity. Returns nils when there is
// no session. Corrupt JSON under either key clears both keys and
// reports no session; it never propagates the parse error.
func (m *Manager) Current() (*models.Identity, *Session) {
	ib, iok := m.kv.Get(identityKey)
	sb, sok := m.kv.Get(sessionKey)
	if !iok || !sok {
		return nil, nil
	}

	var id models.Identity
	var sess Session
	if json.Unmarshal(ib, &id) != nil || json.Unmarshal(sb, &sess) != nil {
		m.Clear()
		return nil, nil
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		m.Clear()
		return nil, nil
	}
	return &id, &sess
}

// Clear removes both keys; clearing an absent session is a no-op.
func (m *Manager) Clear() {
	_ = m.kv.Delete(identityKey)
	_ = m.kv.Delete(sessionKey)
}

package service

import (
	"sync"
	"time"

	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
)

// sessionEntry は1セッション分の状態と、そのセッション専用のロック
type sessionEntry struct {
	mu      sync.Mutex
	session *model.PracticeSession
	removed bool // mu を持った状態でのみ読み書きする
}

// SessionStore は進行中の練習セッションをメモリ上に保持します (永続化しない)。
// ロック順は entry.mu → SessionStore.mu のみ。
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*sessionEntry)}
}

func (s *SessionStore) put(session *model.PracticeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &sessionEntry{session: session}
}

func (s *SessionStore) get(id uuid.UUID) (*sessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	return e, ok
}

// remove は entry.mu を持った状態で呼ぶ
func (s *SessionStore) remove(id uuid.UUID, e *sessionEntry) {
	e.removed = true
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.sessions[id]; ok && cur == e {
		delete(s.sessions, id)
	}
}

func (s *SessionStore) snapshot() map[uuid.UUID]*sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]*sessionEntry, len(s.sessions))
	for id, e := range s.sessions {
		out[id] = e
	}
	return out
}

// Len は保持しているセッション数
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// expireIdle は cutoff より前から操作のないセッションを破棄し、そのIDを返します
func (s *SessionStore) expireIdle(cutoff time.Time) []uuid.UUID {
	var expired []uuid.UUID
	for id, e := range s.snapshot() {
		e.mu.Lock()
		if !e.removed && e.session.LastActivityAt.Before(cutoff) {
			s.remove(id, e)
			expired = append(expired, id)
		}
		e.mu.Unlock()
	}
	return expired
}

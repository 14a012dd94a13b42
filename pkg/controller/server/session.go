package server

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

// session is one live event stream. Messages posted to /messages are
// delivered through its channel to the goroutine holding the stream
// open.
type session struct {
	id   types.SessionID
	send chan []byte
}

type sessionStore struct {
	mutex    sync.Mutex
	sessions map[types.SessionID]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: map[types.SessionID]*session{},
	}
}

func (x *sessionStore) open() *session {
	s := &session{
		id:   types.NewSessionID(),
		send: make(chan []byte, 8),
	}

	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.sessions[s.id] = s
	return s
}

func (x *sessionStore) close(id types.SessionID) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	delete(x.sessions, id)
}

func (x *sessionStore) lookup(id types.SessionID) (*session, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	s, ok := x.sessions[id]
	if !ok {
		return nil, goerr.Wrap(types.ErrSessionNotFound, "no transport found for sessionId",
			goerr.V("session_id", id),
		)
	}
	return s, nil
}

package pos

import (
	"errors"
	"strconv"
	"sync"

	"jewelpos/controllers/idgen"
	"jewelpos/masterdata"
)

var ErrSessionNotFound = errors.New("pos session not found")

// SessionStore hands out and tracks POS sessions. Each session gets a
// sequential document number; each operator works one session at a time.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	dir       *masterdata.Directory
	builder   *Builder
	nextDocNo int64
}

func NewSessionStore(dir *masterdata.Directory, builder *Builder, docNoSeed int64) *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]*Session),
		dir:       dir,
		builder:   builder,
		nextDocNo: docNoSeed,
	}
}

func (st *SessionStore) Open() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	docNo := strconv.FormatInt(st.nextDocNo, 10)
	st.nextDocNo++

	s := NewSession(idgen.NewID("pos"), docNo, st.dir, st.builder)
	st.sessions[s.ID] = s
	return s
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *SessionStore) Close(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

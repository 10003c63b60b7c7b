package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/historial/historial-client/internal/types"
)

// FileStore persists the session as a single JSON document on disk. The
// original web client kept two separate storage keys (token and identity);
// collapsing them into one file makes the write-both-or-neither requirement a
// plain atomic rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The parent
// directory is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// persisted is the on-disk shape: the two durable keys as one document.
type persisted struct {
	Token string    `json:"token"`
	User  *identity `json:"user"`
}

type identity struct {
	NumFicha   string     `json:"numFicha"`
	GivenName  string     `json:"nombre"`
	FamilyName string     `json:"apellido"`
	Role       types.Role `json:"tipo"`
}

// Restore implements Store. Any unreadable, undecodable or partial state
// (token without identity, identity without token) yields nil.
func (f *FileStore) Restore() *Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", f.path).Msg("session file unreadable, treating as no session")
		}
		return nil
	}
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("session file corrupt, treating as no session")
		return nil
	}
	if p.Token == "" || p.User == nil || p.User.NumFicha == "" {
		return nil
	}
	return &Session{
		NumFicha:   p.User.NumFicha,
		GivenName:  p.User.GivenName,
		FamilyName: p.User.FamilyName,
		Role:       p.User.Role,
		Token:      p.Token,
	}
}

// Save implements Store. The document is written to a temp file in the same
// directory and renamed into place, so a crash mid-write can never leave a
// token without its identity record.
func (f *FileStore) Save(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(persisted{
		Token: s.Token,
		User: &identity{
			NumFicha:   s.NumFicha,
			GivenName:  s.GivenName,
			FamilyName: s.FamilyName,
			Role:       s.Role,
		},
	})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}

// Clear implements Store.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

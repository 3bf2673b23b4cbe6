package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/validation"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

// User-facing messages shown on the auth screens.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgAccountExists      = "An account with this email already exists"
	MsgRateLimited        = "Too many attempts. Please try again later"
	MsgUnavailable        = "Service unavailable. Please try again"
	MsgLoginFailed        = "Login failed. Please try again."
	MsgSignupFailed       = "Sign up failed. Please try again."
	MsgPersistFailed      = "Failed to save session"
)

// ErrPersistSession is returned when authentication succeeded but the
// session could not be written. The user is not logged in.
var ErrPersistSession = errors.New("failed to save session")

// recordVersion is the schema version written into the persisted record.
const recordVersion = 1

// SessionStorage is the key-value store the session record lives in.
// Get returns (nil, nil) when the key is absent.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type sessionRecord struct {
	Version *int   `json:"v,omitempty"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// SessionStore owns the authentication state of the application.
//
// Every mutation is applied atomically and then published to subscribers,
// outside the state lock and in mutation order. Storage and backend calls
// never run under the lock. Subscribers may read State but must not call
// mutating methods from inside the callback.
type SessionStore struct {
	auth    client.Authenticator
	storage SessionStorage
	log     logging.Logger

	mu       sync.Mutex
	session  models.Session
	inflight int
	subs     map[int]func(models.Session)
	nextSub  int
	issued   uint64

	// deliveries run one at a time in ticket order
	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	delivered  uint64
}

// NewSessionStore returns a store in its initial state: no user,
// Restoring set until Restore completes.
func NewSessionStore(auth client.Authenticator, storage SessionStorage, log logging.Logger) *SessionStore {
	if log == nil {
		log = logging.Discard()
	}
	s := &SessionStore{
		auth:    auth,
		storage: storage,
		log:     log,
		session: models.Session{Restoring: true},
		subs:    make(map[int]func(models.Session)),
	}
	s.notifyCond = sync.NewCond(&s.notifyMu)
	return s
}

// State returns a snapshot of the current session.
func (s *SessionStore) State() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.session)
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned function removes the subscription.
func (s *SessionStore) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Restore loads the persisted session. A missing record leaves the user
// logged out; a malformed one is deleted; a storage failure is logged and
// the record is left alone. It never sets LastError.
func (s *SessionStore) Restore(ctx context.Context) {
	s.update(func(ss *models.Session) { ss.Restoring = true })

	user := s.load(ctx)

	s.update(func(ss *models.Session) {
		ss.Restoring = false
		ss.User = user
	})

	if user != nil {
		s.log.Debug(ctx, "session restored", "user_id", user.ID)
	}
}

func (s *SessionStore) load(ctx context.Context) *models.User {
	data, err := s.storage.Get(ctx, common.SessionStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read session", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	user, err := decodeRecord(data)
	if err != nil {
		s.log.Warn(ctx, "discarding malformed session", "error", err)
		if err := s.storage.Delete(ctx, common.SessionStorageKey); err != nil {
			s.log.Warn(ctx, "failed to delete malformed session", "error", err)
		}
		return nil
	}
	return user
}

// Login validates the credentials, authenticates them and persists the
// resulting user. Invalid input fails with a *validation.Error before any
// backend or storage call.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	if err := s.validate(validation.FirstLoginError(email, password)); err != nil {
		return err
	}

	email = validation.NormalizeEmail(email)
	s.begin()

	user, err := s.auth.Login(ctx, email, password)
	if err == nil && user == nil {
		err = errNoUser
	}
	if err != nil {
		s.log.Debug(ctx, "login rejected", "error", err)
		s.finish(nil, authMessage(err, MsgLoginFailed))
		return fmt.Errorf("login: %w", err)
	}

	return s.establish(ctx, user)
}

// Signup is Login for a new account; the user's name is the trimmed name.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) error {
	if err := s.validate(validation.FirstSignupError(name, email, password)); err != nil {
		return err
	}

	name = validation.NormalizeName(name)
	email = validation.NormalizeEmail(email)
	s.begin()

	user, err := s.auth.Signup(ctx, name, email, password)
	if err == nil && user == nil {
		err = errNoUser
	}
	if err != nil {
		s.log.Debug(ctx, "signup rejected", "error", err)
		s.finish(nil, authMessage(err, MsgSignupFailed))
		return fmt.Errorf("signup: %w", err)
	}

	return s.establish(ctx, user)
}

// Logout deletes the persisted record and clears the user. A storage
// failure is logged and does not keep the user logged in.
func (s *SessionStore) Logout(ctx context.Context) {
	s.begin()

	if err := s.storage.Delete(ctx, common.SessionStorageKey); err != nil {
		s.log.Warn(ctx, "failed to delete session", "error", err)
	}

	s.update(func(ss *models.Session) {
		s.inflight--
		ss.Pending = s.inflight > 0
		ss.User = nil
		ss.LastError = ""
	})
	s.log.Debug(ctx, "logged out")
}

// ClearError dismisses LastError.
func (s *SessionStore) ClearError() {
	s.update(func(ss *models.Session) { ss.LastError = "" })
}

func (s *SessionStore) validate(err error) error {
	if err == nil {
		return nil
	}
	var verr *validation.Error
	msg := err.Error()
	if errors.As(err, &verr) {
		msg = verr.Message
	}
	s.update(func(ss *models.Session) { ss.LastError = msg })
	return err
}

func (s *SessionStore) establish(ctx context.Context, user *models.User) error {
	data, err := encodeRecord(user)
	if err == nil {
		err = s.storage.Set(ctx, common.SessionStorageKey, data)
	}
	if err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
		s.finish(nil, MsgPersistFailed)
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.finish(user, "")
	s.log.Debug(ctx, "session established", "user_id", user.ID)
	return nil
}

func (s *SessionStore) begin() {
	s.update(func(ss *models.Session) {
		s.inflight++
		ss.Pending = true
		ss.LastError = ""
	})
}

// finish ends an in-flight operation. A nil user leaves User unchanged.
func (s *SessionStore) finish(user *models.User, lastError string) {
	s.update(func(ss *models.Session) {
		s.inflight--
		ss.Pending = s.inflight > 0
		if user != nil {
			ss.User = user
		}
		ss.LastError = lastError
	})
}

func (s *SessionStore) update(fn func(*models.Session)) {
	s.mu.Lock()
	fn(&s.session)
	snap := snapshot(s.session)
	subs := make([]func(models.Session), 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if f, ok := s.subs[i]; ok {
			subs = append(subs, f)
		}
	}
	s.issued++
	ticket := s.issued
	s.mu.Unlock()

	s.notifyMu.Lock()
	for s.delivered+1 != ticket {
		s.notifyCond.Wait()
	}
	s.notifyMu.Unlock()

	defer func() {
		s.notifyMu.Lock()
		s.delivered = ticket
		s.notifyCond.Broadcast()
		s.notifyMu.Unlock()
	}()

	for _, f := range subs {
		f(snap)
	}
}

func snapshot(ss models.Session) models.Session {
	if ss.User != nil {
		u := *ss.User
		ss.User = &u
	}
	return ss
}

func authMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, client.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, client.ErrAccountExists):
		return MsgAccountExists
	case errors.Is(err, client.ErrRateLimited):
		return MsgRateLimited
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnavailable
	default:
		return fallback
	}
}

func encodeRecord(u *models.User) ([]byte, error) {
	v := recordVersion
	return json.Marshal(sessionRecord{Version: &v, ID: u.ID, Name: u.Name, Email: u.Email})
}

// errNoUser reports a backend that returned neither a user nor an error.
var errNoUser = fmt.Errorf("%w: backend returned no user", client.ErrUnavailable)

var errMalformedRecord = errors.New("malformed session record")

func decodeRecord(data []byte) (*models.User, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedRecord, err)
	}
	if rec.Version != nil && *rec.Version != recordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errMalformedRecord, *rec.Version)
	}
	rec.Email = validation.NormalizeEmail(rec.Email)
	if rec.ID == "" || rec.Name == "" || rec.Email == "" {
		return nil, fmt.Errorf("%w: missing fields", errMalformedRecord)
	}
	return &models.User{ID: rec.ID, Name: rec.Name, Email: rec.Email}, nil
}

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
)

// DefaultMockDelay imitates network latency.
const DefaultMockDelay = 400 * time.Millisecond

// MockAuthenticator accepts any credentials after a fixed delay and
// fabricates a user. It never checks the password.
type MockAuthenticator struct {
	delay time.Duration
	now   func() time.Time
}

func NewMockAuthenticator(delay time.Duration) *MockAuthenticator {
	return &MockAuthenticator{delay: delay, now: time.Now}
}

// Login returns a user named after the local part of email.
func (m *MockAuthenticator) Login(ctx context.Context, email, _ string) (*models.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	name, _, _ := strings.Cut(email, "@")
	return m.user(name, email), nil
}

// Signup returns a user with the given name.
func (m *MockAuthenticator) Signup(ctx context.Context, name, email, _ string) (*models.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.user(name, email), nil
}

func (m *MockAuthenticator) user(name, email string) *models.User {
	return &models.User{
		ID:    fmt.Sprintf("user-%d", m.now().UnixMilli()),
		Name:  name,
		Email: email,
	}
}

func (m *MockAuthenticator) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

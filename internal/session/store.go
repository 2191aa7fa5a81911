// Package session defines the keyed chat-session store the state machine is
// wired against, plus the default in-memory implementation.
package session

import (
	"context"
	"errors"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrStoreFull = errors.New("session store is full")
)

// Store is a keyed session store. The chat service assumes at most one
// in-flight turn per session id; implementations only need to make the three
// operations individually safe for concurrent use.
type Store interface {
	Create(ctx context.Context) (*models.ChatSession, error)
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Put(ctx context.Context, session *models.ChatSession) error
}

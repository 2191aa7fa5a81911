package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/session"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ChatSessionRepository is the Postgres-backed session.Store: each session is
// persisted as one JSONB document keyed by its uuid, so conversations survive
// process restarts.
type ChatSessionRepository struct {
	db DBTX
}

func NewChatSessionRepository(db DBTX) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

func (r *ChatSessionRepository) Create(ctx context.Context) (*models.ChatSession, error) {
	created := &models.ChatSession{
		ID:    uuid.NewString(),
		State: models.StateAskName,
	}

	doc, err := json.Marshal(created)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO chat_sessions (id, state, data)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(ctx, query, created.ID, string(created.State), doc); err != nil {
		return nil, err
	}

	return created, nil
}

func (r *ChatSessionRepository) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	// The id column is UUID; a malformed id would otherwise surface as a
	// Postgres syntax error instead of a plain miss.
	if _, err := uuid.Parse(id); err != nil {
		return nil, session.ErrNotFound
	}

	query := `
		SELECT data
		FROM chat_sessions
		WHERE id = $1
	`

	var doc []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}

	var loaded models.ChatSession
	if err := json.Unmarshal(doc, &loaded); err != nil {
		return nil, err
	}
	return &loaded, nil
}

func (r *ChatSessionRepository) Put(ctx context.Context, s *models.ChatSession) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	query := `
		UPDATE chat_sessions
		SET state = $2, data = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, s.ID, string(s.State), doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

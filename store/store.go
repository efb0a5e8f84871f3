package store

import (
	"context"
	"errors"

	"unison/models"
)

// The store performs persistence and credential handling only; business
// rules live in the packages that consume it.

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("session token invalid")
)

type Accounts interface {
	// CreateAccount hashes the password and inserts the account. Fails
	// with ErrDuplicate when the email or name is already taken.
	CreateAccount(ctx context.Context, email, name, password string) (*models.User, error)
	// Authenticate verifies the password for the account registered
	// under email. Fails with ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	AccountByID(ctx context.Context, id string) (*models.User, error)
}

type Relations interface {
	// RelationsInvolving returns every relation where accountID is
	// either participant, with both profiles expanded.
	RelationsInvolving(ctx context.Context, accountID string) ([]*models.FriendRelation, error)
	// RelationBetween looks the pair up in either direction.
	RelationBetween(ctx context.Context, a, b string) (*models.FriendRelation, error)
	// CreateRelation inserts a pending relation. Fails with ErrNotFound
	// when the target account does not exist.
	CreateRelation(ctx context.Context, requesterID, targetID string) (*models.FriendRelation, error)
	Relation(ctx context.Context, id string) (*models.FriendRelation, error)
	SetRelationOutcome(ctx context.Context, id string, accepted bool, reason string) (*models.FriendRelation, error)
}

type Todos interface {
	CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	TodosByUser(ctx context.Context, userID string) ([]*models.Todo, error)
	TodoByID(ctx context.Context, userID, id string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
}

type Focus interface {
	// CreateFocusSession inserts the session and its todo links in one
	// transaction.
	CreateFocusSession(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error)
	FocusSessionsByUser(ctx context.Context, userID string) ([]*models.FocusSession, error)
}

type Usage interface {
	CreateAppUsage(ctx context.Context, usage *models.AppUsage) (*models.AppUsage, error)
	AppUsageByUser(ctx context.Context, userID string) ([]*models.AppUsage, error)
}

// Store is the full gateway surface the HTTP layer is wired against.
type Store interface {
	Accounts
	Relations
	Todos
	Focus
	Usage
}

package store

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"unison/models"
	"unison/utils"
)

// MySQL is the concrete gateway adapter backed by the shared database.
type MySQL struct {
	db *sql.DB
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

func (s *MySQL) CreateAccount(ctx context.Context, email, name, password string) (*models.User, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ? OR name = ?)",
		email, name,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       utils.NewRecordID(),
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Created:  time.Now().UTC(),
	}
	user.Updated = user.Created

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, password, created, updated) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Name, user.Password, user.Created, user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *MySQL) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password, created, updated FROM users WHERE email = ?",
		email,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Password, &user.Created, &user.Updated)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *MySQL) AccountByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password, created, updated FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Password, &user.Created, &user.Updated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

const relationColumns = `
	f.id, f.user1, f.user2, f.accepted, f.refuse_reason, f.created, f.updated,
	u1.id, u1.email, u1.name, u1.created, u1.updated,
	u2.id, u2.email, u2.name, u2.created, u2.updated`

const relationJoin = `
	FROM friends f
	JOIN users u1 ON u1.id = f.user1
	JOIN users u2 ON u2.id = f.user2`

func scanRelation(row interface{ Scan(...interface{}) error }) (*models.FriendRelation, error) {
	rel := &models.FriendRelation{
		User1: &models.UserResponse{},
		User2: &models.UserResponse{},
	}
	err := row.Scan(
		&rel.ID, &rel.User1ID, &rel.User2ID, &rel.Accepted, &rel.RefuseReason, &rel.Created, &rel.Updated,
		&rel.User1.ID, &rel.User1.Email, &rel.User1.Name, &rel.User1.Created, &rel.User1.Updated,
		&rel.User2.ID, &rel.User2.Email, &rel.User2.Name, &rel.User2.Created, &rel.User2.Updated,
	)
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *MySQL) RelationsInvolving(ctx context.Context, accountID string) ([]*models.FriendRelation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT"+relationColumns+relationJoin+" WHERE f.user1 = ? OR f.user2 = ? ORDER BY f.created",
		accountID, accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []*models.FriendRelation
	for rows.Next() {
		rel, err := scanRelation(rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	return relations, rows.Err()
}

func (s *MySQL) RelationBetween(ctx context.Context, a, b string) (*models.FriendRelation, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT"+relationColumns+relationJoin+" WHERE (f.user1 = ? AND f.user2 = ?) OR (f.user1 = ? AND f.user2 = ?)",
		a, b, b, a,
	)
	rel, err := scanRelation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *MySQL) CreateRelation(ctx context.Context, requesterID, targetID string) (*models.FriendRelation, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", targetID,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	id := utils.NewRecordID()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO friends (id, user1, user2, accepted, refuse_reason, created, updated) VALUES (?, ?, ?, false, '', ?, ?)",
		id, requesterID, targetID, now, now,
	)
	if err != nil {
		return nil, err
	}
	return s.Relation(ctx, id)
}

func (s *MySQL) Relation(ctx context.Context, id string) (*models.FriendRelation, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT"+relationColumns+relationJoin+" WHERE f.id = ?", id,
	)
	rel, err := scanRelation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *MySQL) SetRelationOutcome(ctx context.Context, id string, accepted bool, reason string) (*models.FriendRelation, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE friends SET accepted = ?, refuse_reason = ?, updated = ? WHERE id = ?",
		accepted, reason, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, err
	}
	// Re-read so the caller gets the expanded profiles and the stored
	// timestamp; a missing id surfaces as ErrNotFound here.
	return s.Relation(ctx, id)
}

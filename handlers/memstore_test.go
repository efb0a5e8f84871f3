package handlers

import (
	"context"
	"sync"
	"time"

	"unison/models"
	"unison/store"
	"unison/utils"
)

// memStore is an in-memory store.Store used by the handler tests.
// Passwords are kept as-is; credential hashing is the real adapter's
// concern, not part of the interface contract under test.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	byEmail   map[string]string
	relations []*models.FriendRelation
	todos     []*models.Todo
	sessions  []*models.FocusSession
	usages    []*models.AppUsage
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (m *memStore) CreateAccount(_ context.Context, email, name, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[email]; ok {
		return nil, store.ErrDuplicate
	}
	for _, u := range m.users {
		if u.Name == name {
			return nil, store.ErrDuplicate
		}
	}

	now := time.Now()
	user := &models.User{
		ID:       utils.NewRecordID(),
		Email:    email,
		Name:     name,
		Password: password,
		Created:  now,
		Updated:  now,
	}
	m.users[user.ID] = user
	m.byEmail[email] = user.ID
	return user, nil
}

func (m *memStore) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[email]
	if !ok || m.users[id].Password != password {
		return nil, store.ErrInvalidCredentials
	}
	return m.users[id], nil
}

func (m *memStore) AccountByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (m *memStore) expand(rel *models.FriendRelation) *models.FriendRelation {
	out := *rel
	if u, ok := m.users[rel.User1ID]; ok {
		out.User1 = u.ToResponse()
	}
	if u, ok := m.users[rel.User2ID]; ok {
		out.User2 = u.ToResponse()
	}
	return &out
}

func (m *memStore) RelationsInvolving(_ context.Context, accountID string) ([]*models.FriendRelation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.FriendRelation
	for _, rel := range m.relations {
		if rel.Involves(accountID) {
			out = append(out, m.expand(rel))
		}
	}
	return out, nil
}

func (m *memStore) RelationBetween(_ context.Context, a, b string) (*models.FriendRelation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rel := range m.relations {
		if (rel.User1ID == a && rel.User2ID == b) || (rel.User1ID == b && rel.User2ID == a) {
			return m.expand(rel), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateRelation(_ context.Context, requesterID, targetID string) (*models.FriendRelation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[targetID]; !ok {
		return nil, store.ErrNotFound
	}

	now := time.Now()
	rel := &models.FriendRelation{
		ID:      utils.NewRecordID(),
		User1ID: requesterID,
		User2ID: targetID,
		Created: now,
		Updated: now,
	}
	m.relations = append(m.relations, rel)
	return m.expand(rel), nil
}

func (m *memStore) Relation(_ context.Context, id string) (*models.FriendRelation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rel := range m.relations {
		if rel.ID == id {
			return m.expand(rel), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) SetRelationOutcome(_ context.Context, id string, accepted bool, reason string) (*models.FriendRelation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rel := range m.relations {
		if rel.ID == id {
			rel.Accepted = accepted
			rel.RefuseReason = reason
			rel.Updated = time.Now()
			return m.expand(rel), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateTodo(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todo.ID = utils.NewRecordID()
	todo.Created = time.Now()
	todo.Updated = todo.Created
	m.todos = append(m.todos, todo)
	return todo, nil
}

func (m *memStore) TodosByUser(_ context.Context, userID string) ([]*models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.Todo
	for _, todo := range m.todos {
		if todo.UserID == userID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (m *memStore) TodoByID(_ context.Context, userID, id string) (*models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, todo := range m.todos {
		if todo.ID == id && todo.UserID == userID {
			return todo, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UpdateTodo(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.todos {
		if existing.ID == todo.ID && existing.UserID == todo.UserID {
			todo.Created = existing.Created
			todo.Updated = time.Now()
			m.todos[i] = todo
			return todo, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateFocusSession(_ context.Context, session *models.FocusSession) (*models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ID = utils.NewRecordID()
	session.Created = time.Now()
	session.Updated = session.Created
	for i := range session.Todos {
		session.Todos[i].ID = utils.NewRecordID()
		session.Todos[i].FocusID = session.ID
	}
	m.sessions = append(m.sessions, session)
	return session, nil
}

func (m *memStore) FocusSessionsByUser(_ context.Context, userID string) ([]*models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.FocusSession
	for _, session := range m.sessions {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	return out, nil
}

func (m *memStore) CreateAppUsage(_ context.Context, usage *models.AppUsage) (*models.AppUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	usage.ID = utils.NewRecordID()
	usage.Created = time.Now()
	usage.Updated = usage.Created
	m.usages = append(m.usages, usage)
	return usage, nil
}

func (m *memStore) AppUsageByUser(_ context.Context, userID string) ([]*models.AppUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*models.AppUsage
	for _, usage := range m.usages {
		if usage.UserID == userID {
			out = append(out, usage)
		}
	}
	return out, nil
}

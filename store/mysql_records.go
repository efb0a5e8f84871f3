package store

import (
	"context"
	"database/sql"
	"time"

	"unison/models"
	"unison/utils"
)

func (s *MySQL) CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	todo.ID = utils.NewRecordID()
	todo.Created = time.Now().UTC()
	todo.Updated = todo.Created

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, user, title, category, estimation, total, progress, duration_focus, active, archived, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.UserID, todo.Title, todo.Category, todo.Estimation, todo.Total,
		todo.Progress, todo.DurationFocus, todo.Active, todo.Archived, todo.Created, todo.Updated,
	)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *MySQL) TodosByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, title, category, estimation, total, progress, duration_focus, active, archived, created, updated
		 FROM todos WHERE user = ? ORDER BY created`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(
			&todo.ID, &todo.UserID, &todo.Title, &todo.Category, &todo.Estimation, &todo.Total,
			&todo.Progress, &todo.DurationFocus, &todo.Active, &todo.Archived, &todo.Created, &todo.Updated,
		); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (s *MySQL) TodoByID(ctx context.Context, userID, id string) (*models.Todo, error) {
	todo := &models.Todo{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user, title, category, estimation, total, progress, duration_focus, active, archived, created, updated
		 FROM todos WHERE id = ? AND user = ?`,
		id, userID,
	).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Category, &todo.Estimation, &todo.Total,
		&todo.Progress, &todo.DurationFocus, &todo.Active, &todo.Archived, &todo.Created, &todo.Updated,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *MySQL) UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	todo.Updated = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, category = ?, estimation = ?, total = ?, progress = ?, duration_focus = ?, active = ?, archived = ?, updated = ?
		 WHERE id = ? AND user = ?`,
		todo.Title, todo.Category, todo.Estimation, todo.Total, todo.Progress,
		todo.DurationFocus, todo.Active, todo.Archived, todo.Updated, todo.ID, todo.UserID,
	)
	if err != nil {
		return nil, err
	}
	// Re-read so the caller gets the stored timestamps; an id the user
	// does not own surfaces as ErrNotFound here.
	return s.TodoByID(ctx, todo.UserID, todo.ID)
}

func (s *MySQL) CreateFocusSession(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	session.ID = utils.NewRecordID()
	session.Created = time.Now().UTC()
	session.Updated = session.Created

	_, err = tx.ExecContext(ctx,
		`INSERT INTO focus (id, user, start, end_time, duration_target, duration_focus, duration_interrupted, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.Start, session.End, session.DurationTarget,
		session.DurationFocus, session.DurationInterrupted, session.Created, session.Updated,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	for i := range session.Todos {
		link := &session.Todos[i]
		link.ID = utils.NewRecordID()
		link.FocusID = session.ID
		_, err = tx.ExecContext(ctx,
			`INSERT INTO focus_todos (id, focus, todo, duration, progress_start, progress_end)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			link.ID, link.FocusID, link.TodoID, link.Duration, link.ProgressStart, link.ProgressEnd,
		)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *MySQL) FocusSessionsByUser(ctx context.Context, userID string) ([]*models.FocusSession, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, start, end_time, duration_target, duration_focus, duration_interrupted, created, updated
		 FROM focus WHERE user = ? ORDER BY start`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.FocusSession
	byID := make(map[string]*models.FocusSession)
	for rows.Next() {
		session := &models.FocusSession{Todos: []models.FocusTodo{}}
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.Start, &session.End, &session.DurationTarget,
			&session.DurationFocus, &session.DurationInterrupted, &session.Created, &session.Updated,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
		byID[session.ID] = session
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	linkRows, err := s.db.QueryContext(ctx,
		`SELECT ft.id, ft.focus, ft.todo, ft.duration, ft.progress_start, ft.progress_end
		 FROM focus_todos ft JOIN focus f ON f.id = ft.focus WHERE f.user = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var link models.FocusTodo
		if err := linkRows.Scan(
			&link.ID, &link.FocusID, &link.TodoID, &link.Duration, &link.ProgressStart, &link.ProgressEnd,
		); err != nil {
			return nil, err
		}
		if session, ok := byID[link.FocusID]; ok {
			session.Todos = append(session.Todos, link)
		}
	}
	return sessions, linkRows.Err()
}

func (s *MySQL) CreateAppUsage(ctx context.Context, usage *models.AppUsage) (*models.AppUsage, error) {
	usage.ID = utils.NewRecordID()
	usage.Created = time.Now().UTC()
	usage.Updated = usage.Created

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_usage (id, user, app_name, start, duration, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		usage.ID, usage.UserID, usage.AppName, usage.Start, usage.Duration, usage.Created, usage.Updated,
	)
	if err != nil {
		return nil, err
	}
	return usage, nil
}

func (s *MySQL) AppUsageByUser(ctx context.Context, userID string) ([]*models.AppUsage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, app_name, start, duration, created, updated
		 FROM app_usage WHERE user = ? ORDER BY start`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []*models.AppUsage
	for rows.Next() {
		usage := &models.AppUsage{}
		if err := rows.Scan(
			&usage.ID, &usage.UserID, &usage.AppName, &usage.Start, &usage.Duration, &usage.Created, &usage.Updated,
		); err != nil {
			return nil, err
		}
		usages = append(usages, usage)
	}
	return usages, rows.Err()
}

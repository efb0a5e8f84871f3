package database

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func CreateTables(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id        CHAR(15) PRIMARY KEY,
			email     VARCHAR(255) NOT NULL,
			name      VARCHAR(100) NOT NULL,
			password  VARCHAR(255) NOT NULL,
			created   DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated   DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_email (email),
			UNIQUE KEY uk_name (name)
		)`,
		`CREATE TABLE IF NOT EXISTS friends (
			id             CHAR(15) PRIMARY KEY,
			user1          CHAR(15) NOT NULL,
			user2          CHAR(15) NOT NULL,
			accepted       BOOLEAN NOT NULL DEFAULT FALSE,
			refuse_reason  VARCHAR(256) NOT NULL DEFAULT '',
			created        DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated        DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_user1 (user1),
			INDEX idx_user2 (user2)
		)`,
		`CREATE TABLE IF NOT EXISTS todos (
			id              CHAR(15) PRIMARY KEY,
			user            CHAR(15) NOT NULL,
			title           VARCHAR(256) NOT NULL,
			category        VARCHAR(64) NOT NULL DEFAULT '',
			estimation      INT NOT NULL,
			total           INT NOT NULL,
			progress        INT NOT NULL DEFAULT 0,
			duration_focus  INT NOT NULL DEFAULT 0,
			active          BOOLEAN NOT NULL DEFAULT TRUE,
			archived        BOOLEAN NOT NULL DEFAULT FALSE,
			created         DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated         DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_user (user)
		)`,
		`CREATE TABLE IF NOT EXISTS focus (
			id                    CHAR(15) PRIMARY KEY,
			user                  CHAR(15) NOT NULL,
			start                 DATETIME NOT NULL,
			end_time              DATETIME NOT NULL,
			duration_target       INT NOT NULL,
			duration_focus        INT NOT NULL,
			duration_interrupted  INT NOT NULL DEFAULT 0,
			created               DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated               DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_user_start (user, start)
		)`,
		`CREATE TABLE IF NOT EXISTS focus_todos (
			id              CHAR(15) PRIMARY KEY,
			focus           CHAR(15) NOT NULL,
			todo            CHAR(15) NOT NULL,
			duration        INT NOT NULL,
			progress_start  INT NOT NULL DEFAULT 0,
			progress_end    INT NOT NULL DEFAULT 0,
			INDEX idx_focus (focus)
		)`,
		`CREATE TABLE IF NOT EXISTS app_usage (
			id        CHAR(15) PRIMARY KEY,
			user      CHAR(15) NOT NULL,
			app_name  VARCHAR(256) NOT NULL,
			start     DATETIME NOT NULL,
			duration  INT NOT NULL,
			created   DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated   DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_user_start (user, start)
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

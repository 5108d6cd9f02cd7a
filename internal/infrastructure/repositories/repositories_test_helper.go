package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		email_verified BOOLEAN NOT NULL,
		phone_verified BOOLEAN NOT NULL,
		two_factor_enabled BOOLEAN NOT NULL,
		two_factor_method TEXT,
		last_login DATETIME,
		member_id TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMemberTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE members (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT,
		user_name TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		slug TEXT NOT NULL UNIQUE,
		wallet_key TEXT NOT NULL UNIQUE,
		phone TEXT,
		bio TEXT,
		position TEXT,
		is_active BOOLEAN NOT NULL,
		following TEXT NOT NULL DEFAULT '0',
		followers TEXT NOT NULL DEFAULT '0',
		joined_at DATETIME NOT NULL,
		company_id TEXT,
		avatar_id TEXT,
		cover_image_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFollowerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE followers (
		id TEXT PRIMARY KEY,
		follower_id TEXT NOT NULL,
		followed_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (follower_id, followed_id)
	);`)
}

func createLinkTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE social_links (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		icon TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE external_links (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL
	);`)
}

func createImageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE images (
		id TEXT PRIMARY KEY,
		thumbnail TEXT NOT NULL,
		original TEXT NOT NULL
	);`)
}

func createCompanyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		industry TEXT,
		website TEXT,
		email TEXT,
		phone TEXT,
		address TEXT,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		cover_image_url TEXT,
		is_virtual BOOLEAN NOT NULL,
		registration_link TEXT,
		capacity INTEGER,
		company_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		link TEXT,
		type TEXT NOT NULL,
		priority TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		expires_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBadgeTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE badges (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		icon TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		valid_from DATETIME NOT NULL,
		valid_until DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE member_badges (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		badge_id TEXT NOT NULL,
		issued_at DATETIME NOT NULL,
		issued_by_id TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		UNIQUE (member_id, badge_id)
	);`)
}

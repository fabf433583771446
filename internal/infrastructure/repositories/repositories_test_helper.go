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

func createUnifiedUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE unified_users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		platform_id TEXT NOT NULL,
		platform_user_id TEXT NOT NULL,
		user_type TEXT NOT NULL,
		full_name TEXT,
		phone TEXT,
		verification_status TEXT,
		account_status TEXT NOT NULL DEFAULT 'active',
		last_synced_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVerificationQueueTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_queue (
		id TEXT PRIMARY KEY,
		platform_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		platform_user_id TEXT NOT NULL,
		verification_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		documents TEXT,
		reviewed_by TEXT,
		reviewed_at DATETIME,
		review_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPlatformTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE platforms (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		api_base_url TEXT NOT NULL,
		api_key_encrypted TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		last_health_check DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAdminUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE super_admin_users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'super_admin',
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_audit_log (
		id TEXT PRIMARY KEY,
		admin_user_id TEXT NOT NULL,
		action_type TEXT NOT NULL,
		target_platform TEXT,
		target_entity_type TEXT,
		target_entity_id TEXT,
		action_details TEXT,
		created_at DATETIME
	);`)
}

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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
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
		email TEXT UNIQUE NOT NULL,
		first_name TEXT,
		last_name TEXT,
		password_hash TEXT,
		role TEXT,
		is_restaurant_owner BOOLEAN,
		is_verified BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createRestaurantTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE restaurant_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		address TEXT,
		phone TEXT,
		email TEXT,
		website TEXT,
		currency TEXT,
		tax_rate TEXT,
		service_charge TEXT,
		table_prefix TEXT,
		qr_data TEXT UNIQUE NOT NULL,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE restaurant_settings (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL UNIQUE,
		min_order_amount TEXT,
		max_order_amount TEXT,
		order_timeout_minutes INTEGER,
		email_notifications BOOLEAN,
		sms_notifications BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMenuTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		sort_order INTEGER,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE dishes (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		ingredients TEXT,
		price TEXT NOT NULL,
		weight INTEGER,
		cooking_time INTEGER,
		sort_order INTEGER,
		is_available BOOLEAN,
		is_popular BOOLEAN,
		is_new BOOLEAN,
		is_spicy BOOLEAN,
		is_vegetarian BOOLEAN,
		is_vegan BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE dish_options (
		id TEXT PRIMARY KEY,
		dish_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price_modifier TEXT,
		is_required BOOLEAN,
		is_available BOOLEAN,
		sort_order INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		order_number TEXT UNIQUE NOT NULL,
		customer_name TEXT,
		customer_phone TEXT,
		customer_email TEXT,
		table_number TEXT,
		status TEXT NOT NULL,
		subtotal TEXT NOT NULL,
		tax_amount TEXT,
		service_amount TEXT,
		total_amount TEXT NOT NULL,
		payment_method TEXT,
		is_paid BOOLEAN,
		paid_at DATETIME,
		special_requests TEXT,
		qr_data TEXT,
		confirmed_at DATETIME,
		completed_at DATETIME,
		cancelled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		dish_id TEXT NOT NULL,
		dish_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price TEXT NOT NULL,
		selected_options TEXT,
		special_requests TEXT,
		created_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE restaurant_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		name TEXT,
		description TEXT,
		address TEXT,
		phone TEXT,
		email TEXT,
		document_file TEXT,
		status TEXT NOT NULL,
		admin_comment TEXT,
		reviewed_by TEXT,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

package services

import (
	"os"
	"testing"
	"time"

	"brando-backend/models"
	"brando-backend/utils"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	_ = godotenv.Load("../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Invoice{}, &models.LoadSheet{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE users, invoices, load_sheets CASCADE").Error; err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, startNumber int, isAdmin bool) *models.User {
	t.Helper()
	user, err := NewUserService(db).Create(CreateUserInput{
		Name:        "Test " + username,
		Username:    username,
		Password:    "secret123",
		StartNumber: startNumber,
		IsAdmin:     isAdmin,
	})
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

func appendTestInvoice(t *testing.T, db *gorm.DB, user *models.User, no, createdAt, total string) {
	t.Helper()
	err := NewHistoryService(db).Append(&models.Invoice{
		UserID:       user.ID,
		Username:     user.Username,
		InvoiceNo:    no,
		CustomerName: "Customer " + no,
		PhonePrimary: "03012345678",
		Total:        decimal.RequireFromString(total),
		CreatedAt:    createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to append invoice %s: %v", no, err)
	}
}

func TestNumbering_SequentialIssue(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "seq", 2000, false)

	numbering := NewNumberingService(db)
	want := []string{"2000", "2001", "2002"}
	for _, w := range want {
		got, err := numbering.Issue(user.Username, "")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if got != w {
			t.Errorf("Issue = %s, want %s", got, w)
		}
	}

	var reloaded models.User
	db.First(&reloaded, "username = ?", "seq")
	if reloaded.NextNumber != 2003 {
		t.Errorf("NextNumber = %d, want 2003", reloaded.NextNumber)
	}
}

func TestNumbering_ManualOverrideDoesNotMutateCounter(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "manual", 5000, false)

	numbering := NewNumberingService(db)
	got, err := numbering.Issue(user.Username, "CUSTOM-42")
	if err != nil {
		t.Fatalf("Issue with manual: %v", err)
	}
	if got != "CUSTOM-42" {
		t.Errorf("Issue = %s, want CUSTOM-42", got)
	}

	auto, err := numbering.Issue(user.Username, "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if auto != "5000" {
		t.Errorf("auto issue after manual = %s, want 5000", auto)
	}
}

func TestUserService_Rules(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	createTestUser(t, db, "root", 1000, true)

	if _, err := svc.Create(CreateUserInput{Name: "x", Username: "ROOT", Password: "p", StartNumber: 3000}); err != ErrDuplicateUsername {
		t.Errorf("case-insensitive duplicate username: got %v, want ErrDuplicateUsername", err)
	}
	if _, err := svc.Create(CreateUserInput{Name: "x", Username: "other", Password: "p", StartNumber: 1000}); err != ErrStartNumberTaken {
		t.Errorf("colliding start number: got %v, want ErrStartNumberTaken", err)
	}

	if err := svc.Delete("root", "root"); err != ErrCannotDeleteSelf {
		t.Errorf("delete self: got %v, want ErrCannotDeleteSelf", err)
	}
	if err := svc.Delete("root", "someoneelse"); err != ErrCannotDeleteLastAdmin {
		t.Errorf("delete last admin: got %v, want ErrCannotDeleteLastAdmin", err)
	}

	// Demoting the only admin is corrected, not rejected
	demote := false
	updated, err := svc.Update("root", UpdateUserInput{IsAdmin: &demote})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsAdmin {
		t.Errorf("last admin demotion was not auto-corrected")
	}

	// A non-admin can be deleted once another admin exists
	createTestUser(t, db, "worker", 4000, false)
	if err := svc.Delete("worker", "root"); err != nil {
		t.Errorf("delete non-admin: %v", err)
	}
	users, _ := svc.List()
	for _, u := range users {
		if u.Username == "worker" {
			t.Errorf("deleted user still listed")
		}
	}
}

func TestHistoryService_ListAndSelected(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "hist", 1000, false)
	appendTestInvoice(t, db, user, "1000", "2024-01-15 09:00:00", "100")
	appendTestInvoice(t, db, user, "1001", "2024-02-01 10:00:00", "50")

	svc := NewHistoryService(db)

	all, err := svc.List("hist", "", "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].InvoiceNo != "1001" {
		t.Errorf("expected newest-first ordering, got %+v", all)
	}

	january, err := svc.List("hist", "", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("List with range: %v", err)
	}
	if len(january) != 1 || january[0].InvoiceNo != "1000" {
		t.Errorf("range filter: got %+v, want just 1000", january)
	}

	selected, err := svc.Selected("hist", []string{"1001", "9999"})
	if err != nil {
		t.Fatalf("Selected: %v", err)
	}
	if len(selected) != 1 || selected[0].InvoiceNo != "1001" {
		t.Errorf("Selected: got %+v, want just 1001", selected)
	}
}

func TestLoadSheet_CreateDuplicateAndPrune(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("DATA_DIR", t.TempDir())

	user := createTestUser(t, db, "batcher", 1000, false)
	appendTestInvoice(t, db, user, "1000", "2024-03-01 09:00:00", "100")
	appendTestInvoice(t, db, user, "1001", "2024-03-01 11:00:00", "50")

	svc := NewLoadSheetService(db)

	batch, err := svc.Create(user.ID, user.Username, []string{"1000", "1001"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, p := range []string{batch.PDFPath, batch.CSVPath, batch.XLSXPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("generated file missing: %s", p)
		}
	}

	// Double-submitting the same selection must be rejected
	if _, err := svc.Create(user.ID, user.Username, []string{"1000"}); err != ErrDuplicateInvoiceInBatch {
		t.Errorf("duplicate batch: got %v, want ErrDuplicateInvoiceInBatch", err)
	}

	if _, err := svc.Create(user.ID, user.Username, []string{"9999"}); err != ErrNoMatchingInvoices {
		t.Errorf("unknown selection: got %v, want ErrNoMatchingInvoices", err)
	}

	// Age the batch past the retention window and list again
	old := time.Now().AddDate(0, 0, -(RetentionDays + 1)).Format(utils.TimestampLayout)
	if err := db.Model(&models.LoadSheet{}).Where("id = ?", batch.ID).
		Update("created_at", old).Error; err != nil {
		t.Fatalf("aging batch: %v", err)
	}

	remaining, err := svc.List(user.Username)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected expired batch to be pruned, got %+v", remaining)
	}
	for _, p := range []string{batch.PDFPath, batch.CSVPath, batch.XLSXPath} {
		if _, err := os.Stat(p); err == nil {
			t.Errorf("pruned file still exists: %s", p)
		}
	}

	// Its invoices are free for a new batch again
	if _, err := svc.Create(user.ID, user.Username, []string{"1000"}); err != nil {
		t.Errorf("re-batching pruned invoices: %v", err)
	}
}

func TestLoadSheet_Download(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("DATA_DIR", t.TempDir())

	user := createTestUser(t, db, "dl", 1000, false)
	appendTestInvoice(t, db, user, "1000", "2024-03-01 09:00:00", "100")

	svc := NewLoadSheetService(db)
	batch, err := svc.Create(user.ID, user.Username, []string{"1000"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	path, filename, err := svc.Download(user.Username, batch.ID, "csv")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if path != batch.CSVPath || filename != batch.ID+".csv" {
		t.Errorf("Download = %s/%s, want %s/%s", path, filename, batch.CSVPath, batch.ID+".csv")
	}

	if _, _, err := svc.Download(user.Username, "missing", "csv"); err != ErrLoadSheetNotFound {
		t.Errorf("missing batch: got %v, want ErrLoadSheetNotFound", err)
	}
	if _, _, err := svc.Download(user.Username, batch.ID, "docx"); err != ErrUnknownFormat {
		t.Errorf("unknown format: got %v, want ErrUnknownFormat", err)
	}
}

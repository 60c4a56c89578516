package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sakif/property-board/internal/apperror"
	"github.com/sakif/property-board/internal/model"
)

// TESTING WITH IN-MEMORY SQLITE:
// ":memory:" creates a fresh database that exists only for the duration of
// the test — fast, isolated, destroyed when the connection closes.
//
// t.Helper() makes failures report at the CALLER's line, and t.Cleanup is
// like defer but scoped to the test (works in subtests too).
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestProperty(t *testing.T, db *DB, title string, price float64, location string) *model.Property {
	t.Helper()
	p := &model.Property{Title: title, Price: price, Location: location}
	if err := db.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return p
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestCreate(t *testing.T) {
	db := newTestDB(t)

	p := &model.Property{
		Title:    "Downtown Loft",
		Price:    1500,
		Location: "Downtown",
	}

	if err := db.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Verify the property was modified in-place (pointer receiver!)
	if p.ID == "" {
		t.Error("Create() did not set property.ID")
	}
	if p.CreatedAt.IsZero() {
		t.Error("Create() did not set property.CreatedAt")
	}
	if p.UpdatedAt.IsZero() {
		t.Error("Create() did not set property.UpdatedAt")
	}
}

func TestCreate_VerifyPersistence(t *testing.T) {
	db := newTestDB(t)

	original := createTestProperty(t, db, "Seaside Villa", 4200, "Coast")

	found, err := db.GetByID(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if found.Title != original.Title {
		t.Errorf("Title = %q, want %q", found.Title, original.Title)
	}
	if found.Price != original.Price {
		t.Errorf("Price = %v, want %v", found.Price, original.Price)
	}
	if found.Location != original.Location {
		t.Errorf("Location = %q, want %q", found.Location, original.Location)
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	db := newTestDB(t)

	a := createTestProperty(t, db, "A", 100, "X")
	b := createTestProperty(t, db, "B", 200, "Y")

	if a.ID == b.ID {
		t.Errorf("two creates produced the same ID %q", a.ID)
	}
}

// =========================================================================
// GET BY ID TESTS
// =========================================================================

func TestGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetByID(context.Background(), "nonexistent-id")

	// Verify we get our domain NotFound error, not a raw sql.ErrNoRows
	if err == nil {
		t.Fatal("GetByID() should have returned an error for nonexistent ID")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

// =========================================================================
// LIST TESTS
// =========================================================================

func TestList_Empty(t *testing.T) {
	db := newTestDB(t)

	properties, err := db.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(properties) != 0 {
		t.Errorf("List() returned %d properties, want 0", len(properties))
	}
}

func TestList_ReturnsAll(t *testing.T) {
	db := newTestDB(t)

	createTestProperty(t, db, "One", 100, "A")
	createTestProperty(t, db, "Two", 200, "B")
	createTestProperty(t, db, "Three", 300, "C")

	properties, err := db.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(properties) != 3 {
		t.Errorf("List() returned %d properties, want 3", len(properties))
	}
}

// =========================================================================
// UPDATE TESTS
// =========================================================================

func TestUpdate(t *testing.T) {
	db := newTestDB(t)

	created := createTestProperty(t, db, "Old Title", 1000, "Old Town")
	createdAt := created.CreatedAt

	created.Title = "New Title"
	created.Price = 1600
	created.Location = "New Town"

	if err := db.Update(context.Background(), created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := db.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if found.Title != "New Title" || found.Price != 1600 || found.Location != "New Town" {
		t.Errorf("Update() did not persist new fields: %+v", found)
	}
	if !found.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt changed on update: %v → %v", createdAt, found.CreatedAt)
	}
	if found.UpdatedAt.Before(createdAt) {
		t.Errorf("UpdatedAt = %v, should not be before CreatedAt %v", found.UpdatedAt, createdAt)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)

	p := &model.Property{ID: "missing", Title: "x", Price: 1, Location: "y"}
	err := db.Update(context.Background(), p)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

// TestUpdate_ConcurrentLastWriteWins verifies that two racing updates on the
// same id leave the row holding exactly one of the two payloads, never a
// field-level mix of both. Each UPDATE is a single atomic statement.
func TestUpdate_ConcurrentLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	created := createTestProperty(t, db, "Base", 100, "Base Town")

	payloads := []model.Property{
		{ID: created.ID, Title: "Writer A", Price: 111, Location: "Alphaville"},
		{ID: created.ID, Title: "Writer B", Price: 222, Location: "Betatown"},
	}

	var wg sync.WaitGroup
	for i := range payloads {
		wg.Add(1)
		go func(p model.Property) {
			defer wg.Done()
			if err := db.Update(context.Background(), &p); err != nil {
				t.Errorf("Update() error = %v", err)
			}
		}(payloads[i])
	}
	wg.Wait()

	found, err := db.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	matchesA := found.Title == "Writer A" && found.Price == 111 && found.Location == "Alphaville"
	matchesB := found.Title == "Writer B" && found.Price == 222 && found.Location == "Betatown"
	if !matchesA && !matchesB {
		t.Errorf("row holds a merged payload: %+v", found)
	}
}

// =========================================================================
// DELETE TESTS
// =========================================================================

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	created := createTestProperty(t, db, "Doomed", 50, "Nowhere")

	if err := db.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// The id is permanently invalid afterwards
	_, err := db.GetByID(context.Background(), created.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("after delete: error = %v, want ErrNotFound", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Delete(context.Background(), "never-existed")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDelete_Twice(t *testing.T) {
	db := newTestDB(t)
	created := createTestProperty(t, db, "Once", 75, "Somewhere")

	if err := db.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	err := db.Delete(context.Background(), created.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

// Timestamps should be stored and read back without losing ordering — a
// record updated later must never report an earlier UpdatedAt.
func TestTimestampOrdering(t *testing.T) {
	db := newTestDB(t)
	created := createTestProperty(t, db, "Clock", 10, "Here")

	time.Sleep(5 * time.Millisecond)

	created.Price = 20
	if err := db.Update(context.Background(), created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := db.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !found.UpdatedAt.After(found.CreatedAt) {
		t.Errorf("UpdatedAt %v should be after CreatedAt %v", found.UpdatedAt, found.CreatedAt)
	}
}

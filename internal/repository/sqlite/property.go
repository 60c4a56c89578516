package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/property-board/internal/apperror"
	"github.com/sakif/property-board/internal/model"
	"github.com/sakif/property-board/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` assigns a nil *Y to a variable of interface type X.
// If *Y doesn't implement X, the compiler errors immediately, instead of at
// the distant call site where *DB is passed as a PropertyRepository.
var _ repository.PropertyRepository = (*DB)(nil)

// Create inserts a new property listing.
//
// ID GENERATION WITH xid:
// xid generates globally unique IDs that are 20 chars, URL-safe, and sortable
// by creation time (they start with a timestamp). Example: "cv37rs3pp9olc6atsptg".
// Because each id embeds a timestamp plus a random machine/process component,
// a deleted id is never handed out again.
//
// POINTER RECEIVER (*model.Property):
// We take a pointer so we can modify the caller's struct in place — after
// Create() returns, the caller's property has the generated ID and timestamps.
func (db *DB) Create(ctx context.Context, property *model.Property) error {
	property.ID = xid.New().String()

	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	// PARAMETERIZED QUERY: the ? placeholders are filled by the driver with
	// proper escaping. Never build SQL with string concatenation.
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO properties (id, title, price, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		property.ID,
		property.Title,
		property.Price,
		property.Location,
		property.CreatedAt,
		property.UpdatedAt,
	)
	if err != nil {
		return apperror.StoreFailure("creating property", err)
	}

	return nil
}

// GetByID retrieves a single property by its ID.
//
// sql.ErrNoRows is NOT really an error — it just means "no matching row".
// We translate it to our domain NotFound error so the handler knows to
// return 404. Anything else is a real store failure.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Property, error) {
	var p model.Property

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, price, location, created_at, updated_at
		 FROM properties
		 WHERE id = ?`,
		id,
	).Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Location,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		// sql.ErrNoRows is a sentinel — database/sql doesn't wrap it,
		// so a plain == check is the documented way to detect it.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("property", id)
		}
		return nil, apperror.StoreFailure("getting property", err)
	}

	return &p, nil
}

// List retrieves the full collection, newest first.
//
// No pagination: the dashboard renders the whole collection and derives its
// KPIs from the complete sequence, so a partial page would skew the numbers.
//
// defer rows.Close() is critical — sql.Rows holds a pool connection, and a
// leaked one is never returned. rows.Err() after the loop catches failures
// that happen during iteration.
func (db *DB) List(ctx context.Context) ([]model.Property, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, price, location, created_at, updated_at
		 FROM properties
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, apperror.StoreFailure("listing properties", err)
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Price, &p.Location,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, apperror.StoreFailure("scanning property row", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.StoreFailure("iterating properties", err)
	}

	return properties, nil
}

// Update replaces the three mutable fields of an existing listing in a single
// statement. id and created_at are never touched; updated_at is refreshed.
//
// The single UPDATE is also the atomicity guarantee: two racing updates on
// the same id serialize inside SQLite, and the row always holds exactly one
// caller's payload, never a mix.
func (db *DB) Update(ctx context.Context, property *model.Property) error {
	property.UpdatedAt = time.Now().UTC()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE properties
		 SET title = ?, price = ?, location = ?, updated_at = ?
		 WHERE id = ?`,
		property.Title,
		property.Price,
		property.Location,
		property.UpdatedAt,
		property.ID,
	)
	if err != nil {
		return apperror.StoreFailure("updating property", err)
	}

	// RowsAffected() tells us how many rows the UPDATE changed.
	// Zero means the WHERE clause matched nothing → not found.
	// One query instead of SELECT + UPDATE.
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.StoreFailure("checking rows affected", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("property", property.ID)
	}

	return nil
}

// Delete removes a property by its ID.
// Same pattern as Update — RowsAffected detects "not found".
func (db *DB) Delete(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM properties WHERE id = ?`,
		id,
	)
	if err != nil {
		return apperror.StoreFailure("deleting property", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.StoreFailure("checking rows affected", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("property", id)
	}

	return nil
}

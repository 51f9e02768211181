// Package items stores free-form initiative records as JSONB documents.
package items

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// IDField is the key under which an item's ID is exposed in its JSON form.
const IDField = "_id"

// Item is one stored record. Its JSON form is the record's fields plus
// IDField.
type Item struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (it Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Data)+1)
	maps.Copy(out, it.Data)
	out[IDField] = it.ID
	return json.Marshal(out)
}

// Service provides item management backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new item Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// encodeFields serializes client-supplied fields, dropping any attempt to
// set the ID.
func encodeFields(fields map[string]any) ([]byte, error) {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == IDField {
			continue
		}
		clean[k] = v
	}
	data, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}
	return data, nil
}

func scanItem(s interface{ Scan(...any) error }) (*Item, error) {
	var (
		it  Item
		raw []byte
	)
	if err := s.Scan(&it.ID, &raw, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &it.Data); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", it.ID, err)
	}
	if it.Data == nil {
		it.Data = map[string]any{}
	}
	return &it, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// List returns every item, oldest first.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data, created_at, updated_at FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

// Get returns an item by ID. Unknown IDs wrap sql.ErrNoRows.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	if !validID(id) {
		return nil, fmt.Errorf("get item %s: %w", id, sql.ErrNoRows)
	}
	it, err := scanItem(s.db.QueryRowContext(ctx,
		`SELECT id, data, created_at, updated_at FROM items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return it, nil
}

// Create inserts an item with a new ID.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*Item, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}
	it, err := scanItem(s.db.QueryRowContext(ctx,
		`INSERT INTO items (id, data) VALUES ($1, $2::jsonb)
		 RETURNING id, data, created_at, updated_at`,
		uuid.NewString(), data))
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Update merges fields into an existing item: given keys are set, others
// are left alone.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (*Item, error) {
	if !validID(id) {
		return nil, fmt.Errorf("update item %s: %w", id, sql.ErrNoRows)
	}
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}
	it, err := scanItem(s.db.QueryRowContext(ctx,
		`UPDATE items SET data = data || $2::jsonb, updated_at = now()
		  WHERE id = $1
		 RETURNING id, data, created_at, updated_at`,
		id, data))
	if err != nil {
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	return it, nil
}

// Delete removes an item. Unknown IDs wrap sql.ErrNoRows.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("delete item %s: %w", id, sql.ErrNoRows)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	} else if n == 0 {
		return fmt.Errorf("delete item %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// DeleteAll removes every item and returns how many were removed.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items`)
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	return res.RowsAffected()
}

package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"trip_planner/internal/domain"
)

const listLimit = 100

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Save(ctx context.Context, si domain.SavedItinerary) error {
	doc, err := json.Marshal(si.Document)
	if err != nil {
		return fmt.Errorf("marshal itinerary document: %w", err)
	}
	_, err = r.db.ExecContext(ctx, insertSavedSQL,
		si.ID,
		si.Owner,
		si.Document.Destination,
		si.Document.Duration,
		string(si.Document.Budget),
		string(doc),
		si.CreatedAt,
	)
	return err
}

func (r *Repo) Get(ctx context.Context, id string) (domain.SavedItinerary, error) {
	row := r.db.QueryRowContext(ctx, getSavedSQL, id)
	si, err := scanSaved(row.Scan)
	if err == sql.ErrNoRows {
		return domain.SavedItinerary{}, domain.ErrNotFound
	}
	return si, err
}

func (r *Repo) ListByOwner(ctx context.Context, owner string) ([]domain.SavedItinerary, error) {
	rows, err := r.db.QueryContext(ctx, listByOwnerSQL, owner, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SavedItinerary
	for rows.Next() {
		si, err := scanSaved(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, si)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSaved(scan func(...any) error) (domain.SavedItinerary, error) {
	var si domain.SavedItinerary
	var dest string
	var duration int
	var budget string
	var doc []byte
	if err := scan(&si.ID, &si.Owner, &dest, &duration, &budget, &doc, &si.CreatedAt); err != nil {
		return domain.SavedItinerary{}, err
	}
	if err := json.Unmarshal(doc, &si.Document); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("unmarshal itinerary document: %w", err)
	}
	// denormalized columns are for querying; the document is canonical
	_ = dest
	_ = duration
	_ = budget
	return si, nil
}

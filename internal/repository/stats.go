package repository

import (
	"context"
	"database/sql"

	"github.com/passcheck/passcheck-go/internal/model"
)

// StatsRepository persists evaluation outcomes. Only the rating, score and
// timestamp are stored — never the evaluated password.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Record inserts one evaluation outcome.
func (r *StatsRepository) Record(ctx context.Context, rating string, score int) error {
	query := `INSERT INTO evaluations (rating, score) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, rating, score)
	return err
}

// Summary returns the number of recorded evaluations per rating, plus the
// total.
func (r *StatsRepository) Summary(ctx context.Context) (model.StatsResponse, error) {
	query := `SELECT rating, COUNT(*) FROM evaluations GROUP BY rating`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.StatsResponse{}, err
	}
	defer rows.Close()

	resp := model.StatsResponse{Counts: make(map[string]int64)}
	for rows.Next() {
		var rating string
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return model.StatsResponse{}, err
		}
		resp.Counts[rating] = count
		resp.Total += count
	}
	if err := rows.Err(); err != nil {
		return model.StatsResponse{}, err
	}

	return resp, nil
}

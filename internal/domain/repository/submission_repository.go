package repository

import (
	"context"
	"database/sql"
	"fmt"

	"code_mentor/internal/domain/model"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.Submission) error
	ListByUser(ctx context.Context, userID string) ([]model.Submission, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]model.Submission, error)
	CountByLevel(ctx context.Context, userID string) (*model.SubmissionStats, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	query := `INSERT INTO submissions (id, user_id, problem, code, analysis, level, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.Problem, sub.Code, sub.Analysis, sub.Level, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgSubmissionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSubmissionRepository) ListByUser(ctx context.Context, userID string) ([]model.Submission, error) {
	query := `SELECT id, user_id, problem, code, analysis, level, created_at
	          FROM submissions WHERE user_id = $1
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListByUser: %w", err)
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *pgSubmissionRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]model.Submission, error) {
	query := `SELECT id, user_id, problem, code, analysis, level, created_at
	          FROM submissions WHERE user_id = $1
	          ORDER BY created_at DESC
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.RecentByUser: %w", err)
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *pgSubmissionRepository) CountByLevel(ctx context.Context, userID string) (*model.SubmissionStats, error) {
	query := `SELECT COUNT(*),
	                 COUNT(*) FILTER (WHERE level = 'easy'),
	                 COUNT(*) FILTER (WHERE level = 'medium'),
	                 COUNT(*) FILTER (WHERE level = 'hard')
	          FROM submissions WHERE user_id = $1`
	stats := &model.SubmissionStats{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Total, &stats.Easy, &stats.Medium, &stats.Hard,
	)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.CountByLevel: %w", err)
	}
	return stats, nil
}

func scanSubmissions(rows *sql.Rows) ([]model.Submission, error) {
	subs := []model.Submission{}
	for rows.Next() {
		var sub model.Submission
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Problem, &sub.Code, &sub.Analysis, &sub.Level, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanSubmissions: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanSubmissions: %w", err)
	}
	return subs, nil
}

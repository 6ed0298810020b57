package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"brightforge/internal/domain"
)

// ViewEventRepository define el contrato de persistencia para el log de
// vistas de paquetes. El log es append-only; la única mutación permitida es
// el sello last_reminder_sent por par (usuario, packageType).
type ViewEventRepository interface {
	Append(ctx context.Context, event domain.PackageViewEvent) error
	ListByUser(ctx context.Context, userID string) ([]domain.PackageViewEvent, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.PackageViewEvent, error)
	SetLastReminderSent(ctx context.Context, userID, packageType string, ts time.Time) error
}

// PgViewEventRepository implementa ViewEventRepository usando pgxpool.
type PgViewEventRepository struct {
	pool *pgxpool.Pool
}

func NewPgViewEventRepository(pool *pgxpool.Pool) *PgViewEventRepository {
	return &PgViewEventRepository{pool: pool}
}

func (r *PgViewEventRepository) Append(ctx context.Context, event domain.PackageViewEvent) error {
	const query = `
		INSERT INTO package_views (
			id, user_id, session_id, package_name, package_type,
			view_duration, page_url, view_count, viewed_at, last_reminder_sent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var userID, sessionID interface{}
	if event.UserID != "" {
		userID = event.UserID
	}
	if event.SessionID != "" {
		sessionID = event.SessionID
	}

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		userID,
		sessionID,
		event.PackageName,
		event.PackageType,
		event.ViewDuration,
		event.PageURL,
		event.Views(),
		event.ViewedAt,
		event.LastReminderSent,
	)
	return err
}

func (r *PgViewEventRepository) ListByUser(ctx context.Context, userID string) ([]domain.PackageViewEvent, error) {
	const query = `
		SELECT id, user_id, session_id, package_name, package_type,
			view_duration, page_url, view_count, viewed_at, last_reminder_sent
		FROM package_views
		WHERE user_id = $1
	`
	return r.list(ctx, query, userID)
}

func (r *PgViewEventRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.PackageViewEvent, error) {
	const query = `
		SELECT id, user_id, session_id, package_name, package_type,
			view_duration, page_url, view_count, viewed_at, last_reminder_sent
		FROM package_views
		WHERE session_id = $1
	`
	return r.list(ctx, query, sessionID)
}

func (r *PgViewEventRepository) SetLastReminderSent(ctx context.Context, userID, packageType string, ts time.Time) error {
	const query = `
		UPDATE package_views
		SET last_reminder_sent = $3
		WHERE user_id = $1 AND package_type = $2
	`
	_, err := r.pool.Exec(ctx, query, userID, packageType, ts)
	return err
}

func (r *PgViewEventRepository) list(ctx context.Context, query, arg string) ([]domain.PackageViewEvent, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.PackageViewEvent
	for rows.Next() {
		var (
			e         domain.PackageViewEvent
			userID    *string
			sessionID *string
		)
		err = rows.Scan(
			&e.ID,
			&userID,
			&sessionID,
			&e.PackageName,
			&e.PackageType,
			&e.ViewDuration,
			&e.PageURL,
			&e.ViewCount,
			&e.ViewedAt,
			&e.LastReminderSent,
		)
		if err != nil {
			return nil, err
		}
		if userID != nil {
			e.UserID = *userID
		}
		if sessionID != nil {
			e.SessionID = *sessionID
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

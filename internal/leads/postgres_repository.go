package leads

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores leads in the leads table created by the
// migrations under migrations/.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository wraps a pgx pool. A nil pool yields a nil repository,
// which callers treat as "no database configured".
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		return nil
	}
	return &PostgresRepository{db: db}
}

const insertLeadSQL = `
INSERT INTO leads (
	id, tenant, conversation_id, scenario, intent, phone, age, for_whom,
	interest, time_pref, rent_date, rent_time, format, people, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (r *PostgresRepository) Insert(ctx context.Context, lead Lead) error {
	if r == nil || r.db == nil {
		return ErrUnavailable
	}
	_, err := r.db.Exec(ctx, insertLeadSQL,
		lead.ID, lead.Tenant, lead.ConversationID, lead.Scenario, lead.Intent,
		lead.Phone, lead.Age, lead.ForWhom, lead.Interest, lead.TimePref,
		lead.RentDate, lead.RentTime, lead.Format, lead.People, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("leads: insert: %w", err)
	}
	return nil
}

const listLeadsSQL = `
SELECT id, tenant, conversation_id, scenario, intent, phone, age, for_whom,
       interest, time_pref, rent_date, rent_time, format, people, created_at
FROM leads
WHERE ($1 = '' OR tenant = $1)
ORDER BY created_at DESC
LIMIT $2`

func (r *PostgresRepository) List(ctx context.Context, tenant string, limit int) ([]Lead, error) {
	if r == nil || r.db == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, listLeadsSQL, tenant, limit)
	if err != nil {
		return nil, fmt.Errorf("leads: list: %w", err)
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(
			&l.ID, &l.Tenant, &l.ConversationID, &l.Scenario, &l.Intent,
			&l.Phone, &l.Age, &l.ForWhom, &l.Interest, &l.TimePref,
			&l.RentDate, &l.RentTime, &l.Format, &l.People, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list rows: %w", err)
	}
	return out, nil
}

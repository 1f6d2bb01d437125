package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore keeps each case as a JSONB payload next to the columns it is
// searched by.
type PostgresStore struct {
	db *sql.DB
}

var (
	_ ports.Repository = (*PostgresStore)(nil)
	_ ports.CaseWriter = (*PostgresStore)(nil)
)

// NewPostgres constructs a PostgreSQL-backed case store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// upsertQuery keeps the creation audit of an existing row, in its column and
// in the payload.
const upsertQuery = `
		INSERT INTO court_cases (
			id, tenant_id, filing_number, case_number, cnr_number, court_id, status,
			filing_date, litigant_ids, advocate_ids, payload, created_time, last_modified_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			tenant_id = EXCLUDED.tenant_id,
			filing_number = EXCLUDED.filing_number,
			case_number = EXCLUDED.case_number,
			cnr_number = EXCLUDED.cnr_number,
			court_id = EXCLUDED.court_id,
			status = EXCLUDED.status,
			filing_date = EXCLUDED.filing_date,
			litigant_ids = EXCLUDED.litigant_ids,
			advocate_ids = EXCLUDED.advocate_ids,
			payload = jsonb_set(
				jsonb_set(EXCLUDED.payload, '{auditDetails,createdBy}', COALESCE(
					court_cases.payload #> '{auditDetails,createdBy}',
					EXCLUDED.payload #> '{auditDetails,createdBy}',
					'null'::jsonb)),
				'{auditDetails,createdTime}', COALESCE(
					court_cases.payload #> '{auditDetails,createdTime}',
					EXCLUDED.payload #> '{auditDetails,createdTime}',
					'null'::jsonb)),
			last_modified_time = EXCLUDED.last_modified_time
	`

// Upsert writes the batch in one transaction.
func (s *PostgresStore) Upsert(ctx context.Context, cases []models.CourtCase) error {
	if len(cases) == 0 {
		return nil
	}
	if err := requireIDs(cases); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range cases {
		if err := upsertOne(ctx, tx, c); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

func upsertOne(ctx context.Context, db DBTX, c models.CourtCase) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal case %s: %w", c.ID, err)
	}
	_, err = db.ExecContext(ctx, upsertQuery,
		c.ID, c.TenantID, nullable(c.FilingNumber), nullable(c.CaseNumber), nullable(c.CNRNumber),
		nullable(c.CourtID), c.Status, c.FilingDate,
		pq.Array(litigantIDs(c)), pq.Array(advocateIDs(c)),
		payload, createdTime(c), lastModifiedTime(c),
	)
	if err != nil {
		return fmt.Errorf("upsert case %s: %w", c.ID, err)
	}
	return nil
}

// Search returns the cases matching criteria, newest first.
func (s *PostgresStore) Search(ctx context.Context, criteria models.CaseCriteria) ([]models.CourtCase, error) {
	query, args := buildSearch(criteria)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search cases: %w", err)
	}
	defer rows.Close()

	out := make([]models.CourtCase, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		var c models.CourtCase
		if err := json.Unmarshal(payload, &c); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}

// ExistsBatch answers each check with one EXISTS query. A check with no
// identifier is false without touching the database.
func (s *PostgresStore) ExistsBatch(ctx context.Context, checks []models.CaseExists) ([]models.CaseExists, error) {
	out := make([]models.CaseExists, len(checks))
	for i, check := range checks {
		check.Exists = false
		if !emptyCheck(check) {
			query, args := buildExists(check)
			if err := s.db.QueryRowContext(ctx, query, args...).Scan(&check.Exists); err != nil {
				return nil, fmt.Errorf("check case exists: %w", err)
			}
		}
		out[i] = check
	}
	return out, nil
}

type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func buildSearch(c models.CaseCriteria) (string, []any) {
	var w where
	if c.TenantID != "" {
		w.add("tenant_id = $%d", c.TenantID)
	}
	if c.CaseID != "" {
		w.add("id = $%d", c.CaseID)
	}
	if c.FilingNumber != "" {
		w.add("filing_number = $%d", c.FilingNumber)
	}
	if c.CNRNumber != "" {
		w.add("cnr_number = $%d", c.CNRNumber)
	}
	if c.CourtCaseNum != "" {
		w.add("case_number = $%d", c.CourtCaseNum)
	}
	if c.CourtID != "" {
		w.add("court_id = $%d", c.CourtID)
	}
	if c.Status != "" {
		w.add("status = $%d", c.Status)
	}
	if c.FilingFromDate > 0 {
		w.add("filing_date >= $%d", c.FilingFromDate)
	}
	if c.FilingToDate > 0 {
		w.add("filing_date <= $%d", c.FilingToDate)
	}
	if c.LitigantID != "" {
		w.add("$%d = ANY(litigant_ids)", c.LitigantID)
	}
	if c.AdvocateID != "" {
		w.add("$%d = ANY(advocate_ids)", c.AdvocateID)
	}

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args := append(w.args, limit, c.Offset)
	query := fmt.Sprintf("SELECT payload FROM court_cases%s ORDER BY created_time DESC, id LIMIT $%d OFFSET $%d",
		w.String(), len(args)-1, len(args))
	return query, args
}

func buildExists(e models.CaseExists) (string, []any) {
	var w where
	if e.CaseID != "" {
		w.add("id = $%d", e.CaseID)
	}
	if e.FilingNumber != "" {
		w.add("filing_number = $%d", e.FilingNumber)
	}
	if e.CNRNumber != "" {
		w.add("cnr_number = $%d", e.CNRNumber)
	}
	if e.CourtCaseNumber != "" {
		w.add("case_number = $%d", e.CourtCaseNumber)
	}
	return "SELECT EXISTS (SELECT 1 FROM court_cases" + w.String() + ")", w.args
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

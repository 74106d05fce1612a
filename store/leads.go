package store

import (
	"context"
	"database/sql"

	"lead-intake/errors"
	"lead-intake/models"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// LeadStore handles all lead-related database operations
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a new lead store instance
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

// FindByEmail returns the lead registered with the given email, matched
// case-insensitively. A NotFound error is returned when no record exists.
func (s *LeadStore) FindByEmail(ctx context.Context, email string) (*models.Lead, error) {
	query := `
		SELECT id, name, trade_name, cnpj, phone, note, identifier, email,
			email_validated, validation_key, user_type, created_at, validated_at
		FROM saas_client
		WHERE LOWER(email) = LOWER($1)`

	lead, err := scanLead(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.E(errors.NotFound, "lead not found")
		}
		return nil, errors.E(errors.Internal, "error querying lead by email", err)
	}

	return lead, nil
}

// Insert persists a new lead record and returns it with the assigned id.
// A Conflict error is returned when the email uniqueness constraint is
// violated, so callers can treat a lost duplicate-check race as a duplicate.
func (s *LeadStore) Insert(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	query := `
		INSERT INTO saas_client (
			name, trade_name, cnpj, phone, note, identifier, email,
			email_validated, validation_key, user_type, created_at, validated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := s.db.QueryRowContext(
		ctx,
		query,
		lead.Name,
		lead.TradeName,
		lead.CNPJ,
		lead.Phone,
		lead.Note,
		lead.Identifier,
		lead.Email,
		lead.EmailValidated,
		lead.ValidationKey,
		lead.UserType,
		lead.CreatedAt,
		lead.ValidatedAt,
	).Scan(&lead.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, errors.E(errors.Conflict, "lead already exists with this email", err)
		}
		return nil, errors.E(errors.Internal, "error inserting lead", err)
	}

	return lead, nil
}

// List returns all stored leads ordered by id.
func (s *LeadStore) List(ctx context.Context) ([]models.Lead, error) {
	query := `
		SELECT id, name, trade_name, cnpj, phone, note, identifier, email,
			email_validated, validation_key, user_type, created_at, validated_at
		FROM saas_client
		ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.E(errors.Internal, "error listing leads", err)
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, errors.E(errors.Internal, "error scanning lead", err)
		}
		leads = append(leads, *lead)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.E(errors.Internal, "error iterating leads", err)
	}

	return leads, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var lead models.Lead
	var note sql.NullString
	var validatedAt sql.NullTime

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.TradeName, &lead.CNPJ, &lead.Phone,
		&note, &lead.Identifier, &lead.Email, &lead.EmailValidated,
		&lead.ValidationKey, &lead.UserType, &lead.CreatedAt, &validatedAt,
	)
	if err != nil {
		return nil, err
	}

	if note.Valid {
		lead.Note = note.String
	}
	if validatedAt.Valid {
		lead.ValidatedAt = &validatedAt.Time
	}

	return &lead, nil
}

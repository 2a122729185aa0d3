package partner

import (
	"context"
	"database/sql"
	"strings"

	"github.com/campusnest/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type PartnerRepository interface {
	Upsert(ctx context.Context, req *model.PartnerAccountEntity) error
	Get(ctx context.Context, filter *model.PartnerFilter) (*model.PartnerAccountEntity, error)
	UpdatePassword(ctx context.Context, id, hashed string) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error
	UpdateDashboardRoute(ctx context.Context, id, route string) error
}

func NewPartnerRepository(conn *sqlx.DB) PartnerRepository {
	return &SQL{conn: conn}
}

const (
	// Email is the conflict key: a re-registration overwrites the mutable
	// columns (last write wins).
	upsertPartnerQuery = `INSERT INTO partner_accounts (id, full_name, email, phone, password, auth_provider, partner_type, dashboard_route, reference_table, reference_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE phone = VALUES(phone), password = VALUES(password), partner_type = VALUES(partner_type), dashboard_route = VALUES(dashboard_route), reference_table = VALUES(reference_table), reference_id = VALUES(reference_id)`
	getPartnerBase = `SELECT id, full_name, email, phone, password, auth_provider, partner_type, dashboard_route, reference_table, reference_id, created_at FROM partner_accounts WHERE true`
)

func (s *SQL) Upsert(ctx context.Context, data *model.PartnerAccountEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertPartnerQuery,
		data.ID, data.FullName, strings.ToLower(data.Email), data.Phone, data.Password,
		data.AuthProvider, data.PartnerType, data.DashboardRoute, data.ReferenceTable, data.ReferenceID)
	return err
}

func (s *SQL) Get(ctx context.Context, filter *model.PartnerFilter) (*model.PartnerAccountEntity, error) {
	query := getPartnerBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, strings.ToLower(filter.Email))
	}
	if filter.Identifier != "" {
		query += " AND (email = ? OR phone = ?)"
		args = append(args, strings.ToLower(filter.Identifier), filter.Identifier)
	}

	var entity model.PartnerAccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdatePassword(ctx context.Context, id, hashed string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE partner_accounts SET password = ? WHERE id = ?", hashed, id)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error {
	_, err := tx.ExecContext(ctx, "UPDATE partner_accounts SET password = ? WHERE id = ?", hashed, id)
	return err
}

func (s *SQL) UpdateDashboardRoute(ctx context.Context, id, route string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE partner_accounts SET dashboard_route = ? WHERE id = ?", route, id)
	return err
}

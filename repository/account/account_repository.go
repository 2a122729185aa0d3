package account

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

type AccountRepository interface {
	Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	Update(ctx context.Context, id string, update *model.AccountUpdate) error
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO user_account (id, name, email, phone, password, city, user_type, is_employed, organization, identity_code, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getAccountBase     = `SELECT id, name, email, phone, password, city, user_type, is_employed, organization, identity_code, status, created_at FROM user_account WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.ID, data.Name, strings.ToLower(data.Email), data.Phone, data.Password,
		data.City, data.UserType, data.IsEmployed, data.Organization, data.IdentityCode, data.Status)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 3)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, strings.ToLower(filter.Email))
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.Identifier != "" {
		query += " AND (email = ? OR phone = ?)"
		ident := strings.ToLower(filter.Identifier)
		args = append(args, ident, filter.Identifier)
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, id string, update *model.AccountUpdate) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.City != nil {
		sets = append(sets, "city = ?")
		args = append(args, *update.City)
	}
	if update.Organization != nil {
		sets = append(sets, "organization = ?")
		args = append(args, *update.Organization)
	}
	if update.IdentityCode != nil {
		sets = append(sets, "identity_code = ?")
		args = append(args, *update.IdentityCode)
	}
	if update.Password != nil {
		sets = append(sets, "password = ?")
		args = append(args, *update.Password)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE user_account SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

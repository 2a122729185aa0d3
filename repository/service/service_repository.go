package service

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

type ServiceRepository interface {
	Create(ctx context.Context, req *model.ServiceEntity) (*model.ServiceEntity, error)
	GetByID(ctx context.Context, id string) (*model.ServiceEntity, error)
	GetByEmail(ctx context.Context, email string) (*model.ServiceEntity, error)
	ListByEmail(ctx context.Context, email string) ([]model.ServiceEntity, error)
	Update(ctx context.Context, req *model.UpdateServiceRequest, plans model.PricingPlans) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error
	UpdatePasswordByEmail(ctx context.Context, email, hashed string) error
}

func NewServiceRepository(conn *sqlx.DB) ServiceRepository {
	return &SQL{conn: conn}
}

const (
	insertServiceQuery = `INSERT INTO services (id, owner_name, email, phone, password, business_name, location, category, partner_type, plans, catalog, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getServiceBase     = `SELECT id, owner_name, email, phone, password, business_name, location, category, partner_type, plans, catalog, created_at FROM services`
)

func (s *SQL) Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertServiceQuery,
		data.ID, data.OwnerName, strings.ToLower(data.Email), data.Phone, data.Password,
		data.BusinessName, data.Location, data.Category, data.PartnerType, data.Plans, data.Catalog)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.ServiceEntity, error) {
	return s.getOne(ctx, getServiceBase+" WHERE id = ?", id)
}

func (s *SQL) GetByEmail(ctx context.Context, email string) (*model.ServiceEntity, error) {
	return s.getOne(ctx, getServiceBase+" WHERE email = ?", strings.ToLower(email))
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.ServiceEntity, error) {
	var entity model.ServiceEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByEmail(ctx context.Context, email string) ([]model.ServiceEntity, error) {
	var list []model.ServiceEntity
	err := s.conn.SelectContext(ctx, &list, getServiceBase+" WHERE email = ?", strings.ToLower(email))
	return list, err
}

func (s *SQL) Update(ctx context.Context, req *model.UpdateServiceRequest, plans model.PricingPlans) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if req.BusinessName != nil {
		sets = append(sets, "business_name = ?")
		args = append(args, *req.BusinessName)
	}
	if req.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *req.Location)
	}
	if plans != nil {
		sets = append(sets, "plans = ?")
		args = append(args, plans)
	}
	if req.Catalog != nil {
		sets = append(sets, "catalog = ?")
		args = append(args, *req.Catalog)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE services SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, req.ID)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error {
	_, err := tx.ExecContext(ctx, "UPDATE services SET password = ? WHERE id = ?", hashed, id)
	return err
}

func (s *SQL) UpdatePasswordByEmail(ctx context.Context, email, hashed string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE services SET password = ? WHERE email = ?", hashed, strings.ToLower(email))
	return err
}

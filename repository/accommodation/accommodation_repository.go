package accommodation

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

type AccommodationRepository interface {
	Create(ctx context.Context, req *model.AccommodationEntity) (*model.AccommodationEntity, error)
	GetByID(ctx context.Context, id string) (*model.AccommodationEntity, error)
	GetByIdentifier(ctx context.Context, identifier string) (*model.AccommodationEntity, error)
	ListByEmail(ctx context.Context, email string) ([]model.AccommodationEntity, error)
	ListAll(ctx context.Context) ([]model.AccommodationEntity, error)
	Update(ctx context.Context, req *model.UpdateAccommodationRequest, pricing model.PricingMap, amenities model.AmenityMatrix) error
	UpdateImages(ctx context.Context, id string, images model.StringList) error
	UpdateRules(ctx context.Context, id string, rules model.JSONMap) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error
	UpdatePasswordByEmail(ctx context.Context, email, hashed string) error
}

func NewAccommodationRepository(conn *sqlx.DB) AccommodationRepository {
	return &SQL{conn: conn}
}

const (
	insertAccommodationQuery = `INSERT INTO accommodation_services (id, owner_name, email, phone, password, property_name, location, rooms, gender_policy, pricing, amenities, rules, images, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getAccommodationBase     = `SELECT id, owner_name, email, phone, password, property_name, location, rooms, gender_policy, pricing, amenities, rules, images, created_at FROM accommodation_services`
)

func (s *SQL) Create(ctx context.Context, data *model.AccommodationEntity) (*model.AccommodationEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertAccommodationQuery,
		data.ID, data.OwnerName, strings.ToLower(data.Email), data.Phone, data.Password,
		data.PropertyName, data.Location, data.Rooms, data.GenderPolicy,
		data.Pricing, data.Amenities, data.Rules, data.Images)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.AccommodationEntity, error) {
	return s.getOne(ctx, getAccommodationBase+" WHERE id = ?", id)
}

func (s *SQL) GetByIdentifier(ctx context.Context, identifier string) (*model.AccommodationEntity, error) {
	return s.getOne(ctx, getAccommodationBase+" WHERE email = ? OR phone = ?", strings.ToLower(identifier), identifier)
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.AccommodationEntity, error) {
	var entity model.AccommodationEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByEmail(ctx context.Context, email string) ([]model.AccommodationEntity, error) {
	var list []model.AccommodationEntity
	err := s.conn.SelectContext(ctx, &list, getAccommodationBase+" WHERE email = ?", strings.ToLower(email))
	return list, err
}

func (s *SQL) ListAll(ctx context.Context) ([]model.AccommodationEntity, error) {
	var list []model.AccommodationEntity
	err := s.conn.SelectContext(ctx, &list, getAccommodationBase+" ORDER BY created_at DESC")
	return list, err
}

func (s *SQL) Update(ctx context.Context, req *model.UpdateAccommodationRequest, pricing model.PricingMap, amenities model.AmenityMatrix) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if req.PropertyName != nil {
		sets = append(sets, "property_name = ?")
		args = append(args, *req.PropertyName)
	}
	if req.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *req.Location)
	}
	if req.Rooms != nil {
		sets = append(sets, "rooms = ?")
		args = append(args, *req.Rooms)
	}
	if req.GenderPolicy != nil {
		sets = append(sets, "gender_policy = ?")
		args = append(args, *req.GenderPolicy)
	}
	if pricing != nil {
		sets = append(sets, "pricing = ?")
		args = append(args, pricing)
	}
	if amenities != nil {
		sets = append(sets, "amenities = ?")
		args = append(args, amenities)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE accommodation_services SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, req.ID)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) UpdateImages(ctx context.Context, id string, images model.StringList) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE accommodation_services SET images = ? WHERE id = ?", images, id)
	return err
}

func (s *SQL) UpdateRules(ctx context.Context, id string, rules model.JSONMap) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE accommodation_services SET rules = ? WHERE id = ?", rules, id)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, hashed string) error {
	_, err := tx.ExecContext(ctx, "UPDATE accommodation_services SET password = ? WHERE id = ?", hashed, id)
	return err
}

func (s *SQL) UpdatePasswordByEmail(ctx context.Context, email, hashed string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE accommodation_services SET password = ? WHERE email = ?", hashed, strings.ToLower(email))
	return err
}

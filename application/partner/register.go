package partner

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/repository/dberr"
	"github.com/campusnest/backend/thirdparty/rabbitmq"
	"github.com/campusnest/backend/utils/errors"
	"github.com/campusnest/backend/utils/idgen"
	"github.com/campusnest/backend/utils/logger"
	"github.com/campusnest/backend/utils/password"
	"go.uber.org/zap"
)

// RegisterAccommodation persists the legacy listing row, then creates or
// overwrites the unifying partner account referencing it. The two inserts
// are separate statements; a crash between them leaves an orphaned listing,
// which login still resolves via the accommodation stage.
func (s *PartnerAppImpl) RegisterAccommodation(ctx context.Context, req *model.RegisterAccommodationRequest) (*model.PartnerProfile, error) {
	pricing, err := buildPricingMap(req.RoomTypes)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("[RegisterAccommodation] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.AccommodationEntity{
		ID:           idgen.Generate(req.OwnerName, time.Now()),
		OwnerName:    req.OwnerName,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		Password:     hashed,
		PropertyName: req.PropertyName,
		Location:     req.Location,
		Rooms:        req.Rooms,
		GenderPolicy: req.GenderPolicy,
		Pricing:      pricing,
		Amenities:    buildAmenityMatrix(req.Amenities),
		Rules:        req.Rules,
		Images:       model.StringList(req.Images),
	}

	entity, err = s.accommodationRepo.Create(ctx, entity)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		}
		logger.Error("[RegisterAccommodation] err accommodationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.upsertPartnerAccount(ctx, entity.ID, entity.OwnerName, entity.Email, entity.Phone,
		hashed, constant.PartnerTypeAccommodation, constant.ReferenceAccommodation)
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventPartnerRegistered, entity.ID, entity.Email, entity.OwnerName)
	return profile, nil
}

// RegisterService is the generic-service counterpart: normalize the raw
// partner type into the category vocabulary, validate the catalog variant
// against it, persist, then upsert the partner account.
func (s *PartnerAppImpl) RegisterService(ctx context.Context, req *model.RegisterServiceRequest) (*model.PartnerProfile, error) {
	category := NormalizeCategory(req.Category, req.PartnerType)

	catalog := req.Catalog
	catalog.Category = category
	if err := catalog.Validate(); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("[RegisterService] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.ServiceEntity{
		ID:           idgen.Generate(req.OwnerName, time.Now()),
		OwnerName:    req.OwnerName,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		Password:     hashed,
		BusinessName: req.BusinessName,
		Location:     req.Location,
		Category:     category,
		PartnerType:  req.PartnerType,
		Plans:        model.PricingPlans(req.Plans),
		Catalog:      catalog,
	}

	entity, err = s.serviceRepo.Create(ctx, entity)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		}
		logger.Error("[RegisterService] err serviceRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, err := s.upsertPartnerAccount(ctx, entity.ID, entity.OwnerName, entity.Email, entity.Phone,
		hashed, category, constant.ReferenceServices)
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventPartnerRegistered, entity.ID, entity.Email, entity.OwnerName)
	return profile, nil
}

func (s *PartnerAppImpl) upsertPartnerAccount(ctx context.Context, id, fullName, email, phone, hashed, partnerType, referenceTable string) (*model.PartnerProfile, error) {
	route := DashboardRouteFor(partnerType)

	account := &model.PartnerAccountEntity{
		ID:             id,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		Password:       hashed,
		AuthProvider:   constant.AuthProviderLocal,
		PartnerType:    partnerType,
		DashboardRoute: route,
		ReferenceTable: referenceTable,
		ReferenceID:    id,
	}
	if err := s.partnerRepo.Upsert(ctx, account); err != nil {
		logger.Error("[upsertPartnerAccount] err partnerRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PartnerProfile{
		ID:             id,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		UserType:       "partner",
		PartnerType:    partnerType,
		DashboardRoute: route,
	}, nil
}

// buildPricingMap folds the room-type list into the persisted pricing map,
// coercing string rent/deposit inputs to numbers.
func buildPricingMap(roomTypes []model.RoomTypeInput) (model.PricingMap, error) {
	if len(roomTypes) == 0 {
		return model.PricingMap{}, nil
	}
	pricing := make(model.PricingMap, len(roomTypes))
	for _, rt := range roomTypes {
		rent, err := strconv.ParseFloat(strings.TrimSpace(rt.Rent), 64)
		if err != nil {
			return nil, err
		}
		deposit, err := strconv.ParseFloat(strings.TrimSpace(rt.Deposit), 64)
		if err != nil {
			return nil, err
		}
		pricing[rt.Type] = model.RoomPricing{Rent: rent, Deposit: deposit}
	}
	return pricing, nil
}

// buildAmenityMatrix expands the selected-amenities list into the full
// fixed-vocabulary boolean matrix. Unknown amenities are dropped.
func buildAmenityMatrix(selected []string) model.AmenityMatrix {
	chosen := make(map[string]bool, len(selected))
	for _, amenity := range selected {
		chosen[strings.ToLower(strings.TrimSpace(amenity))] = true
	}

	matrix := make(model.AmenityMatrix, len(constant.AmenityVocabulary))
	for category, amenities := range constant.AmenityVocabulary {
		row := make(map[string]bool, len(amenities))
		for _, amenity := range amenities {
			row[amenity] = chosen[amenity]
		}
		matrix[category] = row
	}
	return matrix
}

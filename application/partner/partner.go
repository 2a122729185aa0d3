package partner

import (
	"context"

	"github.com/campusnest/backend/cmd/config"
	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	accommodationrepo "github.com/campusnest/backend/repository/accommodation"
	partnerrepo "github.com/campusnest/backend/repository/partner"
	servicerepo "github.com/campusnest/backend/repository/service"
	"github.com/campusnest/backend/repository/token"
	txrepo "github.com/campusnest/backend/repository/tx"
	"github.com/campusnest/backend/thirdparty/mailer"
	"github.com/campusnest/backend/thirdparty/rabbitmq"
	"github.com/campusnest/backend/utils/errors"
	"github.com/campusnest/backend/utils/logger"
	"go.uber.org/zap"
)

type PartnerApp interface {
	Login(ctx context.Context, req *model.PartnerLoginRequest) (*model.PartnerLoginResponse, error)
	RegisterAccommodation(ctx context.Context, req *model.RegisterAccommodationRequest) (*model.PartnerProfile, error)
	RegisterService(ctx context.Context, req *model.RegisterServiceRequest) (*model.PartnerProfile, error)
	ListAccommodations(ctx context.Context, email string) ([]model.AccommodationEntity, error)
	ListServices(ctx context.Context, email string) ([]model.ServiceEntity, error)
	ListAllAccommodations(ctx context.Context) ([]model.AccommodationEntity, error)
	UpdateAccommodation(ctx context.Context, req *model.UpdateAccommodationRequest) error
	UpdateService(ctx context.Context, req *model.UpdateServiceRequest) error
	UpdatePhotos(ctx context.Context, req *model.UpdatePhotosRequest) error
	UpdateRules(ctx context.Context, req *model.UpdateRulesRequest) error
	SendOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, tokenStr, newPassword string) error
}

type PartnerAppImpl struct {
	config            *config.Config
	partnerRepo       partnerrepo.PartnerRepository
	accommodationRepo accommodationrepo.AccommodationRepository
	serviceRepo       servicerepo.ServiceRepository
	txRepo            txrepo.TxRepository
	tokens            token.Store
	mail              mailer.Mailer
	publisher         *rabbitmq.Publisher
	resolvers         []identityResolver
}

func NewPartnerApp(
	config *config.Config,
	partnerRepo partnerrepo.PartnerRepository,
	accommodationRepo accommodationrepo.AccommodationRepository,
	serviceRepo servicerepo.ServiceRepository,
	txRepo txrepo.TxRepository,
	tokens token.Store,
	mail mailer.Mailer,
	publisher *rabbitmq.Publisher,
) PartnerApp {
	return &PartnerAppImpl{
		config:            config,
		partnerRepo:       partnerRepo,
		accommodationRepo: accommodationRepo,
		serviceRepo:       serviceRepo,
		txRepo:            txRepo,
		tokens:            tokens,
		mail:              mail,
		publisher:         publisher,
		// Resolution priority: accommodation table, unified partner
		// accounts, then the services table.
		resolvers: []identityResolver{
			&accommodationResolver{repo: accommodationRepo},
			&partnerAccountResolver{
				partnerRepo:       partnerRepo,
				accommodationRepo: accommodationRepo,
				serviceRepo:       serviceRepo,
			},
			&serviceResolver{repo: serviceRepo},
		},
	}
}

// Login tries each resolver in priority order. No-match and wrong-password
// both come back as invalid credentials; callers cannot tell them apart.
func (s *PartnerAppImpl) Login(ctx context.Context, req *model.PartnerLoginRequest) (*model.PartnerLoginResponse, error) {
	var profile *model.PartnerProfile
	for _, resolver := range s.resolvers {
		p, err := resolver.resolve(ctx, req.Identifier, req.Password)
		if err != nil {
			logger.Error("[PartnerLogin] resolver failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if p != nil {
			profile = p
			break
		}
	}
	if profile == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	accommodations, err := s.accommodationRepo.ListByEmail(ctx, profile.Email)
	if err != nil {
		logger.Error("[PartnerLogin] err ListByEmail accommodations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	services, err := s.serviceRepo.ListByEmail(ctx, profile.Email)
	if err != nil {
		logger.Error("[PartnerLogin] err ListByEmail services", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PartnerLoginResponse{
		PartnerProfile: *profile,
		Accommodations: accommodations,
		Services:       services,
	}, nil
}

func (s *PartnerAppImpl) ListAccommodations(ctx context.Context, email string) ([]model.AccommodationEntity, error) {
	list, err := s.accommodationRepo.ListByEmail(ctx, email)
	if err != nil {
		logger.Error("[ListAccommodations] err ListByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *PartnerAppImpl) ListServices(ctx context.Context, email string) ([]model.ServiceEntity, error) {
	list, err := s.serviceRepo.ListByEmail(ctx, email)
	if err != nil {
		logger.Error("[ListServices] err ListByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *PartnerAppImpl) ListAllAccommodations(ctx context.Context) ([]model.AccommodationEntity, error) {
	list, err := s.accommodationRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListAllAccommodations] err ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *PartnerAppImpl) UpdateAccommodation(ctx context.Context, req *model.UpdateAccommodationRequest) error {
	listing, err := s.accommodationRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[UpdateAccommodation] err GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	var pricing model.PricingMap
	if len(req.RoomTypes) > 0 {
		pricing, err = buildPricingMap(req.RoomTypes)
		if err != nil {
			return errors.SetCustomError(constant.ErrValidation)
		}
	}
	var amenities model.AmenityMatrix
	if len(req.Amenities) > 0 {
		amenities = buildAmenityMatrix(req.Amenities)
	}

	if err := s.accommodationRepo.Update(ctx, req, pricing, amenities); err != nil {
		logger.Error("[UpdateAccommodation] err Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *PartnerAppImpl) UpdateService(ctx context.Context, req *model.UpdateServiceRequest) error {
	svc, err := s.serviceRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[UpdateService] err GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if svc == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Catalog != nil {
		if err := req.Catalog.Validate(); err != nil {
			return errors.SetCustomError(constant.ErrValidation)
		}
	}

	var plans model.PricingPlans
	if len(req.Plans) > 0 {
		plans = model.PricingPlans(req.Plans)
	}

	if err := s.serviceRepo.Update(ctx, req, plans); err != nil {
		logger.Error("[UpdateService] err Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *PartnerAppImpl) UpdatePhotos(ctx context.Context, req *model.UpdatePhotosRequest) error {
	listing, err := s.accommodationRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[UpdatePhotos] err GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.accommodationRepo.UpdateImages(ctx, req.ID, model.StringList(req.Images)); err != nil {
		logger.Error("[UpdatePhotos] err UpdateImages", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *PartnerAppImpl) UpdateRules(ctx context.Context, req *model.UpdateRulesRequest) error {
	listing, err := s.accommodationRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Error("[UpdateRules] err GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.accommodationRepo.UpdateRules(ctx, req.ID, req.Rules); err != nil {
		logger.Error("[UpdateRules] err UpdateRules", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *PartnerAppImpl) publishEvent(event, id, email, name string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishAccountEvent(rabbitmq.AccountEventMessage{
		Event:     event,
		AccountID: id,
		Email:     email,
		Name:      name,
	})
	if err != nil {
		logger.Warn("[publishEvent] publish failed", zap.String("event", event), zap.String("error", err.Error()))
	}
}

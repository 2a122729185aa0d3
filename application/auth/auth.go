package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusnest/backend/cmd/config"
	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	accountrepo "github.com/campusnest/backend/repository/account"
	accommodationrepo "github.com/campusnest/backend/repository/accommodation"
	"github.com/campusnest/backend/repository/dberr"
	partnerrepo "github.com/campusnest/backend/repository/partner"
	servicerepo "github.com/campusnest/backend/repository/service"
	"github.com/campusnest/backend/repository/token"
	txrepo "github.com/campusnest/backend/repository/tx"
	googleauth "github.com/campusnest/backend/thirdparty/google"
	"github.com/campusnest/backend/thirdparty/mailer"
	"github.com/campusnest/backend/thirdparty/rabbitmq"
	"github.com/campusnest/backend/thirdparty/sms"
	"github.com/campusnest/backend/utils/errors"
	"github.com/campusnest/backend/utils/idgen"
	"github.com/campusnest/backend/utils/logger"
	"github.com/campusnest/backend/utils/password"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserProfile, error)
	GoogleAuth(ctx context.Context, req *model.GoogleAuthRequest) (*model.UserProfile, error)
	GetProfile(ctx context.Context, id string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, req *model.UpdateProfileRequest) (*model.UserProfile, error)
	IssueOtp(ctx context.Context, identifier string, kind constant.ChallengeKind) error
	VerifyOtp(ctx context.Context, identifier, code string) (string, error)
	ResetPassword(ctx context.Context, tokenStr, newPassword string) error
}

type AuthAppImpl struct {
	config            *config.Config
	accountRepo       accountrepo.AccountRepository
	partnerRepo       partnerrepo.PartnerRepository
	accommodationRepo accommodationrepo.AccommodationRepository
	serviceRepo       servicerepo.ServiceRepository
	txRepo            txrepo.TxRepository
	tokens            token.Store
	mail              mailer.Mailer
	sms               sms.Sender
	google            googleauth.Verifier
	publisher         *rabbitmq.Publisher
}

func NewAuthApp(
	config *config.Config,
	accountRepo accountrepo.AccountRepository,
	partnerRepo partnerrepo.PartnerRepository,
	accommodationRepo accommodationrepo.AccommodationRepository,
	serviceRepo servicerepo.ServiceRepository,
	txRepo txrepo.TxRepository,
	tokens token.Store,
	mail mailer.Mailer,
	smsSender sms.Sender,
	google googleauth.Verifier,
	publisher *rabbitmq.Publisher,
) AuthApp {
	return &AuthAppImpl{
		config:            config,
		accountRepo:       accountRepo,
		partnerRepo:       partnerRepo,
		accommodationRepo: accommodationRepo,
		serviceRepo:       serviceRepo,
		txRepo:            txRepo,
		tokens:            tokens,
		mail:              mail,
		sms:               smsSender,
		google:            google,
		publisher:         publisher,
	}
}

func (s *AuthAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	email := strings.ToLower(req.Email)

	kind, err := parseAccountKind(req.UserType)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: email})
	if err != nil {
		logger.Error("[Signup] err accountRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("[Signup] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.AccountEntity{
		ID:       idgen.Generate(req.Name, time.Now()),
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Password: hashed,
		City:     req.City,
		UserType: kind,
		Status:   constant.AccountStatusActive,
	}

	// The organization/identity-code columns are shared between the two
	// kinds, mutually exclusive by employment flag.
	if kind == constant.AccountKindProfessional {
		entity.IsEmployed = true
		entity.Organization = req.Company
		entity.IdentityCode = req.EmployeeID
	} else {
		entity.Organization = req.University
		entity.IdentityCode = req.StudentID
	}

	entity, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		}
		logger.Error("[Signup] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishEvent(rabbitmq.EventUserRegistered, entity.ID, entity.Email, entity.Name)

	return &model.SignupResponse{
		ID:       entity.ID,
		Name:     entity.Name,
		Email:    entity.Email,
		UserType: entity.UserType,
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.UserProfile, error) {
	account, err := s.findByIdentifier(ctx, req.Identifier)
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if !password.Verify(account.Password, req.Password) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	return profileOf(account), nil
}

func (s *AuthAppImpl) GoogleAuth(ctx context.Context, req *model.GoogleAuthRequest) (*model.UserProfile, error) {
	var (
		identity *model.GoogleIdentity
		err      error
	)
	switch {
	case req.IDToken != "":
		identity, err = s.google.VerifyIDToken(ctx, req.IDToken)
	case req.AccessToken != "":
		identity, err = s.google.FetchUserinfo(ctx, req.AccessToken)
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Warn("[GoogleAuth] token verification failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	email := strings.ToLower(identity.Email)
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: email})
	if err != nil {
		logger.Error("[GoogleAuth] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account != nil {
		return profileOf(account), nil
	}

	account, err = s.provisionGoogleAccount(ctx, identity, email)
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventUserRegistered, account.ID, account.Email, account.Name)

	return profileOf(account), nil
}

// provisionGoogleAccount auto-creates an account for a first federated
// login. The placeholder phone can collide with an existing unique phone;
// one retry regenerates it from the monotonic clock.
func (s *AuthAppImpl) provisionGoogleAccount(ctx context.Context, identity *model.GoogleIdentity, email string) (*model.AccountEntity, error) {
	marker, err := password.Hash(uuid.NewString())
	if err != nil {
		logger.Error("[GoogleAuth] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.AccountEntity{
		ID:       idgen.Generate(identity.Name, time.Now()),
		Name:     identity.Name,
		Email:    email,
		Phone:    placeholderPhone(time.Now().Unix()),
		Password: marker,
		UserType: constant.AccountKindStudent,
		Status:   constant.AccountStatusActive,
	}

	created, err := s.accountRepo.Create(ctx, entity)
	if err == nil {
		return created, nil
	}
	if !dberr.IsDuplicate(err) {
		logger.Error("[GoogleAuth] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity.Phone = placeholderPhone(time.Now().UnixNano())
	created, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		}
		logger.Error("[GoogleAuth] err accountRepo.Create retry", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *AuthAppImpl) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: id})
	if err != nil {
		logger.Error("[GetProfile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return profileOf(account), nil
}

func (s *AuthAppImpl) UpdateProfile(ctx context.Context, id string, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateProfile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	update := &model.AccountUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		City:         req.City,
		Organization: req.Organization,
		IdentityCode: req.IdentityCode,
	}
	if err := s.accountRepo.Update(ctx, id, update); err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrAlreadyRegistered)
		}
		logger.Error("[UpdateProfile] err accountRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	account, err = s.accountRepo.Get(ctx, &model.AccountFilter{ID: id})
	if err != nil || account == nil {
		logger.Error("[UpdateProfile] err re-read account", zap.String("id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return profileOf(account), nil
}

func (s *AuthAppImpl) findByIdentifier(ctx context.Context, identifier string) (*model.AccountEntity, error) {
	filter := &model.AccountFilter{}
	if isEmail(identifier) {
		filter.Email = strings.ToLower(identifier)
	} else {
		filter.Phone = identifier
	}
	return s.accountRepo.Get(ctx, filter)
}

func (s *AuthAppImpl) publishEvent(event, id, email, name string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishAccountEvent(rabbitmq.AccountEventMessage{
		Event:      event,
		AccountID:  id,
		Email:      email,
		Name:       name,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.Warn("[publishEvent] publish failed", zap.String("event", event), zap.String("error", err.Error()))
	}
}

func profileOf(account *model.AccountEntity) *model.UserProfile {
	return &model.UserProfile{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		Phone:        account.Phone,
		City:         account.City,
		UserType:     account.UserType,
		IsEmployed:   account.IsEmployed,
		Organization: account.Organization,
		IdentityCode: account.IdentityCode,
	}
}

func parseAccountKind(raw string) (constant.AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(constant.AccountKindStudent):
		return constant.AccountKindStudent, nil
	case string(constant.AccountKindProfessional):
		return constant.AccountKindProfessional, nil
	default:
		return "", fmt.Errorf("unknown account kind %q", raw)
	}
}

func placeholderPhone(seed int64) string {
	return fmt.Sprintf("99%08d", seed%100000000)
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}

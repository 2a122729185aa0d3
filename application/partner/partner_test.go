package partner_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	apppartner "github.com/campusnest/backend/application/partner"
	"github.com/campusnest/backend/cmd/config"
	"github.com/campusnest/backend/constant"
	accommock "github.com/campusnest/backend/mocks/repository/accommodation"
	partnermocks "github.com/campusnest/backend/mocks/repository/partner"
	servicemocks "github.com/campusnest/backend/mocks/repository/service"
	txmocks "github.com/campusnest/backend/mocks/repository/tx"
	mailermocks "github.com/campusnest/backend/mocks/thirdparty/mailer"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/repository/token"
	cerr "github.com/campusnest/backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type partnerFields struct {
	config            *config.Config
	partnerRepo       *partnermocks.PartnerRepository
	accommodationRepo *accommock.AccommodationRepository
	serviceRepo       *servicemocks.ServiceRepository
	txRepo            *txmocks.TxRepository
	tokens            *token.MemoryStore
	mail              *mailermocks.Mailer
}

func newPartnerFields(t *testing.T) partnerFields {
	return partnerFields{
		config: &config.Config{
			Auth: config.AuthConfig{
				OtpTTL:        10 * time.Minute,
				ResetTokenTTL: 15 * time.Minute,
			},
		},
		partnerRepo:       partnermocks.NewPartnerRepository(t),
		accommodationRepo: accommock.NewAccommodationRepository(t),
		serviceRepo:       servicemocks.NewServiceRepository(t),
		txRepo:            txmocks.NewTxRepository(t),
		tokens:            token.NewMemoryStore(),
		mail:              mailermocks.NewMailer(t),
	}
}

func newPartnerApp(f partnerFields) apppartner.PartnerApp {
	return apppartner.NewPartnerApp(
		f.config,
		f.partnerRepo,
		f.accommodationRepo,
		f.serviceRepo,
		f.txRepo,
		f.tokens,
		f.mail,
		nil,
	)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestPartnerApp_Login(t *testing.T) {
	hashed := mustHash(t, "password123")

	tests := []struct {
		name      string
		req       *model.PartnerLoginRequest
		mockCall  func(f partnerFields)
		wantRoute string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: accommodation table resolves first",
			req:  &model.PartnerLoginRequest{Identifier: "owner@example.com", Password: "password123"},
			mockCall: func(f partnerFields) {
				f.accommodationRepo.
					On("GetByIdentifier", mock.Anything, "owner@example.com").
					Return(&model.AccommodationEntity{
						ID:        "OX090520250703",
						OwnerName: "Owner",
						Email:     "owner@example.com",
						Password:  hashed,
					}, nil).
					Once()
				f.accommodationRepo.
					On("ListByEmail", mock.Anything, "owner@example.com").
					Return([]model.AccommodationEntity{{ID: "OX090520250703"}}, nil).
					Once()
				f.serviceRepo.
					On("ListByEmail", mock.Anything, "owner@example.com").
					Return(nil, nil).
					Once()
			},
			wantRoute: "/dashboard/accommodation",
		},
		{
			name: "success: unified account recomputes stale route",
			req:  &model.PartnerLoginRequest{Identifier: "svc@example.com", Password: "password123"},
			mockCall: func(f partnerFields) {
				f.accommodationRepo.
					On("GetByIdentifier", mock.Anything, "svc@example.com").
					Return(nil, nil).
					Once()
				f.partnerRepo.
					On("Get", mock.Anything, &model.PartnerFilter{Identifier: "svc@example.com"}).
					Return(&model.PartnerAccountEntity{
						ID:             "SV090520250703",
						FullName:       "Svc Owner",
						Email:          "svc@example.com",
						Password:       hashed,
						PartnerType:    constant.CategoryFood,
						DashboardRoute: "food",
						ReferenceTable: constant.ReferenceServices,
						ReferenceID:    "SV090520250703",
					}, nil).
					Once()
				f.serviceRepo.
					On("GetByID", mock.Anything, "SV090520250703").
					Return(&model.ServiceEntity{ID: "SV090520250703", OwnerName: "Svc Owner"}, nil).
					Once()
				f.accommodationRepo.
					On("ListByEmail", mock.Anything, "svc@example.com").
					Return(nil, nil).
					Once()
				f.serviceRepo.
					On("ListByEmail", mock.Anything, "svc@example.com").
					Return([]model.ServiceEntity{{ID: "SV090520250703"}}, nil).
					Once()
			},
			wantRoute: "/dashboard/food",
		},
		{
			name: "success: services table is the final fallback",
			req:  &model.PartnerLoginRequest{Identifier: "tiffin@example.com", Password: "password123"},
			mockCall: func(f partnerFields) {
				f.accommodationRepo.
					On("GetByIdentifier", mock.Anything, "tiffin@example.com").
					Return(nil, nil).
					Once()
				f.partnerRepo.
					On("Get", mock.Anything, &model.PartnerFilter{Identifier: "tiffin@example.com"}).
					Return(nil, nil).
					Once()
				f.serviceRepo.
					On("GetByEmail", mock.Anything, "tiffin@example.com").
					Return(&model.ServiceEntity{
						ID:          "TF090520250703",
						OwnerName:   "Tiffin Owner",
						Email:       "tiffin@example.com",
						Password:    hashed,
						Category:    constant.CategoryFood,
						PartnerType: "Tiffin Service",
					}, nil).
					Once()
				f.accommodationRepo.
					On("ListByEmail", mock.Anything, "tiffin@example.com").
					Return(nil, nil).
					Once()
				f.serviceRepo.
					On("ListByEmail", mock.Anything, "tiffin@example.com").
					Return([]model.ServiceEntity{{ID: "TF090520250703"}}, nil).
					Once()
			},
			wantRoute: "/dashboard/food",
		},
		{
			name: "error: unknown identifier collapses to invalid credentials",
			req:  &model.PartnerLoginRequest{Identifier: "nobody@example.com", Password: "password123"},
			mockCall: func(f partnerFields) {
				f.accommodationRepo.
					On("GetByIdentifier", mock.Anything, "nobody@example.com").
					Return(nil, nil).
					Once()
				f.partnerRepo.
					On("Get", mock.Anything, &model.PartnerFilter{Identifier: "nobody@example.com"}).
					Return(nil, nil).
					Once()
				f.serviceRepo.
					On("GetByEmail", mock.Anything, "nobody@example.com").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password collapses to invalid credentials",
			req:  &model.PartnerLoginRequest{Identifier: "owner@example.com", Password: "wrong"},
			mockCall: func(f partnerFields) {
				f.accommodationRepo.
					On("GetByIdentifier", mock.Anything, "owner@example.com").
					Return(&model.AccommodationEntity{
						ID:       "OX090520250703",
						Email:    "owner@example.com",
						Password: hashed,
					}, nil).
					Once()
				f.partnerRepo.
					On("Get", mock.Anything, &model.PartnerFilter{Identifier: "owner@example.com"}).
					Return(nil, nil).
					Once()
				f.serviceRepo.
					On("GetByEmail", mock.Anything, "owner@example.com").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPartnerFields(t)
			tt.mockCall(f)
			app := newPartnerApp(f)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.DashboardRoute != tt.wantRoute {
				t.Fatalf("dashboard route = %s, want %s", got.DashboardRoute, tt.wantRoute)
			}
			if got.UserType != "partner" {
				t.Fatalf("userType = %s, want partner", got.UserType)
			}
		})
	}
}

func TestPartnerApp_RegisterAccommodation(t *testing.T) {
	req := &model.RegisterAccommodationRequest{
		OwnerName:    "Owner Singh",
		Phone:        "9876543210",
		Email:        "Owner@Example.com",
		Password:     "password123",
		PropertyName: "Sunrise PG",
		Location:     "Kothrud",
		Rooms:        12,
		GenderPolicy: "male",
		RoomTypes: []model.RoomTypeInput{
			{Type: "Single", Rent: "5000", Deposit: "2000"},
			{Type: "Double", Rent: " 3500 ", Deposit: "1500"},
		},
		Amenities: []string{"wifi", "AC", "meals", "jacuzzi"},
	}

	f := newPartnerFields(t)
	f.accommodationRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AccommodationEntity) bool {
			single, ok := ent.Pricing["Single"]
			if !ok || single.Rent != 5000 || single.Deposit != 2000 {
				return false
			}
			double, ok := ent.Pricing["Double"]
			if !ok || double.Rent != 3500 || double.Deposit != 1500 {
				return false
			}
			basic := ent.Amenities["basic"]
			room := ent.Amenities["room"]
			services := ent.Amenities["services"]
			return ent.Email == "owner@example.com" &&
				basic["wifi"] && !basic["parking"] &&
				room["ac"] && !room["furnished"] &&
				services["meals"]
		})).
		Return(func(_ context.Context, ent *model.AccommodationEntity) *model.AccommodationEntity {
			return ent
		}, nil).
		Once()
	f.partnerRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(acc *model.PartnerAccountEntity) bool {
			return acc.Email == "owner@example.com" &&
				acc.PartnerType == constant.PartnerTypeAccommodation &&
				acc.DashboardRoute == "/dashboard/accommodation" &&
				acc.ReferenceTable == constant.ReferenceAccommodation &&
				acc.ReferenceID == acc.ID &&
				bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte("password123")) == nil
		})).
		Return(nil).
		Once()

	app := newPartnerApp(f)
	profile, err := app.RegisterAccommodation(context.Background(), req)
	if err != nil {
		t.Fatalf("RegisterAccommodation() error = %v", err)
	}
	if profile.DashboardRoute != "/dashboard/accommodation" {
		t.Fatalf("dashboard route = %s", profile.DashboardRoute)
	}
}

func TestPartnerApp_RegisterAccommodation_BadRent(t *testing.T) {
	f := newPartnerFields(t)
	app := newPartnerApp(f)

	_, err := app.RegisterAccommodation(context.Background(), &model.RegisterAccommodationRequest{
		OwnerName:    "Owner Singh",
		Phone:        "9876543210",
		Email:        "owner@example.com",
		Password:     "password123",
		PropertyName: "Sunrise PG",
		Location:     "Kothrud",
		RoomTypes: []model.RoomTypeInput{
			{Type: "Single", Rent: "five thousand", Deposit: "2000"},
		},
	})
	if err == nil {
		t.Fatal("RegisterAccommodation() error = nil, want validation failure")
	}
	assertErrCode(t, err, constant.ErrValidation)
}

func TestPartnerApp_RegisterService(t *testing.T) {
	req := &model.RegisterServiceRequest{
		OwnerName:    "Tiffin Owner",
		Phone:        "9876543210",
		Email:        "Tiffin@Example.com",
		Password:     "password123",
		BusinessName: "Ghar Ka Khana",
		Location:     "Kothrud",
		PartnerType:  "Tiffin Service",
		Plans:        []model.PricingPlan{{Name: "Monthly", Price: 2400, Period: "month"}},
		Catalog: model.ServiceCatalog{
			Food: &model.FoodCatalog{
				Cuisine:           "North Indian",
				Menu:              []model.MenuItem{{Name: "Thali", Price: 90}},
				DeliveryAvailable: true,
			},
		},
	}

	f := newPartnerFields(t)
	f.serviceRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ServiceEntity) bool {
			return ent.Category == constant.CategoryFood &&
				ent.PartnerType == "Tiffin Service" &&
				ent.Catalog.Category == constant.CategoryFood &&
				ent.Email == "tiffin@example.com"
		})).
		Return(func(_ context.Context, ent *model.ServiceEntity) *model.ServiceEntity {
			return ent
		}, nil).
		Once()
	f.partnerRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(acc *model.PartnerAccountEntity) bool {
			return acc.PartnerType == constant.CategoryFood &&
				acc.DashboardRoute == "/dashboard/food" &&
				acc.ReferenceTable == constant.ReferenceServices
		})).
		Return(nil).
		Once()

	app := newPartnerApp(f)
	profile, err := app.RegisterService(context.Background(), req)
	if err != nil {
		t.Fatalf("RegisterService() error = %v", err)
	}
	if profile.PartnerType != constant.CategoryFood {
		t.Fatalf("partnerType = %s, want %s", profile.PartnerType, constant.CategoryFood)
	}
}

func TestPartnerApp_RegisterService_CatalogMismatch(t *testing.T) {
	f := newPartnerFields(t)
	app := newPartnerApp(f)

	_, err := app.RegisterService(context.Background(), &model.RegisterServiceRequest{
		OwnerName:    "Tiffin Owner",
		Phone:        "9876543210",
		Email:        "tiffin@example.com",
		Password:     "password123",
		BusinessName: "Ghar Ka Khana",
		Location:     "Kothrud",
		PartnerType:  "Tiffin Service",
		Catalog: model.ServiceCatalog{
			Laundry: &model.LaundryCatalog{PricePerKg: 60},
		},
	})
	if err == nil {
		t.Fatal("RegisterService() error = nil, want validation failure")
	}
	assertErrCode(t, err, constant.ErrValidation)
}

func TestPartnerApp_SendOtp_StoresHashedCode(t *testing.T) {
	ctx := context.Background()
	codeRe := regexp.MustCompile(`\b(\d{6})\b`)

	f := newPartnerFields(t)
	f.partnerRepo.
		On("Get", mock.Anything, &model.PartnerFilter{Email: "owner@example.com"}).
		Return(&model.PartnerAccountEntity{ID: "OX090520250703", Email: "owner@example.com"}, nil).
		Once()

	var code string
	f.mail.
		On("Send", "owner@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if m := codeRe.FindStringSubmatch(args.String(2)); m != nil {
				code = m[1]
			}
		}).
		Return(nil).
		Once()

	app := newPartnerApp(f)
	if err := app.SendOtp(ctx, "Owner@Example.com"); err != nil {
		t.Fatalf("SendOtp() error = %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("delivered code = %q, want 6 digits", code)
	}

	raw, err := f.tokens.Get(ctx, token.PrefixPartnerOtp+"owner@example.com")
	if err != nil {
		t.Fatalf("tokens.Get() error = %v", err)
	}
	var challenge model.OtpChallenge
	if err := json.Unmarshal([]byte(raw), &challenge); err != nil {
		t.Fatalf("unmarshal challenge: %v", err)
	}
	if !challenge.Hashed {
		t.Fatal("challenge not marked hashed")
	}
	if challenge.Code == code {
		t.Fatal("code stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(challenge.Code), []byte(code)) != nil {
		t.Fatal("stored code is not a bcrypt hash of the delivered code")
	}
}

func TestPartnerApp_SendOtp_UnknownPartner(t *testing.T) {
	f := newPartnerFields(t)
	f.partnerRepo.
		On("Get", mock.Anything, &model.PartnerFilter{Email: "nobody@example.com"}).
		Return(nil, nil).
		Once()
	f.accommodationRepo.
		On("GetByIdentifier", mock.Anything, "nobody@example.com").
		Return(nil, nil).
		Once()
	f.serviceRepo.
		On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, nil).
		Once()

	app := newPartnerApp(f)
	err := app.SendOtp(context.Background(), "nobody@example.com")
	if err == nil {
		t.Fatal("SendOtp() error = nil, want not found")
	}
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestPartnerApp_ResetFlow_SyncsLegacyRow(t *testing.T) {
	ctx := context.Background()
	codeRe := regexp.MustCompile(`\b(\d{6})\b`)

	f := newPartnerFields(t)
	f.partnerRepo.
		On("Get", mock.Anything, &model.PartnerFilter{Email: "owner@example.com"}).
		Return(&model.PartnerAccountEntity{
			ID:             "OX090520250703",
			Email:          "owner@example.com",
			ReferenceTable: constant.ReferenceAccommodation,
			ReferenceID:    "OX090520250703",
		}, nil)

	var code string
	f.mail.
		On("Send", "owner@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if m := codeRe.FindStringSubmatch(args.String(2)); m != nil {
				code = m[1]
			}
		}).
		Return(nil).
		Once()

	f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
	f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()

	var partnerHash, legacyHash string
	f.partnerRepo.
		On("UpdatePasswordTx", mock.Anything, mock.Anything, "OX090520250703", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { partnerHash = args.String(3) }).
		Return(nil).
		Once()
	f.accommodationRepo.
		On("UpdatePasswordTx", mock.Anything, mock.Anything, "OX090520250703", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { legacyHash = args.String(3) }).
		Return(nil).
		Once()

	app := newPartnerApp(f)

	if err := app.SendOtp(ctx, "owner@example.com"); err != nil {
		t.Fatalf("SendOtp() error = %v", err)
	}
	resetToken, err := app.VerifyOtp(ctx, "owner@example.com", code)
	if err != nil {
		t.Fatalf("VerifyOtp() error = %v", err)
	}
	if len(resetToken) != 64 {
		t.Fatalf("reset token length = %d, want 64", len(resetToken))
	}
	if err := app.ResetPassword(ctx, resetToken, "brand-new-pass"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	if partnerHash == "" || partnerHash != legacyHash {
		t.Fatalf("partner hash %q and legacy hash %q must match", partnerHash, legacyHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(partnerHash), []byte("brand-new-pass")) != nil {
		t.Fatal("written credential is not a bcrypt hash of the new password")
	}
}

func TestPartnerApp_VerifyOtp_WrongCode(t *testing.T) {
	ctx := context.Background()

	f := newPartnerFields(t)
	f.partnerRepo.
		On("Get", mock.Anything, &model.PartnerFilter{Email: "owner@example.com"}).
		Return(&model.PartnerAccountEntity{ID: "OX090520250703", Email: "owner@example.com"}, nil).
		Once()
	f.mail.
		On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	app := newPartnerApp(f)
	if err := app.SendOtp(ctx, "owner@example.com"); err != nil {
		t.Fatalf("SendOtp() error = %v", err)
	}

	_, err := app.VerifyOtp(ctx, "owner@example.com", "000000")
	if err == nil {
		t.Fatal("VerifyOtp() error = nil, want invalid OTP")
	}
	assertErrCode(t, err, constant.ErrInvalidOtp)
}

func TestPartnerApp_UpdatePhotos_NotFound(t *testing.T) {
	f := newPartnerFields(t)
	f.accommodationRepo.
		On("GetByID", mock.Anything, "missing").
		Return(nil, nil).
		Once()

	app := newPartnerApp(f)
	err := app.UpdatePhotos(context.Background(), &model.UpdatePhotosRequest{
		ID:     "missing",
		Images: []string{"https://cdn.example.com/a.jpg"},
	})
	if err == nil {
		t.Fatal("UpdatePhotos() error = nil, want not found")
	}
	assertErrCode(t, err, constant.ErrNotFound)
}

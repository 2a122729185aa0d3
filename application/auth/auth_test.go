package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appauth "github.com/campusnest/backend/application/auth"
	"github.com/campusnest/backend/cmd/config"
	"github.com/campusnest/backend/constant"
	accommock "github.com/campusnest/backend/mocks/repository/accommodation"
	accountmocks "github.com/campusnest/backend/mocks/repository/account"
	partnermocks "github.com/campusnest/backend/mocks/repository/partner"
	servicemocks "github.com/campusnest/backend/mocks/repository/service"
	txmocks "github.com/campusnest/backend/mocks/repository/tx"
	googlemocks "github.com/campusnest/backend/mocks/thirdparty/google"
	mailermocks "github.com/campusnest/backend/mocks/thirdparty/mailer"
	smsmocks "github.com/campusnest/backend/mocks/thirdparty/sms"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/repository/token"
	cerr "github.com/campusnest/backend/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type authFields struct {
	config            *config.Config
	accountRepo       *accountmocks.AccountRepository
	partnerRepo       *partnermocks.PartnerRepository
	accommodationRepo *accommock.AccommodationRepository
	serviceRepo       *servicemocks.ServiceRepository
	txRepo            *txmocks.TxRepository
	tokens            *token.MemoryStore
	mail              *mailermocks.Mailer
	sms               *smsmocks.Sender
	google            *googlemocks.Verifier
}

func newAuthFields(t *testing.T) authFields {
	return authFields{
		config: &config.Config{
			Auth: config.AuthConfig{
				OtpTTL:        10 * time.Minute,
				ResetTokenTTL: 15 * time.Minute,
			},
		},
		accountRepo:       accountmocks.NewAccountRepository(t),
		partnerRepo:       partnermocks.NewPartnerRepository(t),
		accommodationRepo: accommock.NewAccommodationRepository(t),
		serviceRepo:       servicemocks.NewServiceRepository(t),
		txRepo:            txmocks.NewTxRepository(t),
		tokens:            token.NewMemoryStore(),
		mail:              mailermocks.NewMailer(t),
		sms:               smsmocks.NewSender(t),
		google:            googlemocks.NewVerifier(t),
	}
}

func newAuthApp(f authFields) appauth.AuthApp {
	return appauth.NewAuthApp(
		f.config,
		f.accountRepo,
		f.partnerRepo,
		f.accommodationRepo,
		f.serviceRepo,
		f.txRepo,
		f.tokens,
		f.mail,
		f.sms,
		f.google,
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

func TestAuthApp_Signup(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.SignupRequest
		mockCall func(f authFields)
		check    func(t *testing.T, got *model.SignupResponse)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: student account",
			req: &model.SignupRequest{
				Name:       "Rahul Sharma",
				Email:      "Rahul@Example.com",
				Phone:      "9876543210",
				Password:   "password123",
				City:       "Pune",
				UserType:   "student",
				University: "Pune University",
				StudentID:  "PU-2211",
			},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AccountEntity) bool {
						return ent.Email == "rahul@example.com" &&
							ent.UserType == constant.AccountKindStudent &&
							!ent.IsEmployed &&
							ent.Organization == "Pune University" &&
							ent.IdentityCode == "PU-2211" &&
							len(ent.ID) == 14 &&
							ent.ID[:2] == "RS" &&
							bcrypt.CompareHashAndPassword([]byte(ent.Password), []byte("password123")) == nil
					})).
					Return(func(_ context.Context, ent *model.AccountEntity) *model.AccountEntity {
						return ent
					}, nil).
					Once()
			},
			check: func(t *testing.T, got *model.SignupResponse) {
				if got.Email != "rahul@example.com" {
					t.Fatalf("email = %s, want lowercased", got.Email)
				}
				if got.UserType != constant.AccountKindStudent {
					t.Fatalf("userType = %s, want student", got.UserType)
				}
			},
		},
		{
			name: "success: professional maps company and employee id",
			req: &model.SignupRequest{
				Name:       "Priya Nair",
				Email:      "priya@example.com",
				Phone:      "9876500000",
				Password:   "password123",
				UserType:   "Professional",
				Company:    "Acme Corp",
				EmployeeID: "E-4521",
			},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "priya@example.com"}).
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AccountEntity) bool {
						return ent.UserType == constant.AccountKindProfessional &&
							ent.IsEmployed &&
							ent.Organization == "Acme Corp" &&
							ent.IdentityCode == "E-4521"
					})).
					Return(func(_ context.Context, ent *model.AccountEntity) *model.AccountEntity {
						return ent
					}, nil).
					Once()
			},
			check: func(t *testing.T, got *model.SignupResponse) {
				if got.UserType != constant.AccountKindProfessional {
					t.Fatalf("userType = %s, want professional", got.UserType)
				}
			},
		},
		{
			name: "error: unknown account kind",
			req: &model.SignupRequest{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Phone:    "9876543210",
				Password: "password123",
				UserType: "admin",
			},
			mockCall: func(f authFields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: email already registered, nothing written",
			req: &model.SignupRequest{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Phone:    "9876543210",
				Password: "password123",
				UserType: "student",
			},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(&model.AccountEntity{ID: "RS090520250703", Email: "rahul@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyRegistered,
		},
		{
			name: "error: duplicate key race on insert",
			req: &model.SignupRequest{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Phone:    "9876543210",
				Password: "password123",
				UserType: "student",
			},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.AccountEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyRegistered,
		},
		{
			name: "error: repository Get fails",
			req: &model.SignupRequest{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Phone:    "9876543210",
				Password: "password123",
				UserType: "student",
			},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFields(t)
			tt.mockCall(f)
			app := newAuthApp(f)

			got, err := app.Signup(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			tt.check(t, got)
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f authFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email identifier",
			req:  &model.LoginRequest{Identifier: "Rahul@Example.com", Password: "password123"},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(&model.AccountEntity{
						ID:       "RS090520250703",
						Email:    "rahul@example.com",
						Password: string(hashed),
					}, nil).
					Once()
			},
		},
		{
			name: "success: phone identifier",
			req:  &model.LoginRequest{Identifier: "9876543210", Password: "password123"},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Phone: "9876543210"}).
					Return(&model.AccountEntity{
						ID:       "RS090520250703",
						Phone:    "9876543210",
						Password: string(hashed),
					}, nil).
					Once()
			},
		},
		{
			name: "success: legacy plaintext credential still verifies",
			req:  &model.LoginRequest{Identifier: "old@example.com", Password: "plaintext-pass"},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "old@example.com"}).
					Return(&model.AccountEntity{
						ID:       "OX090520250703",
						Email:    "old@example.com",
						Password: "plaintext-pass",
					}, nil).
					Once()
			},
		},
		{
			name: "error: unknown identifier",
			req:  &model.LoginRequest{Identifier: "nobody@example.com", Password: "password123"},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "rahul@example.com", Password: "wrong"},
			mockCall: func(f authFields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(&model.AccountEntity{
						ID:       "RS090520250703",
						Email:    "rahul@example.com",
						Password: string(hashed),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFields(t)
			tt.mockCall(f)
			app := newAuthApp(f)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == nil || got.ID == "" {
				t.Fatalf("Login() = %+v, want populated profile", got)
			}
		})
	}
}

func TestAuthApp_GoogleAuth(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.GoogleAuthRequest
		mockCall func(f authFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: existing account via id token",
			req:  &model.GoogleAuthRequest{IDToken: "id-token"},
			mockCall: func(f authFields) {
				f.google.
					On("VerifyIDToken", mock.Anything, "id-token").
					Return(&model.GoogleIdentity{Name: "Rahul Sharma", Email: "Rahul@Example.com"}, nil).
					Once()

				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "rahul@example.com"}).
					Return(&model.AccountEntity{ID: "RS090520250703", Email: "rahul@example.com"}, nil).
					Once()
			},
		},
		{
			name: "success: first login provisions account via access token",
			req:  &model.GoogleAuthRequest{AccessToken: "access-token"},
			mockCall: func(f authFields) {
				f.google.
					On("FetchUserinfo", mock.Anything, "access-token").
					Return(&model.GoogleIdentity{Name: "New User", Email: "new@example.com"}, nil).
					Once()

				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "new@example.com"}).
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AccountEntity) bool {
						return ent.Email == "new@example.com" &&
							ent.UserType == constant.AccountKindStudent &&
							len(ent.Phone) == 10 &&
							ent.Phone[:2] == "99" &&
							ent.Password != ""
					})).
					Return(func(_ context.Context, ent *model.AccountEntity) *model.AccountEntity {
						return ent
					}, nil).
					Once()
			},
		},
		{
			name: "success: placeholder phone collision retried once",
			req:  &model.GoogleAuthRequest{AccessToken: "access-token"},
			mockCall: func(f authFields) {
				f.google.
					On("FetchUserinfo", mock.Anything, "access-token").
					Return(&model.GoogleIdentity{Name: "New User", Email: "new@example.com"}, nil).
					Once()

				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{Email: "new@example.com"}).
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.AccountEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062}).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.AccountEntity")).
					Return(func(_ context.Context, ent *model.AccountEntity) *model.AccountEntity {
						return ent
					}, nil).
					Once()
			},
		},
		{
			name:     "error: neither token supplied",
			req:      &model.GoogleAuthRequest{},
			mockCall: func(f authFields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: verification failure",
			req:  &model.GoogleAuthRequest{IDToken: "bad"},
			mockCall: func(f authFields) {
				f.google.
					On("VerifyIDToken", mock.Anything, "bad").
					Return(nil, errors.New("invalid token")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFields(t)
			tt.mockCall(f)
			app := newAuthApp(f)

			got, err := app.GoogleAuth(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GoogleAuth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == nil || got.Email == "" {
				t.Fatalf("GoogleAuth() = %+v, want populated profile", got)
			}
		})
	}
}

func TestAuthApp_UpdateProfile(t *testing.T) {
	name := "Renamed User"
	city := "Mumbai"

	f := newAuthFields(t)
	f.accountRepo.
		On("Get", mock.Anything, &model.AccountFilter{ID: "RS090520250703"}).
		Return(&model.AccountEntity{ID: "RS090520250703", Name: "Rahul Sharma"}, nil).
		Once()
	f.accountRepo.
		On("Update", mock.Anything, "RS090520250703", &model.AccountUpdate{Name: &name, City: &city}).
		Return(nil).
		Once()
	f.accountRepo.
		On("Get", mock.Anything, &model.AccountFilter{ID: "RS090520250703"}).
		Return(&model.AccountEntity{ID: "RS090520250703", Name: name, City: city}, nil).
		Once()

	app := newAuthApp(f)
	got, err := app.UpdateProfile(context.Background(), "RS090520250703", &model.UpdateProfileRequest{
		Name: &name,
		City: &city,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if got.Name != name || got.City != city {
		t.Fatalf("UpdateProfile() = %+v, want updated fields", got)
	}
}

func TestAuthApp_GetProfile_NotFound(t *testing.T) {
	f := newAuthFields(t)
	f.accountRepo.
		On("Get", mock.Anything, &model.AccountFilter{ID: "missing"}).
		Return(nil, nil).
		Once()

	app := newAuthApp(f)
	_, err := app.GetProfile(context.Background(), "missing")
	if err == nil {
		t.Fatal("GetProfile() error = nil, want not found")
	}
	assertErrCode(t, err, constant.ErrNotFound)
}

package transport

import (
	"encoding/json"
	"net/http"

	authapp "github.com/campusnest/backend/application/auth"
	partnerapp "github.com/campusnest/backend/application/partner"
	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
	"github.com/campusnest/backend/thirdparty/cloudinary"
	"github.com/campusnest/backend/utils/errors"
	validatorx "github.com/campusnest/backend/utils/validator"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	PartnerApp partnerapp.PartnerApp
	Uploader   cloudinary.Uploader
	DB         *sqlx.DB
}

func NewTransport(authApp authapp.AuthApp, partnerApp partnerapp.PartnerApp, uploader cloudinary.Uploader, db *sqlx.DB, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    authApp,
		PartnerApp: partnerApp,
		Uploader:   uploader,
		DB:         db,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)

	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	auth.HandleFunc("/google-auth", rh.GoogleAuth).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/verify-otp", rh.VerifyOtp).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", rh.ResetPassword).Methods(http.MethodPost)
	auth.HandleFunc("/user/{id}", rh.GetUser).Methods(http.MethodGet)
	auth.HandleFunc("/user/{id}", rh.UpdateUser).Methods(http.MethodPut)

	partners := router.PathPrefix("/api/partners").Subrouter()
	partners.HandleFunc("/login", rh.PartnerLogin).Methods(http.MethodPost)
	partners.HandleFunc("/signup", rh.PartnerSignup).Methods(http.MethodPost)
	partners.HandleFunc("/send-otp", rh.PartnerSendOtp).Methods(http.MethodPost)
	partners.HandleFunc("/verify-otp", rh.PartnerVerifyOtp).Methods(http.MethodPost)
	partners.HandleFunc("/reset-password", rh.PartnerResetPassword).Methods(http.MethodPost)
	partners.HandleFunc("/upload-image", rh.UploadImage).Methods(http.MethodPost)
	partners.HandleFunc("/properties", rh.ListProperties).Methods(http.MethodGet)
	partners.HandleFunc("/properties", rh.UpdateProperty).Methods(http.MethodPut)
	partners.HandleFunc("/properties/photos", rh.UpdatePropertyPhotos).Methods(http.MethodPut)
	partners.HandleFunc("/properties/rules", rh.UpdatePropertyRules).Methods(http.MethodPut)
	partners.HandleFunc("/stores", rh.ListStores).Methods(http.MethodGet)
	partners.HandleFunc("/stores", rh.UpdateStore).Methods(http.MethodPut)
	partners.HandleFunc("/all-accommodations", rh.ListAllAccommodations).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return cors(router)
}

func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.PingContext(r.Context()); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
	}
	writeMessage(w, "ok")
}

// decodeAndValidate pulls the JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomError(constant.ErrValidation)
	}
	return nil
}

// Signup handler
// @Summary Register end-user account
// @Description Create an end-user account (student or professional)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 201 {object} model.SignupResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/auth/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// Login handler
// @Summary Login with email or phone
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} errors.CustomError
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeUser(w, res)
}

func (s *RestHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req model.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.GoogleAuth(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeUser(w, res)
}

func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	kind := constant.ChallengeKindUser
	if req.UserType == "partner" {
		kind = constant.ChallengeKindPartner
	}

	if err := s.AuthApp.IssueOtp(r.Context(), req.Identifier, kind); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "OTP sent")
}

func (s *RestHandler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOtpRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resetToken, err := s.AuthApp.VerifyOtp(r.Context(), req.Identifier, req.Otp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"resetToken": resetToken})
}

func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AuthApp.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "password updated")
}

func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.AuthApp.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeUser(w, res)
}

func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.UpdateProfile(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeUser(w, res)
}

// PartnerLogin handler
// @Summary Partner login
// @Description Resolve a partner identity across the three backing stores
// @Tags Partners
// @Accept json
// @Produce json
// @Param request body model.PartnerLoginRequest true "Partner Login Request"
// @Success 200 {object} model.PartnerLoginResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/partners/login [post]
func (s *RestHandler) PartnerLogin(w http.ResponseWriter, r *http.Request) {
	var req model.PartnerLoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PartnerApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeUser(w, res)
}

// PartnerSignup dispatches on the partner type: accommodation registrations
// carry room types, everything else is a generic service.
func (s *RestHandler) PartnerSignup(w http.ResponseWriter, r *http.Request) {
	var probe struct {
		PartnerType string `json:"partnerType"`
	}
	body := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := body.Decode(&raw); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if probe.PartnerType == "" || probe.PartnerType == constant.PartnerTypeAccommodation {
		var req model.RegisterAccommodationRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := validatorx.ValidateStruct(&req); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrValidation))
			return
		}
		res, err := s.PartnerApp.RegisterAccommodation(r.Context(), &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeCreated(w, res)
		return
	}

	var req model.RegisterServiceRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	res, err := s.PartnerApp.RegisterService(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

func (s *RestHandler) PartnerSendOtp(w http.ResponseWriter, r *http.Request) {
	var req model.SendOtpRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.SendOtp(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "OTP sent")
}

func (s *RestHandler) PartnerVerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOtpRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resetToken, err := s.PartnerApp.VerifyOtp(r.Context(), req.Identifier, req.Otp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"resetToken": resetToken})
}

func (s *RestHandler) PartnerResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "password updated")
}

const maxUploadBytes = 10 << 20

func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	defer file.Close()

	url, err := s.Uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrUpstream))
		return
	}
	writeSuccess(w, map[string]string{"url": url})
}

func (s *RestHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	list, err := s.PartnerApp.ListAccommodations(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, list)
}

func (s *RestHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	list, err := s.PartnerApp.ListServices(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, list)
}

func (s *RestHandler) ListAllAccommodations(w http.ResponseWriter, r *http.Request) {
	list, err := s.PartnerApp.ListAllAccommodations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, list)
}

func (s *RestHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAccommodationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.UpdateAccommodation(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "property updated")
}

func (s *RestHandler) UpdatePropertyPhotos(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePhotosRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.UpdatePhotos(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "photos updated")
}

func (s *RestHandler) UpdatePropertyRules(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRulesRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.UpdateRules(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "rules updated")
}

func (s *RestHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateServiceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PartnerApp.UpdateService(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "store updated")
}

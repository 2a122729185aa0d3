package main

import (
	"context"
	"fmt"
	"net/http"

	authapp "github.com/campusnest/backend/application/auth"
	partnerapp "github.com/campusnest/backend/application/partner"
	"github.com/campusnest/backend/cmd/config"
	redisclient "github.com/campusnest/backend/cmd/redis"
	_ "github.com/campusnest/backend/docs"
	accommodationRepo "github.com/campusnest/backend/repository/accommodation"
	accountRepo "github.com/campusnest/backend/repository/account"
	partnerRepo "github.com/campusnest/backend/repository/partner"
	serviceRepo "github.com/campusnest/backend/repository/service"
	tokenRepo "github.com/campusnest/backend/repository/token"
	txRepo "github.com/campusnest/backend/repository/tx"
	"github.com/campusnest/backend/thirdparty/cloudinary"
	googleauth "github.com/campusnest/backend/thirdparty/google"
	"github.com/campusnest/backend/thirdparty/mailer"
	"github.com/campusnest/backend/thirdparty/rabbitmq"
	"github.com/campusnest/backend/thirdparty/sms"
	"github.com/campusnest/backend/transport"
	"github.com/campusnest/backend/utils/logger"
	validatorx "github.com/campusnest/backend/utils/validator"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title CampusNest API
// @version 1.0
// @description CampusNest student services marketplace API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Token ledger: Redis when configured, in-process store otherwise
	var tokens tokenRepo.Store
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		tokens = tokenRepo.NewRedisStore()
	} else {
		tokens = tokenRepo.NewMemoryStore()
	}

	// Initialize repositories
	AccountRepo := accountRepo.NewAccountRepository(db)
	PartnerRepo := partnerRepo.NewPartnerRepository(db)
	AccommodationRepo := accommodationRepo.NewAccommodationRepository(db)
	ServiceRepo := serviceRepo.NewServiceRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Outbound clients
	mail := mailer.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	smsSender := sms.NewGatewayClient(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.Sender)
	google := googleauth.NewClient(cfg.Auth.GoogleClientID)
	uploader := cloudinary.NewClient(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset)

	var publisher *rabbitmq.Publisher
	if cfg.Rabbit.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password, mail)
		if err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Run(context.Background()); err != nil {
				logger.Error("rabbitmq consumer stopped", zap.Error(err))
			}
		}()
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, AccountRepo, PartnerRepo, AccommodationRepo, ServiceRepo, TxRepo, tokens, mail, smsSender, google, publisher)
	PartnerApp := partnerapp.NewPartnerApp(cfg, PartnerRepo, AccommodationRepo, ServiceRepo, TxRepo, tokens, mail, publisher)

	httpTransport := transport.NewTransport(AuthApp, PartnerApp, uploader, db, cfg.CORS.AllowedOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.Int("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

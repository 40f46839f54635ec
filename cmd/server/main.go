package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cemention/cemention/internal/config"
	"github.com/cemention/cemention/internal/es"
	"github.com/cemention/cemention/internal/events"
	"github.com/cemention/cemention/internal/httpserver"
	"github.com/cemention/cemention/internal/otp"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/service"
	"github.com/cemention/cemention/pkg/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(cfg.JWT_SECRET)

	producer := events.NewProducer(
		[]string{cfg.KAFKA_ADDRESS},
		[]string{events.TopicUserEvents, events.TopicOrderEvents},
	)

	esClient, err := es.NewClient(cfg.ES_URL, cfg.ES_USER, cfg.ES_PASSWORD)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}

	var provider otp.Provider = otp.DemoProvider{}
	if !cfg.OTP_DEMO_MODE {
		provider = otp.NewTwilioProvider(cfg.TWILIO_ACCOUNT_SID, cfg.TWILIO_AUTH_TOKEN, cfg.TWILIO_PHONE)
	}
	otpSvc := &otp.Service{
		Store:    otp.NewRedisStore(cfg.REDIS_ADDR, cfg.REDIS_PASSWORD, cfg.REDIS_DB),
		Provider: provider,
		Demo:     cfg.OTP_DEMO_MODE,
	}

	r := repo.New(db)
	authSvc := &service.AuthService{Repo: r, OTP: otpSvc, Producer: producer, JWTSecret: jwtSecret}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		JWTSecret: jwtSecret,
		AuthSvc:   authSvc,
		Auth:      &httpserver.AuthHTTP{Svc: authSvc},
		Product:   &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: r, ES: esClient}},
		Cart:      &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}},
		Address:   &httpserver.AddressHTTP{Svc: &service.AddressService{Repo: r}},
		Order:     &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: producer}},
		Admin:     &httpserver.AdminHTTP{Svc: &service.AdminService{Repo: r, Producer: producer, ES: esClient}},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}

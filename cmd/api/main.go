package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bellezapura/salon-api/config"
	"github.com/bellezapura/salon-api/internal/email"
	authhandler "github.com/bellezapura/salon-api/internal/handler/auth"
	bookinghandler "github.com/bellezapura/salon-api/internal/handler/booking"
	calendarhandler "github.com/bellezapura/salon-api/internal/handler/calendar"
	cataloghandler "github.com/bellezapura/salon-api/internal/handler/catalog"
	notificationhandler "github.com/bellezapura/salon-api/internal/handler/notification"
	reporthandler "github.com/bellezapura/salon-api/internal/handler/report"
	userhandler "github.com/bellezapura/salon-api/internal/handler/user"
	"github.com/bellezapura/salon-api/internal/repository/memory"
	"github.com/bellezapura/salon-api/internal/router"
	authservice "github.com/bellezapura/salon-api/internal/service/auth"
	bookingservice "github.com/bellezapura/salon-api/internal/service/booking"
	calendarservice "github.com/bellezapura/salon-api/internal/service/calendar"
	catalogservice "github.com/bellezapura/salon-api/internal/service/catalog"
	"github.com/bellezapura/salon-api/internal/service/ledger"
	notificationservice "github.com/bellezapura/salon-api/internal/service/notification"
	reportservice "github.com/bellezapura/salon-api/internal/service/report"
	userservice "github.com/bellezapura/salon-api/internal/service/user"
	pkgauth "github.com/bellezapura/salon-api/pkg/auth"
	"github.com/bellezapura/salon-api/pkg/logger"
	"github.com/bellezapura/salon-api/pkg/metrics"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err, "failed to load config")
	}

	store := memory.NewSeededStore()
	userRepo := memory.NewUserRepository(store)
	serviceRepo := memory.NewServiceRepository(store)
	profRepo := memory.NewProfessionalRepository(store)
	bookingRepo := memory.NewBookingRepository(store)
	saleRepo := memory.NewSaleRepository(store)

	m := metrics.NewMetrics(cfg.Metrics.Namespace)
	jwtSvc := pkgauth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	sender := email.NewSender(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	authSvc := authservice.NewService(userRepo, jwtSvc, cfg.JWT.Expiry)
	catalogSvc := catalogservice.NewService(serviceRepo, profRepo)
	userSvc := userservice.NewService(userRepo, memory.DemoPassword)
	bookingSvc := bookingservice.NewService(bookingRepo, userRepo, serviceRepo, profRepo, saleRepo,
		ledger.NewService(), m, bookingservice.Config{RefundCreditOnCancel: cfg.Booking.RefundCreditOnCancel})
	calendarSvc := calendarservice.NewService(bookingRepo, serviceRepo, profRepo, cfg.Calendar.SlotUnit)
	reportSvc := reportservice.NewService(saleRepo, serviceRepo)
	notificationSvc := notificationservice.NewService(bookingRepo, userRepo, serviceRepo, profRepo, sender)

	engine := router.New(cfg, log, m, authSvc, router.Handlers{
		Auth:         authhandler.NewHandler(authSvc, log),
		Catalog:      cataloghandler.NewHandler(catalogSvc, log),
		Booking:      bookinghandler.NewHandler(bookingSvc, log),
		User:         userhandler.NewHandler(userSvc, bookingSvc, log),
		Calendar:     calendarhandler.NewHandler(calendarSvc, log),
		Report:       reporthandler.NewHandler(reportSvc, log),
		Notification: notificationhandler.NewHandler(notificationSvc, log),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}

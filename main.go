package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"taxburden/config"
	httpLayer "taxburden/http"
	"taxburden/repository"
	"taxburden/service"
)

var log = logrus.WithField("module", "main")

type submissionStore interface {
	repository.SubmissionRepository
	repository.SurveyRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := config.SetupLogging(cfg.LogLevel); err != nil {
		log.Fatalf("config: %v", err)
	}

	rates := service.DefaultTaxRates()
	if cfg.TaxTablesFile != "" {
		rates, err = config.LoadTaxRates(cfg.TaxTablesFile, rates)
		if err != nil {
			log.Fatalf("tax tables: %v", err)
		}
		log.WithField("file", cfg.TaxTablesFile).Info("tax tables loaded")
	}

	var store submissionStore
	if cfg.DatabaseURL != "" {
		db, err := config.OpenDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		gormRepo := repository.NewSubmissionRepositoryGorm(db)
		if err := gormRepo.Migrate(); err != nil {
			log.Fatalf("database migration: %v", err)
		}
		store = gormRepo
	} else {
		log.Warn("DB_URL not set, submissions are kept in memory")
		store = repository.NewSubmissionRepositoryMemory()
	}

	var throttle repository.Throttle = repository.NewSubmissionThrottle(store)
	if rdb := config.ConnectRedis(context.Background(), cfg.RedisAddr); rdb != nil {
		defer rdb.Close()
		throttle = repository.NewRedisThrottle(rdb)
	}

	estimator := service.NewEstimator(rates)
	estimateService := service.NewEstimateService(estimator)
	estimateHandler := httpLayer.NewEstimateHandler(estimateService)

	submissionService := service.NewSubmissionService(estimateService, store, throttle, cfg.SubmissionWindow)
	submissionHandler := httpLayer.NewSubmissionHandler(submissionService)

	surveyService := service.NewSurveyService(store)
	surveyHandler := httpLayer.NewSurveyHandler(surveyService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	routes := map[string]http.HandlerFunc{
		"/api/estimate":        estimateHandler.Estimate,
		"/api/submit":          submissionHandler.Submit,
		"/api/update-fairness": submissionHandler.UpdateFairness,
		"/api/survey":          surveyHandler.Submit,
	}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.Handle(pattern, httpLayer.RateLimitMiddleware(rateLimiter, handler))
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":     cfg.Addr,
			"tax_year": estimator.Rates().Year,
		}).Info("tax burden API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("server failed to start")
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	log.Info("server exited")
}

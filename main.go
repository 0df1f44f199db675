package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"agri-advice/internal/config"
	Iservices "agri-advice/internal/domain/interfaces/services"
	"agri-advice/internal/infra/handlers"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/infra/provider"
	"agri-advice/internal/infra/repository"
	"agri-advice/internal/infra/routes"
	"agri-advice/internal/infra/services"
	"agri-advice/internal/middleware"
	client "agri-advice/internal/pkg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.NewLogger(ctx, cfg.LogLevel, true)

	mongoClient := client.MongoClient(cfg.MongoURI)
	db := mongoClient.Database(cfg.MongoDB)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	httpClient := &http.Client{}

	speechProvider := provider.NewSarvamProvider(log, httpClient, cfg.SarvamBaseURL, cfg.SarvamAPIKey, cfg.ProviderTimeout)
	weatherProvider := provider.NewOpenWeatherProvider(log, httpClient, cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, cfg.ProviderTimeout)
	pricesProvider := provider.NewDataGovProvider(log, httpClient, cfg.DataGovBaseURL, cfg.DataGovAPIKey, cfg.ProviderTimeout)
	plantIDProvider := provider.NewPlantNetProvider(log, httpClient, cfg.PlantNetBaseURL, cfg.PlantNetAPIKey, cfg.ProviderTimeout)

	historyRepo := repository.NewHistoryMongoRepository(db)
	profileRepo := repository.NewProfileMongoRepository(db)

	var historySvc Iservices.IHistoryService = services.NewHistoryService(historyRepo, log)
	var profileSvc Iservices.IProfileService = services.NewProfileService(profileRepo, log)
	var adviceSvc Iservices.IAdviceService = services.NewAdviceService(log, speechProvider, weatherProvider, historySvc, cfg.WeatherCity)

	adviceHandlers := handlers.NewAdviceHandlers(log, adviceSvc, cfg.UploadDir)
	historyHandlers := handlers.NewHistoryHandlers(log, historySvc)
	profileHandlers := handlers.NewProfileHandlers(log, profileSvc)
	externalHandlers := handlers.NewExternalHandlers(log, weatherProvider, pricesProvider, plantIDProvider, cfg.UploadDir)

	auth := middleware.AuthMiddleware(log, cfg.JWTSecret)

	apiRoutes := routes.NewRoutes(
		router,
		adviceHandlers,
		historyHandlers,
		profileHandlers,
		externalHandlers,
		auth,
	)
	apiRoutes.Init()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Error disconnecting MongoDB: %v", err))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"pnw-map/internal/application"
	"pnw-map/internal/config"
	"pnw-map/internal/domain/model"
	domainrepo "pnw-map/internal/domain/repository"
	"pnw-map/internal/domain/service"
	"pnw-map/internal/handler"
	"pnw-map/internal/infrastructure/cache"
	"pnw-map/internal/infrastructure/database"
	"pnw-map/internal/infrastructure/traffic"
	"pnw-map/internal/infrastructure/weather"
	"pnw-map/internal/logger"
	"pnw-map/internal/repository"
	"pnw-map/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabase health check failed: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	var markersRepo domainrepo.MarkersRepository
	if cfg.MarkersBackend == "postgres" {
		pgClient, err := database.NewPostgreSQLClientWithRetry(cfg.SupabaseURL, cfg.SupabaseDBPassword, 3, 2*time.Second)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
		}
		defer pgClient.Close()
		markersRepo = repository.NewPostgresMarkersRepository(pgClient)
		fmt.Println("✅ Markers backend: PostgreSQL")
	} else {
		markersRepo = repository.NewSupabaseMarkersRepository(supabaseClient)
		fmt.Println("✅ Markers backend: Supabase")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, widget caching disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			fmt.Println("✅ Redis connection successful!")
		}
	}

	resolver, err := service.NewGeofenceResolver(model.CampusRegions())
	if err != nil {
		log.Fatalf("Failed to build geofence resolver: %v", err)
	}

	scheduleRepo := repository.NewSupabaseClassScheduleRepository(supabaseClient)
	buildingsRepo := repository.NewSupabaseBuildingsRepository(supabaseClient)
	floorPlans := repository.NewSupabaseFloorPlanStorage(supabaseClient, cfg.FloorPlanBucket)

	markersUseCase := usecase.NewMarkersUseCase(markersRepo)
	classMarkers := application.NewClassMarkersService(scheduleRepo, resolver)
	buildingsService := application.NewBuildingsService(resolver, buildingsRepo, floorPlans)
	eventsService := application.NewEventsService(cfg.EventsFeedURL)

	weatherClient := weather.NewClient(cfg.WeatherAPIKey, "Hammond,IN")
	trafficClient := traffic.NewClient(cfg.TomTomAPIKey, model.CampusCenter)
	widgetsService := application.NewWidgetsService(weatherClient, trafficClient, redisClient)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go widgetsService.StartPolling(ctx)

	r := handler.SetupRouter(handler.Handlers{
		Markers:   handler.NewMarkersHandler(markersUseCase),
		Location:  handler.NewLocationHandler(resolver),
		Buildings: handler.NewBuildingsHandler(buildingsService),
		Schedule:  handler.NewScheduleHandler(scheduleRepo, classMarkers),
		Widgets:   handler.NewWidgetsHandler(widgetsService),
		Events:    handler.NewEventsHandler(eventsService),
		Auth:      handler.NewAuthHandler(supabaseClient),
	})

	fmt.Printf("🚀 pnw-map server starting on :%s...\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

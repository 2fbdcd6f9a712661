package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/sivaharine/pet-Adoption/internal/config"     // Internal config loader
	"github.com/sivaharine/pet-Adoption/internal/database"   // MySQL connection pool
	"github.com/sivaharine/pet-Adoption/internal/handler"    // HTTP handlers
	"github.com/sivaharine/pet-Adoption/internal/middleware" // Rate limit / cache middleware
	"github.com/sivaharine/pet-Adoption/internal/queue"      // Pet event consumer
	"github.com/sivaharine/pet-Adoption/internal/repository" // Data access layer
	"github.com/sivaharine/pet-Adoption/internal/router"     // Route registration
)

func main() {
	// Load .env if present; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: when it is unreachable the cache and rate limit
	// middlewares degrade to pass-throughs and the API keeps serving.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable: response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	pets := repository.NewPetRepo(db)
	favorites := repository.NewFavoriteRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, favorites)
	petHandler := handler.NewPetHandler(pets)
	publicHandler := &handler.PublicHandler{Pets: pets}
	favHandler := handler.NewFavoritesHandler(favorites)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // health check
	router.RegisterUsers(e, authHandler, favHandler, cfg.JWTSecret)
	router.RegisterPets(e, petHandler, publicHandler, cfg.JWTSecret, cacheMW)

	// Consume pet lifecycle events in the background; the consumer runs its
	// own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartPetEventsConsumer(); err != nil {
			log.Printf("pet-events consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

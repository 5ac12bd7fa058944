package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in request logging and recovery

	"github.com/raelyaan/venue-booking/internal/config"     // Internal config loader
	"github.com/raelyaan/venue-booking/internal/database"   // MySQL connection pool
	"github.com/raelyaan/venue-booking/internal/handler"    // HTTP handlers
	"github.com/raelyaan/venue-booking/internal/queue"      // booking status event consumer
	"github.com/raelyaan/venue-booking/internal/repository" // booking repository
	"github.com/raelyaan/venue-booking/internal/router"     // route registration
	"github.com/raelyaan/venue-booking/internal/session"    // session store implementations
	"github.com/raelyaan/venue-booking/internal/view"       // HTML renderer
)

func main() {
	cfg := config.Load() // Load environment config

	// Open the MySQL pool and verify the connection.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Prefer Redis for sessions; fall back to the in-memory store when
	// no Redis server is reachable so the application still starts.
	var store session.Store
	if client := config.NewRedisClient(); client != nil {
		store = session.NewRedisStore(client, cfg.SessionTTL)
	} else {
		log.Printf("redis unavailable, using in-memory session store")
		store = session.NewMemoryStore()
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New() // Create Echo instance
	e.Renderer = renderer
	e.Use(echomw.Logger())  // request logging
	e.Use(echomw.Recover()) // panic recovery

	bookings := repository.NewBookingRepo(db)
	authHandler := handler.NewAuthHandler(cfg, store)
	bookingHandler := handler.NewBookingHandler(bookings)
	router.Register(e, store, authHandler, bookingHandler)

	// Consume booking status events in the background; the consumer runs
	// its own reconnect loop and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	em "github.com/labstack/echo/v4/middleware"

	"github.com/dfwpark/dfw-parking/internal/config"
	"github.com/dfwpark/dfw-parking/internal/database"
	"github.com/dfwpark/dfw-parking/internal/handler"
	"github.com/dfwpark/dfw-parking/internal/middleware"
	"github.com/dfwpark/dfw-parking/internal/queue"
	"github.com/dfwpark/dfw-parking/internal/repository"
	"github.com/dfwpark/dfw-parking/internal/router"
	queue_publisher "github.com/dfwpark/dfw-parking/internal/service"
)

func main() {
	// .env is optional; real deployments inject the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()

	accounts := repository.NewAccountRepo(db)
	tokens := repository.NewTokenRepo(db)
	hotels := repository.NewHotelRepo(db)
	rooms := repository.NewRoomRepo(db)
	lots := repository.NewLotRepo(db)
	spots := repository.NewSpotRepo(db)
	bookings := repository.NewBookingRepo(db)
	tickets := repository.NewTicketRepo(db)
	stats := repository.NewStatsRepo(db)

	rabbitURL := os.Getenv("RABBITMQ_URL")
	pub := queue_publisher.New(rabbitURL)

	issuer := &handler.JWTIssuer{
		Secret:         cfg.JWTSecret,
		AccessTTLMin:   cfg.AccessTTLMin,
		RefreshTTLDays: cfg.RefreshTTLDays,
		Tokens:         tokens,
	}

	healthH := handler.NewHealthHandler(db, stats)
	authH := handler.NewAuthHandler(cfg, accounts, tokens, issuer)
	publicH := handler.NewPublicHandler(hotels, rooms, lots, spots)
	bookingH := handler.NewBookingHandler(bookings, rooms, spots, pub.PublishBookingEvent)
	hotelAdminH := handler.NewHotelAdminHandler(hotels, rooms, accounts)
	parkingAdminH := handler.NewParkingAdminHandler(lots, spots, accounts)
	adminBookingH := handler.NewAdminBookingHandler(bookings, spots, hotels, lots, pub.PublishBookingEvent)
	userAdminH := handler.NewUserAdminHandler(cfg, accounts)
	supportH := handler.NewSupportHandler(tickets, accounts)

	e := echo.New()
	e.HideBanner = true
	e.Use(em.Recover())
	e.Use(em.CORSWithConfig(em.CORSConfig{AllowOrigins: []string{cfg.CORSOrigin}}))
	e.Use(middleware.HTTPMetrics("dfw-parking"))

	rlCfg := config.LoadRateLimitConfig()
	rlCfg.JWTSecret = cfg.JWTSecret
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	// Responses on authenticated routes are account-scoped, so the
	// cache only ever sees the public browse group.
	browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterInfra(e, healthH)
	router.RegisterPublic(e, publicH, browseCache)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterCustomer(e, bookingH, cfg.JWTSecret)
	router.RegisterTickets(e, supportH, cfg.JWTSecret)
	router.RegisterHotelAdmin(e, hotelAdminH, cfg.JWTSecret)
	router.RegisterParkingAdmin(e, parkingAdminH, cfg.JWTSecret)
	router.RegisterAdminBookings(e, adminBookingH, cfg.JWTSecret)
	router.RegisterUserAdmin(e, userAdminH, cfg.JWTSecret)
	router.RegisterSupport(e, supportH, cfg.JWTSecret)

	go func() {
		if err := queue.StartBookingConsumer(rabbitURL); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

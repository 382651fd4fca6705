package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/sebasquinv/PokerLedger/api/middleware"
	v1 "github.com/sebasquinv/PokerLedger/api/v1"
	"github.com/sebasquinv/PokerLedger/internal/analytics"
	"github.com/sebasquinv/PokerLedger/internal/events"
	"github.com/sebasquinv/PokerLedger/internal/game"
	"github.com/sebasquinv/PokerLedger/internal/rates"
	"github.com/sebasquinv/PokerLedger/internal/session"
	"github.com/sebasquinv/PokerLedger/internal/user"
	"github.com/sebasquinv/PokerLedger/pkg/db"
	"github.com/sebasquinv/PokerLedger/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &user.Profile{}, &session.Session{}, &game.Game{})

	publisher := events.NewRedisPublisher(db.Rdb)

	userService := user.NewUserService(user.NewGormUserRepository(db.DB))
	sessionService := session.NewSessionService(session.NewGormSessionRepository(db.DB), publisher)
	gameRepository := game.NewGormGameRepository(db.DB)
	gameService := game.NewGameService(gameRepository, publisher)
	analyticsService := analytics.NewAnalyticsService(gameRepository)
	rateService := rates.NewRateService(rates.NewCoinGeckoClient(), db.Rdb)
	rateService.StartRefreshScheduler()

	if err := websocket.StartEventSubscriber(db.Rdb); err != nil {
		log.Fatalf("error starting event subscriber: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"), userService)

	protected := api.Group("")
	protected.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterProfileRoutes(protected.Group("/profiles"), userService)
	v1.RegisterSessionRoutes(protected.Group("/sessions"), sessionService)
	v1.RegisterGameRoutes(protected.Group("/games"), gameService)
	v1.RegisterAnalyticsRoutes(protected.Group("/analytics"), analyticsService)
	v1.RegisterRatesRoutes(protected.Group("/rates"), rateService)

	e.GET("/live", websocket.LiveHandler)

	e.Logger.Fatal(e.Start(":8080"))
}

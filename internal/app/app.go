package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/config"
	"github.com/stockpulse/stockpulse/internal/db"
	"github.com/stockpulse/stockpulse/internal/quotes"
	"github.com/stockpulse/stockpulse/internal/repository"
	"github.com/stockpulse/stockpulse/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Watchlist        *config.Watchlist
	AuthService      *service.AuthService
	UserService      *service.UserService
	MarketService    *service.MarketService
	IndicatorService *service.IndicatorService
	NewsService      *service.NewsService
	QuotesService    *quotes.Service
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	watchlist, err := config.LoadWatchlist(cfg.WatchlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)

	// Analytics client shared by the market-facing services
	analyticsClient := analytics.NewClient(cfg.AnalyticsURL, cfg.AnalyticsTimeout)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	userService := service.NewUserService(userRepository)
	marketService := service.NewMarketService(analyticsClient)
	indicatorService := service.NewIndicatorService(analyticsClient)
	newsService := service.NewNewsService(analyticsClient)
	quotesService := quotes.NewService(analyticsClient)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Watchlist:        watchlist,
		AuthService:      authService,
		UserService:      userService,
		MarketService:    marketService,
		IndicatorService: indicatorService,
		NewsService:      newsService,
		QuotesService:    quotesService,
	}, nil
}

func (a *App) Close() error {
	if a.QuotesService != nil {
		a.QuotesService.Stop()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

package routes

import (
	"net/http"

	"github.com/stockpulse/stockpulse/internal/app"
	"github.com/stockpulse/stockpulse/internal/handler"
	"github.com/stockpulse/stockpulse/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	market := handler.NewMarketHandler(app.MarketService, app.QuotesService, app.Watchlist)
	indicators := handler.NewIndicatorHandler(app.IndicatorService)
	news := handler.NewNewsHandler(app.NewsService)
	health := handler.NewHealthHandler()

	mux := http.NewServeMux()

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /users", rateLimiter(auth.Register))
	mux.HandleFunc("POST /users/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /users/me", middleware.RequireAuth(auth.Me))

	// Market data
	mux.HandleFunc("GET /stock-prices", market.StockPrices)
	mux.HandleFunc("GET /watchlist", market.Watchlist)
	mux.HandleFunc("POST /predict", market.Predict)
	// Path spelling is load-bearing; the browser client posts to it as-is
	mux.HandleFunc("POST /Indicotor", indicators.Report)
	mux.HandleFunc("GET /news-impact/{ticker}", news.Impact)

	// Liveness
	mux.HandleFunc("GET /health", health.Health)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.CORS(app.Cfg.CORSOrigin),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}

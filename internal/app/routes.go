package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/database"
	"github.com/keyxmakerx/cardstudio/internal/middleware"
	"github.com/keyxmakerx/cardstudio/internal/plugins/audit"
	"github.com/keyxmakerx/cardstudio/internal/plugins/cards"
	"github.com/keyxmakerx/cardstudio/internal/plugins/classic"
	"github.com/keyxmakerx/cardstudio/internal/plugins/designs"
	"github.com/keyxmakerx/cardstudio/internal/plugins/gallery"
	"github.com/keyxmakerx/cardstudio/internal/plugins/imagegen"
	"github.com/keyxmakerx/cardstudio/internal/templates/layouts"
)

const (
	// maxAPIBodyBytes covers a card with a 512 KiB logo after base64.
	maxAPIBodyBytes = 2 << 20

	// generateLimit is how many image generations one IP may start per minute.
	generateLimit = 10

	// cardWriteLimit is how many card creates and updates one IP may make per minute.
	cardWriteLimit = 30

	// healthTimeout bounds the /healthz store pings.
	healthTimeout = 2 * time.Second
)

// RegisterRoutes sets up all application routes. It registers public routes
// directly and delegates to each plugin's route registration function.
// Background work started here (rate limiter sweepers) stops when ctx ends.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes(ctx context.Context) {
	e := a.Echo

	// Copy request data the layouts read into the render context.
	middleware.LayoutInjector = func(c echo.Context, ctx context.Context) context.Context {
		ctx = layouts.SetCSRFToken(ctx, middleware.GetCSRFToken(c))
		ctx = layouts.SetActivePath(ctx, c.Request().URL.Path)
		return layouts.SetBaseURL(ctx, a.Config.BaseURL)
	}

	// Health check endpoint for container health monitoring.
	e.GET("/healthz", a.health)

	// --- Services ---
	templateService := classic.NewTemplateService(a.Config.Gallery.DefaultCount)
	designService := designs.NewDesignService(a.Config.Designs.Delay, designSource(a.Config.Designs.Seed))
	auditService := audit.NewAuditService(audit.NewAuditRepository(a.DB))
	cardService := cards.NewCardService(cards.NewCardRepository(a.DB), templateService, auditService)

	var imageCache imagegen.Cache
	if a.Redis != nil && a.Config.ImageGen.CacheTTL > 0 {
		imageCache = imagegen.NewRedisCache(a.Redis)
	}
	imageService := imagegen.NewImageService(
		imagegen.NewHTTPClient(a.Config.ImageGen),
		imageCache,
		a.Config.ImageGen.CacheTTL,
		imagegen.NewLogRepository(a.DB),
	)

	// --- Pages ---
	gallery.RegisterRoutes(e, gallery.NewHandler(templateService, cardService, designService))

	// --- API Routes ---
	api := e.Group("/api", middleware.BodyLimit(maxAPIBodyBytes))
	classic.RegisterRoutes(api, classic.NewHandler(templateService))
	designs.RegisterRoutes(api, designs.NewHandler(designService))
	cards.RegisterRoutes(api, cards.NewHandler(cardService),
		middleware.RateLimit(ctx, cardWriteLimit, time.Minute))
	var operator echo.MiddlewareFunc
	if a.Config.OperatorToken != "" {
		operator = middleware.RequireOperatorToken(a.Config.OperatorToken)
	}
	imagegen.RegisterRoutes(api, imagegen.NewHandler(imageService),
		middleware.RateLimit(ctx, generateLimit, time.Minute), operator)
}

// health reports whether MariaDB and Redis answer.
func (a *App) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := database.Health(ctx, a.DB, a.Redis); err != nil {
		slog.Warn("health check failed", slog.Any("error", err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  apperror.SafeMessage(err),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// designSource returns the random source for design suggestions. A zero
// seed draws one from the runtime generator.
func designSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

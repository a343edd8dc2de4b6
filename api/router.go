// Package api contains all endpoints available
package api

import (
	"net/http"
	"time"

	"parasport/games-api/config"
	"parasport/games-api/middleware"
	"parasport/games-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Auth   *config.Auth

	store *persist.MemoryStore
}

// NewRouter wires every endpoint. The database handle and the auth
// config are injected so tests can run against an in-memory database
// with a known secret.
func NewRouter(d *gorm.DB, auth *config.Auth) *API {
	a := &API{
		DB:    d,
		Argon: security.New(),
		Auth:  auth,
		store: persist.NewMemoryStore(time.Minute),
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	// Framework-level failures answer in JSON too, no error path may
	// return an HTML body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	jwt := middleware.NewJWTMiddleware(auth)
	jsonBody := middleware.BodySizeLimiter(1 << 20)
	loginLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})

	// HEAD /heartbeat 		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	// HEAD /validate		-> Validates a bearer token
	router.HEAD("/validate", jwt, a.Validate)

	// POST /register 		-> Registers a new API user
	router.POST("/register", loginLimit, jsonBody, a.UserRegister)

	// POST /login 			-> Logs in a user and returns a bearer token
	router.POST("/login", loginLimit, jsonBody, a.UserLogin)

	regions := router.Group("/regions")
	{
		// GET /regions			-> Returns all regions
		regions.GET("", a.cacheFor(30), a.RegionList)

		// GET /regions/:code		-> Returns one region by NOC code
		regions.GET("/:code", a.RegionFetch)

		// POST /regions		-> Creates a new region
		regions.POST("", jwt, jsonBody, a.RegionCreate)

		// PATCH /regions/:code		-> Updates changed fields of a region
		regions.PATCH("/:code", jwt, jsonBody, a.RegionUpdate)

		// DELETE /regions/:code	-> Deletes a region by NOC code
		regions.DELETE("/:code", jwt, a.RegionDelete)
	}

	events := router.Group("/events")
	{
		// GET /events			-> Returns all events
		events.GET("", a.cacheFor(30), a.EventList)

		// GET /events/:id		-> Returns one event by ID
		events.GET("/:id", a.EventFetch)

		// POST /events			-> Creates a new event
		events.POST("", jwt, jsonBody, a.EventCreate)

		// PATCH /events/:id		-> Updates changed fields of an event
		events.PATCH("/:id", jwt, jsonBody, a.EventUpdate)

		// DELETE /events/:id		-> Deletes an event by ID
		events.DELETE("/:id", jwt, a.EventDelete)
	}

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func (a *API) cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(a.store, time.Second*time.Duration(sec))
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/interfaces/http/handlers"
	"hackathon-catalog.backend/internal/interfaces/http/response"
)

const serviceName = "hackathon-catalog-backend"

type routeDeps struct {
	studentHandler      *handlers.StudentHandler
	mentorHandler       *handlers.MentorHandler
	experimentalHandler *handlers.ExperimentalChallengeHandler
	realHandler         *handlers.RealChallengeHandler
	teamHandler         *handlers.TeamHandler
	idempotency         gin.HandlerFunc
}

type resourceHandler interface {
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	guard := d.idempotency
	if guard == nil {
		guard = func(c *gin.Context) { c.Next() }
	}

	api := r.Group("/api")
	{
		registerResource(api, "/estudiantes", d.studentHandler, guard)
		registerResource(api, "/mentores", d.mentorHandler, guard)
		registerResource(api, "/retos_experimentales", d.experimentalHandler, guard)
		registerResource(api, "/retos_reales", d.realHandler, guard)

		teams := api.Group("/equipos")
		{
			teams.GET("", d.teamHandler.GetTeams)
			teams.POST("", guard, d.teamHandler.CreateTeam)
			teams.PUT("", d.teamHandler.UpdateTeam)
			teams.DELETE("", d.teamHandler.DeleteTeam)
			teams.POST("/miembros", guard, d.teamHandler.AttachMember)
		}
	}
}

func registerResource(g *gin.RouterGroup, path string, h resourceHandler, guard gin.HandlerFunc) {
	g.GET(path, h.Get)
	g.POST(path, guard, h.Create)
	g.PUT(path, h.Update)
	g.DELETE(path, h.Delete)
}

// registerFallbacks answers unsupported methods on known paths with 405.
func registerFallbacks(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, domainerrors.MethodNotAllowed())
	})
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithStatus(c, http.StatusNotFound, "Not found")
	})
}

func registerHealthRoute(r *gin.Engine, ping func(context.Context) error) {
	r.GET("/health", func(c *gin.Context) {
		status, db := http.StatusOK, "up"
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				status, db = http.StatusServiceUnavailable, "down"
			}
		}
		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{
			"status":   state,
			"service":  serviceName,
			"database": db,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, g prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}

// newCORSHandler wraps the router so browser clients on the allowed origins
// can call the API, including preflight requests.
func newCORSHandler(origins []string, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Idempotency-Hit"},
		AllowCredentials: true,
	}).Handler(h)
}

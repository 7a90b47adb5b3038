package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/handler"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/metrics"
	"github.com/osse101/Milestone_Go/internal/middleware"
	"github.com/osse101/Milestone_Go/internal/network"
	"github.com/osse101/Milestone_Go/internal/sse"
)

// Config holds the HTTP listener settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Services are the collaborators the routes dispatch to.
// EventLog, Network, Store, Hub and Engagement may be nil.
type Services struct {
	Achievements  handler.AchievementService
	Challenges    handler.ChallengeService
	Subscription  handler.SubscriptionService
	Analytics     handler.AnalyticsService
	EventLog      handler.EventLogQuerier
	Network       *network.Simulator
	Activity      handler.ActivityService
	Topics        handler.TopicService
	Preferences   handler.PreferenceService
	Notifications handler.NotificationFeed
	Store         handler.Pinger
	Hub           *sse.Hub
	Engagement    *middleware.EngagementTracker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the chi router with the middleware stack and every route
func NewRouter(cfg Config, svc Services) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard(cfg.TrustedProxies, clock.NewReal())

	r.Use(SecurityHeaders())
	r.Use(RequireAPIKey(cfg.APIKey, guard))
	r.Use(RateLimit(guard))
	r.Use(LimitBody(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if svc.Engagement != nil {
			r.Use(svc.Engagement.Track)
		}

		achievements := handler.NewAchievementHandler(svc.Achievements)
		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", achievements.HandleList)
			r.Get("/unlocked", achievements.HandleUnlocked)
			r.Post("/progress", achievements.HandleProgress)
			r.Post("/unlock", achievements.HandleUnlock)
			r.Post("/recompute", achievements.HandleRecompute)
			r.Get("/{id}", achievements.HandleGet)
		})
		r.Get("/progress", achievements.HandleUserProgress)

		challenges := handler.NewChallengeHandler(svc.Challenges)
		r.Route("/challenge", func(r chi.Router) {
			r.Get("/", challenges.HandleGetCurrent)
			r.Post("/progress", challenges.HandleProgress)
			r.Get("/rewards", challenges.HandleRewards)
		})

		subscription := handler.NewSubscriptionHandler(svc.Subscription)
		r.Route("/subscription", func(r chi.Router) {
			r.Get("/", subscription.HandleStatus)
			r.Post("/tier", subscription.HandleSetTier)
			r.Post("/trial", subscription.HandleStartTrial)
			r.Get("/features", subscription.HandleFeatures)
			r.Get("/features/{id}", subscription.HandleFeature)
			r.Post("/purchase", subscription.HandlePurchase)
		})

		analytics := handler.NewAnalyticsHandler(svc.Analytics, svc.EventLog)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/events", analytics.HandleEvents)
			r.Post("/events", analytics.HandleTrack)
			r.Delete("/events", analytics.HandleClear)
			r.Get("/summary", analytics.HandleSummary)
			r.Get("/export", analytics.HandleExport)
			r.Get("/user-properties", analytics.HandleUserProperties)
			r.Post("/user-properties", analytics.HandleSetUserProperty)
			r.Get("/log", analytics.HandleEventLog)
		})

		if svc.Network != nil {
			networkHandler := handler.NewNetworkHandler(svc.Network)
			r.Route("/network", func(r chi.Router) {
				r.Get("/", networkHandler.HandleStatus)
				r.Post("/availability", networkHandler.HandleSetAvailability)
				r.Post("/latency", networkHandler.HandleSetLatency)
				r.Post("/call", networkHandler.HandleCall)
			})
		}

		activity := handler.NewActivityHandler(svc.Activity)
		r.Route("/activity", func(r chi.Router) {
			r.Get("/tap", activity.HandleTapCount)
			r.Post("/tap", activity.HandleTap)
			r.Post("/tap/reset", activity.HandleResetTaps)
			r.Post("/screen", activity.HandleScreenView)
			r.Post("/share", activity.HandleShare)
		})
		r.Get("/dashboard", activity.HandleDashboard)
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", activity.HandleGetProfile)
			r.Put("/", activity.HandleUpdateProfile)
			r.Get("/photo", activity.HandleGetPhoto)
			r.Post("/photo", activity.HandleSetPhoto)
			r.Delete("/photo", activity.HandleRemovePhoto)
		})

		topics := handler.NewTopicHandler(svc.Topics)
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topics.HandleList)
			r.Post("/", topics.HandleAdd)
			r.Post("/remove", topics.HandleRemove)
			r.Post("/reset", topics.HandleReset)
			r.Post("/view", topics.HandleView)
			r.Post("/complete", topics.HandleComplete)
			r.Post("/favorite", topics.HandleFavorite)
			r.Post("/rate", topics.HandleRate)
		})

		settings := handler.NewSettingsHandler(svc.Preferences)
		r.Get("/settings", settings.HandleGet)
		r.Put("/settings", settings.HandleUpdate)

		r.Get("/notifications", handler.HandleNotifications(svc.Notifications))

		if svc.Hub != nil {
			r.Get("/events/stream", sse.Handler(svc.Hub))
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps server-sent event streams working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

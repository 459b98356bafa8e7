// Package rest implements the HTTP API service.
package rest

import (
	"net/http"
	"time"

	"github.com/designerscolony/colony/internal/database"
	"github.com/designerscolony/colony/internal/kv"
	"github.com/designerscolony/colony/internal/rest/handler"
	"github.com/designerscolony/colony/internal/session"
	"github.com/designerscolony/colony/internal/setup/config"
	"github.com/designerscolony/colony/internal/tracker"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	jobHandler      *handler.JobHandler
	referralHandler *handler.ReferralHandler
	talkHandler     *handler.TalkHandler
	trackerHandler  *handler.TrackerHandler
	sessionHandler  *handler.SessionHandler
}

// NewServer creates a new REST API server.
func NewServer(db database.Client, kvManager *kv.Manager, cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	sessionClient, err := kvManager.GetClient(kv.SessionDBIndex)
	if err != nil {
		return nil, err
	}

	trackerClient, err := kvManager.GetClient(kv.TrackerDBIndex)
	if err != nil {
		return nil, err
	}

	cacheClient, err := kvManager.GetClient(kv.CacheDBIndex)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(sessionClient, logger)

	limit := cfg.Tracker.FreeTierLimit
	if limit <= 0 {
		limit = tracker.DefaultFreeTierLimit
	}

	// The controller registers its migration with the session store, so
	// the login edge moves temporary rows before the login call returns.
	controller := tracker.NewController(trackerClient, sessions, limit, logger)

	// Create server instance with handlers
	server := &Server{
		jobHandler:      handler.NewJobHandler(db, &cfg.Board, logger),
		referralHandler: handler.NewReferralHandler(db, logger),
		talkHandler:     handler.NewTalkHandler(db, cacheClient, logger),
		trackerHandler:  handler.NewTrackerHandler(controller, logger),
		sessionHandler:  handler.NewSessionHandler(sessions, logger),
	}

	// Create base router
	router := bunrouter.New()

	// Create API routes group
	router.Use(requestLogging(logger)).WithGroup("/v1", func(g *bunrouter.Group) {
		g.GET("/jobs", server.jobHandler.GetJobs)
		g.POST("/jobs", server.jobHandler.CreateJob)
		g.POST("/jobs/:id/apply", server.jobHandler.Apply)

		g.GET("/referrals", server.referralHandler.GetReferrals)
		g.POST("/referrals", server.referralHandler.CreateReferral)
		g.POST("/referrals/:id/report", server.referralHandler.ReportReferral)

		g.GET("/talks", server.talkHandler.GetTalks)
		g.POST("/talks", server.talkHandler.CreateTalk)
		g.GET("/talks/:id", server.talkHandler.GetTalk)
		g.PUT("/talks/:id", server.talkHandler.UpdateTalk)
		g.DELETE("/talks/:id", server.talkHandler.DeleteTalk)

		g.GET("/tracker/:owner/applications", server.trackerHandler.GetApplications)
		g.POST("/tracker/:owner/applications", server.trackerHandler.AddApplication)
		g.PATCH("/tracker/:owner/applications/:id", server.trackerHandler.UpdateApplication)
		g.DELETE("/tracker/:owner/applications/:id", server.trackerHandler.DeleteApplication)

		g.POST("/session/:owner/login", server.sessionHandler.Login)
		g.POST("/session/:owner/logout", server.sessionHandler.Logout)
		g.GET("/session/:owner", server.sessionHandler.GetSession)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router), nil
}

// requestLogging logs each request with its duration.
func requestLogging(logger *zap.Logger) bunrouter.MiddlewareFunc {
	log := logger.Named("rest")

	return func(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
		return func(w http.ResponseWriter, req bunrouter.Request) error {
			start := time.Now()
			err := next(w, req)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				log.Error("Request failed", append(fields, zap.Error(err))...)
			} else {
				log.Debug("Request handled", fields...)
			}

			return err
		}
	}
}

package server

import (
	"context"
	"log"
	"net/http"
	"time"

	adapterreporting "github.com/thermovote/thermovote/internal/adapters/reporting"
	"github.com/thermovote/thermovote/internal/adapters/web"
	"github.com/thermovote/thermovote/internal/adapters/web/handlers"
	"github.com/thermovote/thermovote/internal/core/ports"
	"github.com/thermovote/thermovote/internal/core/services/reporting"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr      string
	StaticDir string
	Service   ports.ZoneService
	Presence  ports.PresenceTracker
	WSManager *web.WSManager

	ZoneHandler   *handlers.ZoneHandler
	VoteHandler   *handlers.VoteHandler
	StatsHandler  *handlers.StatsHandler
	ReportHandler *handlers.ReportHandler
	srv           *http.Server
}

// NewServer creates a new web server.
func NewServer(addr, staticDir string, service ports.ZoneService, history ports.HistoryService, presence ports.PresenceTracker, reportGenerator *reporting.ComfortReportGenerator, pdfExporter *adapterreporting.PDFExporter) *Server {
	return &Server{
		Addr:      addr,
		StaticDir: staticDir,
		Service:   service,
		Presence:  presence,

		WSManager:     web.NewWSManager(service),
		ZoneHandler:   handlers.NewZoneHandler(service, history),
		VoteHandler:   handlers.NewVoteHandler(service),
		StatsHandler:  handlers.NewStatsHandler(service),
		ReportHandler: handlers.NewReportHandler(reportGenerator, pdfExporter),
	}
}

// Run starts the server and the broadcaster.
func (s *Server) Run(ctx context.Context) error {
	// Start WS Manager
	s.WSManager.Start(ctx)

	// Setup Routes
	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "thermovote-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown implementation
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

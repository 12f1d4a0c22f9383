package server

import (
	"context"
	"io/fs"
	"net/http"
	"regexp"

	"github.com/Artyom17/webxr-input-profiles/internal/hub"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"go.uber.org/zap"
)

type Server struct {
	log         *zap.Logger
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	session     *Session
	frontendFS  fs.FS
	addr        string
	httpServer  *http.Server
}

func New(log *zap.Logger, h *hub.Hub, b *hub.Broadcaster, session *Session, frontendFS fs.FS, addr string) *Server {
	return &Server{
		log:         log,
		hub:         h,
		broadcaster: b,
		session:     session,
		frontendFS:  frontendFS,
		addr:        addr,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.log, s.hub, s.broadcaster, s.session))

	// Static files (frontend), minified on the way out
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	mux.Handle("/", m.Middleware(http.FileServer(http.FS(s.frontendFS))))

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.log.Info("http server listening", zap.String("addr", s.addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.log.Info("shutting down http server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

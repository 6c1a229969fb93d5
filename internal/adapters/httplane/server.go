package httplane

import (
	"context"
	"crypto/subtle"
	"io"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jose-valero/bowling-bot/internal/app/service"
)

const SecretHeader = "X-Lane-Secret"

type LaneHandler interface {
	Handle(ctx context.Context, body []byte) (service.LaneResult, error)
}

type Server struct {
	secret string
	lanes  LaneHandler
	mux    *http.ServeMux
}

// New: con secret vacío el webhook de pistas queda apagado (404), health y metrics siguen.
func New(secret string, lanes LaneHandler) *Server {
	s := &Server{secret: secret, lanes: lanes, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
	if s.secret != "" && s.lanes != nil {
		s.mux.HandleFunc("/lanes/webhook", s.handleLaneWebhook)
	}
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"ok":true}`)
}

func (s *Server) handleLaneWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), []byte(s.secret)) != 1 {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	_ = r.Body.Close()
	if err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}

	res, err := s.lanes.Handle(r.Context(), body)
	code, out := service.LaneResponse(res, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(out)
}

func (s *Server) Start(addr string) {
	log.Printf("🌐 HTTP listening on %s", addr)
	if err := http.ListenAndServe(addr, s.mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}

package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server wires HTTP handlers.
type Server struct {
	handler *Handler
}

// NewServer creates the HTTP router for the RPC surface.
func NewServer(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{handler: handler}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, &Error{
			Code:    ErrInvalidReq,
			Message: "invalid request",
			Data:    ErrorData{Kind: KindValidation},
		})
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		WriteError(w, req.ID, rpcError(err))
		return
	}

	WriteResult(w, req.ID, result)
}

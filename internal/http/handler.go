package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"committee-service/internal/model"
	"committee-service/internal/page"
)

// CommitteeService - операции над комитетами, нужные обработчикам.
type CommitteeService interface {
	List(ctx context.Context) ([]model.Committee, error)
	Add(ctx context.Context, fullName, shortName string) ([]model.Committee, error)
	Rename(ctx context.Context, id int64, fullName, shortName string) ([]model.Committee, error)
	Delete(ctx context.Context, id int64) ([]model.Committee, error)
}

// UserService - чтение профилей пользователей.
type UserService interface {
	GetUser(ctx context.Context, id int64) (model.User, error)
}

type Handler struct {
	Committees     CommitteeService
	Users          UserService
	Visits         *page.Counter
	Log            *slog.Logger
	AllowedOrigins []string

	renderVisit func(n uint32) templ.Component
}

func NewHandler(committees CommitteeService, users UserService, log *slog.Logger, allowedOrigins []string) *Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Handler{
		Committees:     committees,
		Users:          users,
		Visits:         &page.Counter{},
		Log:            log,
		AllowedOrigins: allowedOrigins,
		renderVisit:    page.Visit,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/test.html", h.handleTestPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/committees", h.handleCommitteeList)
		r.Post("/committees", h.handleCommitteeAdd)
		r.Post("/rename_committees", h.handleCommitteeRename)
		r.Post("/delete_committee", h.handleCommitteeDelete)
		r.Get("/user/{user_id}", h.handleUserGet)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/me1pik/admin-backoffice/admins"
	"github.com/me1pik/admin-backoffice/catalog"
	"github.com/me1pik/admin-backoffice/internal/config"
	"github.com/me1pik/admin-backoffice/members"
	"github.com/me1pik/admin-backoffice/orders"
	"github.com/me1pik/admin-backoffice/support"
	"github.com/me1pik/admin-backoffice/token"
	"github.com/me1pik/admin-backoffice/token/refresh"
)

// Repos holds all repository dependencies for the back-office API
type Repos struct {
	Admins   admins.Repo
	Members  members.Repo
	Products catalog.ProductRepo
	Brands   catalog.BrandRepo
	Orders   orders.OrderRepo
	Rentals  orders.RentalRepo
	Tickets  support.TicketRepo
	Notices  support.NoticeRepo
	Terms    support.TermRepo
	FAQs     support.FAQRepo
}

func (r Repos) validate() error {
	missing := []string{}
	if r.Admins == nil {
		missing = append(missing, "Admins")
	}
	if r.Members == nil {
		missing = append(missing, "Members")
	}
	if r.Products == nil {
		missing = append(missing, "Products")
	}
	if r.Brands == nil {
		missing = append(missing, "Brands")
	}
	if r.Orders == nil {
		missing = append(missing, "Orders")
	}
	if r.Rentals == nil {
		missing = append(missing, "Rentals")
	}
	if r.Tickets == nil {
		missing = append(missing, "Tickets")
	}
	if r.Notices == nil {
		missing = append(missing, "Notices")
	}
	if r.Terms == nil {
		missing = append(missing, "Terms")
	}
	if r.FAQs == nil {
		missing = append(missing, "FAQs")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing repos: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Server struct {
	env     string // Environment (e.g., "DEV", "production")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	repos   Repos
	tokens  *token.Manager
	refresh *refresh.Manager
	log     zerolog.Logger
}

func New(cfg config.Config, repos Repos, tokens *token.Manager, refreshMgr *refresh.Manager) (*Server, error) {
	if err := repos.validate(); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}
	if tokens == nil {
		return nil, fmt.Errorf("[Server New] token manager is required")
	}
	if refreshMgr == nil {
		return nil, fmt.Errorf("[Server New] refresh token manager is required")
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  cfg,
		repos:   repos,
		tokens:  tokens,
		refresh: refreshMgr,
		log:     log.With().Str("component", "server").Logger(),
	}
	s.env = cfg.GetEnv()

	// Bootstrap: ensure a super admin account exists
	if err := s.InitialiseSystem(context.Background()); err != nil {
		return nil, fmt.Errorf("[Server New] failed to initialise the system: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

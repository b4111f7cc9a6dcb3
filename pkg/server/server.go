package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/config"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
	gormstore "github.com/atelier-web/atelier/pkg/server/store/gorm"
	"github.com/atelier-web/atelier/pkg/uploads"
)

// Server bundles the router, storage and middleware shared by the endpoint
// registration functions.
type Server struct {
	Router  *mux.Router
	DB      *gorm.DB
	Config  *config.Config
	Tokens  *authn.TokenAuthority
	Uploads *uploads.Store

	Authenticator *middleware.Authenticator

	Users    store.UsersStore
	Tags     store.TagsStore
	Articles store.ArticlesStore
	Projects store.ProjectsStore
	Clients  store.ClientsStore
	Company  store.CompanyStore
	Contacts store.ContactsStore

	srv *http.Server
}

func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	tokens *authn.TokenAuthority,
	uploadStore *uploads.Store,
) *Server {
	router := mux.NewRouter()

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		DB:            db,
		Config:        cfg,
		Tokens:        tokens,
		Uploads:       uploadStore,
		Authenticator: middleware.NewAuthenticator(tokens),
		Users:         gormstore.NewUsersStore(db),
		Tags:          gormstore.NewTagsStore(db),
		Articles:      gormstore.NewArticlesStore(db),
		Projects:      gormstore.NewProjectsStore(db),
		Clients:       gormstore.NewClientsStore(db),
		Company:       gormstore.NewCompanyStore(db),
		Contacts:      gormstore.NewContactsStore(db),
		srv:           srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	stripe "github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/invitations"
	"github.com/vowlink/wedding-invites-api/models"
)

const connectTimeout = 5 * time.Second

// App stores the router and store handles, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	Users        databases.UserDatabase
	Sessions     databases.SessionDatabase
	Templates    databases.TemplateDatabase
	Invitations  databases.InvitationDatabase
	Payments     databases.PaymentDatabase
	DegradedMode bool
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{Users: a.Users, Sessions: a.Sessions}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	manager := invitations.NewManager(a.Invitations, a.Templates, a.Config.BaseURL)

	authHandler := Auth{UDB: a.Users, SDB: a.Sessions}
	inv := Invitation{Manager: manager, UDB: a.Users}
	t := Template{DB: a.Templates, UDB: a.Users}
	pay := Payment{DB: a.Payments, UDB: a.Users}
	up := Upload{UDB: a.Users}
	adm := Admin{UDB: a.Users, IDB: a.Invitations, TDB: a.Templates}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(authHandler.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/google", http.HandlerFunc(authHandler.GoogleAuthHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(m.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/me", api.Middleware(http.HandlerFunc(authHandler.MeHandler))).Methods("GET")

	apiCreate.Handle("/templates", api.Middleware(http.HandlerFunc(t.TemplateListHandler))).Methods("GET")
	apiCreate.Handle("/templates", api.Middleware(http.HandlerFunc(t.TemplateCreateHandler))).Methods("POST")
	apiCreate.Handle("/templates/generate-ai", api.Middleware(http.HandlerFunc(t.GenerateTemplateHandler))).Methods("POST")
	apiCreate.Handle("/templates/{template_id}", api.Middleware(http.HandlerFunc(t.TemplateByIDHandler))).Methods("GET")

	apiCreate.Handle("/invitations", api.Middleware(http.HandlerFunc(inv.CreateInvitationHandler))).Methods("POST")
	apiCreate.Handle("/invitations", api.Middleware(http.HandlerFunc(inv.InvitationListHandler))).Methods("GET")
	apiCreate.Handle("/invitations/{invitation_id}", api.Middleware(http.HandlerFunc(inv.InvitationByIDHandler))).Methods("GET")

	apiCreate.Handle("/public/invitations/{url_slug}", http.HandlerFunc(inv.PublicInvitationHandler)).Methods("GET")

	apiCreate.Handle("/payments/checkout/session", api.Middleware(http.HandlerFunc(pay.CreateCheckoutSessionHandler))).Methods("POST")
	apiCreate.Handle("/payments/checkout/status/{session_id}", api.Middleware(http.HandlerFunc(pay.CheckoutStatusHandler))).Methods("GET")
	apiCreate.Handle("/webhook/stripe", http.HandlerFunc(pay.StripeWebhookHandler)).Methods("POST")

	apiCreate.Handle("/uploads/signature", api.Middleware(http.HandlerFunc(up.GenerateSignatureHandler))).Methods("POST")

	apiCreate.Handle("/admin/login", http.HandlerFunc(adm.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/stats", api.AdminMiddleware(http.HandlerFunc(adm.AdminStatsHandler))).Methods("GET")
	apiCreate.Handle("/init-templates", api.AdminMiddleware(http.HandlerFunc(t.InitTemplatesHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router.
// An unreachable mongo is not fatal: the app degrades to a volatile in-memory
// store so invitations keep working, and says so exactly once in the logs.
func (a *App) Initialize() error {
	if err := a.connectMongo(); err != nil {
		zap.S().With(err).Warn("durable database unreachable, continuing with volatile in-memory storage; data is lost on restart")
		mem := databases.NewMemoryStore()
		a.Users = mem.Users()
		a.Sessions = mem.Sessions()
		a.Templates = mem.Templates()
		a.Invitations = mem.Invitations()
		a.Payments = mem.Payments()
		a.DegradedMode = true
	}

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		zap.S().Warn("STRIPE_SECRET_KEY is not set, payment routes will fail")
	}
	stripe.Key = stripeKey

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) connectMongo() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		return err
	}
	if err := client.Connect(); err != nil {
		return err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), connectTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx); err != nil {
		return err
	}

	dbHelper := databases.NewDatabase(&a.Config, client)
	a.Users = databases.NewUserDatabase(dbHelper)
	a.Sessions = databases.NewSessionDatabase(dbHelper)
	a.Templates = databases.NewTemplateDatabase(dbHelper)
	a.Invitations = databases.NewInvitationDatabase(dbHelper)
	a.Payments = databases.NewPaymentDatabase(dbHelper)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), connectTimeout)
	defer idxCancel()
	if err := a.Invitations.EnsureIndexes(idxCtx); err != nil {
		zap.S().With(err).Warn("failed to ensure invitation indexes")
	}
	if err := a.Users.EnsureIndexes(idxCtx); err != nil {
		zap.S().With(err).Warn("failed to ensure user indexes")
	}

	zap.S().Info("wedding-invites-api has connected to the database")
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

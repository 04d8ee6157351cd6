package main

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/jannu-assistant/internal/ai"
	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
	"github.com/Vovarama1992/jannu-assistant/internal/auth"
	"github.com/Vovarama1992/jannu-assistant/internal/chat"
	"github.com/Vovarama1992/jannu-assistant/internal/config"
	"github.com/Vovarama1992/jannu-assistant/internal/db"
	"github.com/Vovarama1992/jannu-assistant/internal/middleware"
	"github.com/Vovarama1992/jannu-assistant/internal/orders"
	"github.com/Vovarama1992/jannu-assistant/internal/products"
)

func main() {
	cfg := config.Load()
	log := cfg.NewLogger()

	// --- storage ---
	chatRepo := chat.NewMemoryRepo()
	orderRepo := orders.NewMemoryRepo()
	var userRepo auth.UserRepository = auth.NewInMemoryUserRepository()
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("database unavailable")
		}
		defer conn.Close()
		chatRepo = chat.NewRepo(conn)
		orderRepo = orders.NewRepo(conn)
		userRepo = auth.NewPostgresUserRepository(conn)
	} else {
		log.Warn("DATABASE_URL is not set, using in-memory storage")
	}

	// --- assistant ---
	var engineOpts []assistant.Option
	if cfg.WordBoundaries {
		engineOpts = append(engineOpts, assistant.WithWordBoundaries())
	}
	engine := assistant.NewEngine(engineOpts...)

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		log.WithError(err).Fatal("snowflake node")
	}

	// --- services ---
	chatService := chat.NewService(chatRepo, remoteAI(cfg, engine.Catalog(), log), engine, log)
	orderService := orders.NewService(orderRepo, orders.NewSimulatedPayments(log), node, log)

	if cfg.JWTSecret == config.DevJWTSecret {
		log.Warn("JWT_SECRET is not set, signing tokens with the development secret")
	}
	authService := auth.NewService(userRepo, auth.NewTokens(cfg.JWTSecret, 0), log)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.WithError(err).Fatal("seed admin")
		}
	}
	protect := middleware.Protect(authService, log)

	// --- router ---
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendURL},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.APIKeyHeader},
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.APIKeys, log))

		chat.RegisterRoutes(r, chat.NewHandler(chatService))
		products.RegisterRoutes(r, products.NewHandler(engine.Catalog()))
		auth.RegisterRoutes(r, auth.NewHandler(authService), protect, middleware.AdminOnly)
		orders.RegisterRoutes(r, orders.NewHandler(orderService), orders.Guards{
			Identify: middleware.Identify(authService),
			Protect:  protect,
			Admin:    middleware.AdminOnly,
		})
	})

	log.WithField("port", cfg.Port).Info("listening")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

// remoteAI picks OpenAI when a key is configured, then the chat proxy.
// nil means every reply comes from the local assistant.
func remoteAI(cfg config.Config, catalog *assistant.Catalog, log *logrus.Logger) ai.AI {
	switch {
	case cfg.OpenAIKey != "":
		log.WithField("model", cfg.OpenAIModel).Info("remote ai: openai")
		return ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, catalog, log)
	case cfg.AIProxyURL != "":
		log.WithField("url", cfg.AIProxyURL).Info("remote ai: proxy")
		return ai.NewProxyClient(cfg.AIProxyURL)
	default:
		log.Info("remote ai disabled, local assistant only")
		return nil
	}
}

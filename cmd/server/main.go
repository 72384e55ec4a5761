package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melvinb/postfeed/internal/account"
	"github.com/melvinb/postfeed/internal/auth"
	"github.com/melvinb/postfeed/internal/config"
	"github.com/melvinb/postfeed/internal/middleware"
	"github.com/melvinb/postfeed/internal/post"
	"github.com/melvinb/postfeed/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	codec := auth.NewCodec([]byte(cfg.JWTSecret))

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	mongoDB := mongoClient.Database(cfg.MongoDB)

	accounts := store.NewAccountStore(mongoDB, cfg.MongoUserCollection)
	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo ensure indexes: %v", err)
	}
	posts := store.NewPostStore(mongoDB, cfg.MongoPostCollection)

	// ── PostgreSQL audit trail (optional) ────────────────────
	var audit account.Auditor
	if cfg.PostgresDSN != "" {
		pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pgPool.Close()
		auditLog := store.NewAuditLog(pgPool)
		if err := auditLog.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		audit = auditLog
	}

	// ── Redis feed cache (optional) ──────────────────────────
	var feedCache post.FeedCache
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		feedCache = store.NewFeedCache(rdb)
	}

	// ── Handlers ─────────────────────────────────────────────
	accountHandler := account.NewHandler(account.NewService(accounts, codec, audit))
	postHandler := post.NewHandler(post.NewService(posts, accounts), feedCache)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/healthchecker", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"postfeed backend up"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)
	})

	r.Route("/user", func(r chi.Router) {
		r.Use(middleware.RequireAuth(codec))
		r.Get("/me", accountHandler.Me)
		r.Put("/edit", accountHandler.Edit)
		r.Delete("/remove", accountHandler.Remove)
	})

	r.Route("/post", func(r chi.Router) {
		r.Use(middleware.RequireAuth(codec))
		r.Post("/", postHandler.Create)
		r.Get("/", postHandler.List)
		r.Get("/me", postHandler.ListMine)
		r.Get("/{id}", postHandler.Get)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}

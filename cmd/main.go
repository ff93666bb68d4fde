package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/bustimel/routebot/internal/ai"
	"github.com/bustimel/routebot/internal/bot"
	"github.com/bustimel/routebot/internal/catalog"
	"github.com/bustimel/routebot/internal/engine"
	"github.com/bustimel/routebot/internal/routesapi"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// --- Catalog source: postgres if configured, routes.json otherwise ---
	var loader catalog.Loader
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}
		loader = catalog.NewPostgresLoader(db)
	} else {
		path := os.Getenv("ROUTES_FILE")
		if path == "" {
			path = "routes.json"
		}
		loader = catalog.NewFileLoader(path)
	}

	routes, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}

	// Кривий каталог — фатально: боту нема з чого відповідати.
	eng, err := engine.New(routes, engine.Config{})
	if err != nil {
		log.Fatalf("catalog invalid: %v", err)
	}
	log.Printf("catalog loaded: %d routes", len(routes))

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Bot module wiring ---
	var aiClient ai.AI
	if c := ai.NewOpenAIClientFromEnv(); c != nil {
		aiClient = c
		log.Println("ai fallback enabled")
	}

	var outbound bot.Outbound
	if os.Getenv("BOT_TOKEN") != "" {
		outbound = bot.NewTelegramOutbound()
	} else {
		// веб-чат без месенджера: відповіді тільки синхронні
		outbound = bot.NopOutbound{}
		log.Println("BOT_TOKEN not set, webhook replies are logged only")
	}
	svc := bot.NewService(eng, aiClient, outbound)
	limiter := bot.NewChatLimiter(1, 5)
	handler := bot.NewHandler(svc, limiter)

	bot.RegisterRoutes(r, handler)
	routesapi.RegisterRoutes(r, routesapi.NewHandler(eng))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

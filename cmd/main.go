package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Vovarama1992/linkguard/internal/ai"
	"github.com/Vovarama1992/linkguard/internal/chat"
	"github.com/Vovarama1992/linkguard/internal/config"
	"github.com/Vovarama1992/linkguard/internal/urlcheck"
)

func main() {
	cfg := config.Load()

	persona, err := ai.LoadPersona(cfg.PersonaFile)
	if err != nil {
		log.Fatalf("persona load error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Chat module wiring ---
	aiClient := ai.NewOpenAIClient(ai.OpenAIOptions{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Persona: persona,
	})
	chat.RegisterRoutes(r, chat.NewHandler(chat.NewService(aiClient)))

	// --- URL check module wiring ---
	urlhaus := urlcheck.NewURLhausOutbound(urlcheck.URLhausOptions{
		Endpoint:  cfg.URLhausEndpoint,
		AuthKey:   cfg.URLhausAuthKey,
		UserAgent: cfg.URLhausUserAgent,
		Timeout:   cfg.URLhausTimeout,
	})
	urlcheck.RegisterRoutes(r, urlcheck.NewHandler(urlcheck.NewService(urlhaus, urlcheck.NewHeuristics())))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	// --- static ---
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

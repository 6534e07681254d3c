package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/archive"
	"can-kuruyemis-server/modules/auth"
	"can-kuruyemis-server/modules/chat"
	"can-kuruyemis-server/modules/common/config"
	"can-kuruyemis-server/modules/common/gemini"
	"can-kuruyemis-server/modules/common/store"
	"can-kuruyemis-server/modules/drive"
	"can-kuruyemis-server/modules/logo"
	"can-kuruyemis-server/modules/textpost"
	"can-kuruyemis-server/modules/visual"
)

const chatHistoryLimit = 40

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "can-kuruyemis-server",
	})
}

// newStore - yapılandırmaya göre redis ya da bellek deposu seç
func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreBackend == "memory" {
		log.Info("💾 Using in-memory store")
		return store.NewMemoryStore(), nil
	}
	return store.ConnectRedis(cfg)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ctx := context.Background()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect store: %v", err)
	}

	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to init genai client: %v", err)
	}

	driveService, err := drive.NewService(ctx, cfg.DriveCredentialsFile, cfg.DriveFolderID)
	if err != nil {
		log.Fatalf("❌ Failed to init Drive client: %v", err)
	}

	textHandler := textpost.NewHandler(textpost.NewService(client.Models, cfg.GeminiTextModel))
	visualHandler := visual.NewHandler(visual.NewService(client.Models, st, cfg.GeminiImgModel))
	chatHandler := chat.NewHandler(chat.NewService(client.Models, cfg.GeminiTextModel), chat.NewSessionStore(chatHistoryLimit))
	archiveHandler := archive.NewHandler(archive.NewService(ctx, st))
	logoHandler := logo.NewHandler(logo.NewService(st))
	authHandler := auth.NewHandler(st, cfg.AuthUsername, cfg.AuthPassword)
	driveHandler := drive.NewHandler(driveService)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/status", authHandler.Status).Methods("GET")

	api.HandleFunc("/generate/text", textHandler.Generate).Methods("POST")
	api.HandleFunc("/generate/text/status", textHandler.Status).Methods("GET")
	api.HandleFunc("/generate/visual", visualHandler.Generate).Methods("POST")
	api.HandleFunc("/generate/visual/status", visualHandler.Status).Methods("GET")

	api.HandleFunc("/chat/ws", chatHandler.ServeWS)

	api.HandleFunc("/archive", archiveHandler.List).Methods("GET")
	api.HandleFunc("/archive", archiveHandler.Save).Methods("POST")
	api.HandleFunc("/archive/{id}", archiveHandler.Delete).Methods("DELETE")

	api.HandleFunc("/logo", logoHandler.Get).Methods("GET")
	api.HandleFunc("/logo", logoHandler.Upload).Methods("POST")
	api.HandleFunc("/logo", logoHandler.Remove).Methods("DELETE")

	api.HandleFunc("/drive/upload", driveHandler.Upload).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: cfg.AllowedOrigins != "*",
	})

	log.Infof("🚀 Can Kuruyemiş server starting on port %s", cfg.Port)
	log.Infof("📡 Chat endpoint: ws://localhost:%s/api/chat/ws", cfg.Port)
	log.Infof("❤️  Health check: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}

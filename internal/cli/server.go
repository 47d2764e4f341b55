package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduquest-service/internal/app"
	"eduquest-service/internal/catalog"
	"eduquest-service/internal/config"
	"eduquest-service/internal/infra/llm"
	"eduquest-service/internal/infra/memory"
	pgstore "eduquest-service/internal/infra/postgres"
	rediscache "eduquest-service/internal/infra/redis"
	transport "eduquest-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the EduQuest server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var (
		students app.StudentRepository
		quests   app.QuestRepository
		progress app.ProgressRepository
	)
	if pool != nil {
		students = pgstore.NewStudentStore(pool)
		quests = pgstore.NewQuestStore(pool)
		progress = pgstore.NewProgressStore(pool)
	} else {
		students = memory.NewStudentStore()
		quests = memory.NewQuestStore()
		progress = memory.NewProgressStore()
	}

	if redisClient != nil {
		questTTL := config.TTLDuration(cfg.Quest.TTL, 10*time.Minute)
		quests = rediscache.NewQuestCache(redisClient, quests, questTTL)
	}

	var generator app.HintGenerator
	if cfg.LLM.APIKey != "" {
		timeout := config.TTLDuration(cfg.LLM.Timeout, 20*time.Second)
		generator = llm.NewOpenAIGenerator(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, timeout)
		if redisClient != nil {
			hintTTL := config.TTLDuration(cfg.Hint.TTL, time.Hour)
			generator = rediscache.NewHintCache(redisClient, generator, hintTTL)
		}
	}

	hub := app.NewLeaderboardHub()
	service := app.NewQuestService(students, quests, progress, hub)
	hints := app.NewHintService(quests, generator)

	// Bootstrap the quest catalog once at startup instead of lazily on reads.
	inserted, err := service.SeedCatalog(ctx, catalog.Quests())
	if err != nil {
		return err
	}
	if inserted > 0 {
		log.Printf("seeded %d quests", inserted)
	}

	handler := transport.NewHandler(service, hints)
	wsHandler := transport.NewWSHandler(service, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler.Register(mux)
	mux.HandleFunc("GET /ws/leaderboard", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.CORS(cfg.CORS.Origins, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting eduquest service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

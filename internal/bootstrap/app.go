// Package bootstrap assembles the application graph shared by the API server
// and the worker.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ronniejay22/Knot-APP-sub000/internal/feedback"
	"github.com/ronniejay22/Knot-APP-sub000/internal/hints"
	"github.com/ronniejay22/Knot-APP-sub000/internal/llm"
	openai "github.com/ronniejay22/Knot-APP-sub000/internal/llm/openai"
	"github.com/ronniejay22/Knot-APP-sub000/internal/providers"
	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/config"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/server"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/storage/db"
	"github.com/ronniejay22/Knot-APP-sub000/internal/urlcheck"
	"github.com/ronniejay22/Knot-APP-sub000/internal/vaults"
	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

// App holds the shared dependency graph.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	VaultsRepo   vaults.Repo
	HintsRepo    hints.Repo
	WeightsRepo  weights.Repo
	FeedbackRepo feedback.Repo

	LLM llm.Client

	VaultService    *vaults.Service
	HintService     *hints.Service
	RecsService     *recs.Service
	FeedbackService *feedback.Service
	Learner         *feedback.Learner

	VaultHandler    *vaults.Handler
	HintHandler     *hints.Handler
	RecsHandler     *recs.Handler
	FeedbackHandler *feedback.Handler
}

// Build prepares the dependency graph and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		VaultHandler:    app.VaultHandler,
		HintHandler:     app.HintHandler,
		RecsHandler:     app.RecsHandler,
		FeedbackHandler: app.FeedbackHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	cfg := app.Config

	if app.DB != nil {
		app.VaultsRepo = &vaults.PGRepo{DB: app.DB}
		app.HintsRepo = &hints.PGRepo{DB: app.DB}
		app.WeightsRepo = &weights.PGRepo{DB: app.DB}
		app.FeedbackRepo = &feedback.PGRepo{DB: app.DB}
	} else {
		app.VaultsRepo = vaults.NewMemoryRepo()
		app.HintsRepo = hints.NewMemoryRepo()
		app.WeightsRepo = weights.NewMemoryRepo()
		app.FeedbackRepo = feedback.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.LLMProvider == "openai" && strings.TrimSpace(cfg.OpenAIKey) != "" {
		openaiClient, err := openai.NewClient(cfg.OpenAIKey, cfg.LLMModel, cfg.EmbedModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	} else if cfg.LLMProvider == "openai" {
		log.Printf("bootstrap: OPENAI_API_KEY empty; generative source and embeddings disabled")
	}
	llmClient = llm.WithRetry(llmClient)
	app.LLM = llmClient

	sourceList := []recs.SourceProvider{providers.NewCurated(llmClient)}
	if cfg.MarketplaceBaseURL != "" {
		sourceList = append(sourceList, providers.NewMarketplace(cfg.MarketplaceBaseURL, cfg.MarketplaceAPIKey))
	}
	if cfg.DiningBaseURL != "" {
		sourceList = append(sourceList, providers.NewDining(cfg.DiningBaseURL, cfg.DiningAPIKey))
	}
	if cfg.EventsBaseURL != "" {
		sourceList = append(sourceList, providers.NewEvents(cfg.EventsBaseURL, cfg.EventsAPIKey))
	}

	pipeline := &recs.Pipeline{
		Retriever: &hints.Retriever{Repo: app.HintsRepo, Embedder: llmClient},
		Aggregator: &recs.Aggregator{
			Providers: sourceList,
			Priority:  providers.DefaultPriority(),
			Timeout:   cfg.ProviderTimeout,
			Target:    cfg.TargetCandidates,
		},
		Scorer:   recs.NewKeywordScorer(),
		Verifier: &recs.Verifier{Checker: urlcheck.New(cfg.URLCheckTimeout)},
	}

	app.VaultService = &vaults.Service{Repo: app.VaultsRepo}
	app.HintService = &hints.Service{Repo: app.HintsRepo, Embedder: llmClient}
	app.RecsService = &recs.Service{
		Vaults:   app.VaultsRepo,
		Weights:  app.WeightsRepo,
		Pipeline: pipeline,
	}
	app.Learner = feedback.NewLearner(app.FeedbackRepo, app.WeightsRepo)
	app.FeedbackService = &feedback.Service{Repo: app.FeedbackRepo, Learner: app.Learner}

	app.VaultHandler = vaults.NewHandler(app.VaultService)
	app.HintHandler = hints.NewHandler(app.HintService)
	app.RecsHandler = recs.NewHandler(app.RecsService)
	app.FeedbackHandler = feedback.NewHandler(app.FeedbackService)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

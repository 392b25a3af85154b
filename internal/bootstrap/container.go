package bootstrap

import (
	"context"
	"log"
	"time"

	"career-path-be/internal/config"
	"career-path-be/internal/controller"
	"career-path-be/internal/pkg/logger"
	"career-path-be/internal/repository/memory"
	"career-path-be/internal/repository/redisstore"
	"career-path-be/internal/service"
	"career-path-be/pkg/analytics"
	"career-path-be/pkg/guidance/search"
	"career-path-be/pkg/guidance/session"
	"career-path-be/pkg/guidance/source"
	"career-path-be/pkg/knowledge"
	"career-path-be/pkg/llm/factory"
	"career-path-be/pkg/llm/rewrite"

	pktNats "career-path-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatbotController   controller.IChatbotController
	GuidanceController  controller.IGuidanceController
	AnalyticsController controller.IAnalyticsController

	// Background workers (exposed for main.go to run)
	AnalyticsConsumer *analytics.Consumer
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Knowledge base. The whole pipeline answers from these records, so
	// a load failure is fatal.
	kb, err := knowledge.Load(cfg.Data.CareerDataDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load career data from %s: %v", cfg.Data.CareerDataDir, err)
	}

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS mirror for external analytics consumers.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	eventPublisher := analytics.NewPublisher(pubSub, cfg.App.AnalyticsTopic, sysLogger)
	eventSummary := analytics.NewSummary()
	analyticsLogger := logger.NewIsolatedLogger(cfg.App.AnalyticsLogPath)
	analyticsConsumer := analytics.NewConsumer(
		pubSub,
		cfg.App.AnalyticsTopic,
		analyticsLogger,
		eventSummary,
		natsPub,
	)

	// 4. Session storage
	sessionTimeout := time.Duration(cfg.Session.TimeoutMinutes) * time.Minute
	var sessionRepo session.Repository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTimeout, sysLogger)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sweepInterval := time.Duration(cfg.Session.SweepMinutes) * time.Minute
		sessionRepo = memory.NewSessionRepository(sessionTimeout, sweepInterval)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 5. Optional answer rewriter. The pipeline works without it; any
	// provider failure just disables cosmetic rewriting.
	var rewriter *rewrite.Rewriter
	if cfg.Ai.RewriteEnabled {
		llmProvider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Keys.OpenAI,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM Provider, rewrite disabled: %v", err)
		} else {
			rewriteTimeout := time.Duration(cfg.Ai.RewriteTimeoutSeconds) * time.Second
			rewriter = rewrite.New(llmProvider, rewriteTimeout, sysLogger)
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	}

	// 6. Services
	answerSource := source.New(kb)
	searcher := search.New(kb)

	chatbotService := service.NewChatbotService(
		sessionRepo,
		answerSource,
		searcher,
		rewriter,
		eventPublisher,
		sysLogger,
	)
	guidanceService := service.NewGuidanceService(answerSource)

	// 7. Controllers
	return &Container{
		ChatbotController:   controller.NewChatbotController(chatbotService),
		GuidanceController:  controller.NewGuidanceController(guidanceService),
		AnalyticsController: controller.NewAnalyticsController(eventSummary),

		AnalyticsConsumer: analyticsConsumer,
	}
}

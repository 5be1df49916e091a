package app

import (
	roundAPI "baccarat_ledger/internal/api/round"
	sessionAPI "baccarat_ledger/internal/api/session"
	"baccarat_ledger/internal/config"
	"baccarat_ledger/internal/config/env"
	"baccarat_ledger/internal/logger"
	"baccarat_ledger/internal/middleware"
	"baccarat_ledger/internal/repository"
	"baccarat_ledger/internal/repository/ledger_repo"
	"baccarat_ledger/internal/repository/session_repo"
	"baccarat_ledger/internal/service"
	"baccarat_ledger/internal/service/round"
	"baccarat_ledger/internal/service/session"
	"context"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const engineConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logger
	loggerCfg config.LoggerConfig
	log       *zap.Logger

	// Ledger bits
	ledgerRepo repository.LedgerRepository

	// Session bits
	sessionCfg  config.SessionConfig
	sessionRepo repository.SessionRepository
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Round bits
	engineCfg config.EngineConfig
	roundServ service.RoundService
	roundHand *roundAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) LedgerRepository() repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository()
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SessionService() service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.SessionCfg(),
			sp.SessionRepository(),
			sp.LedgerRepository(),
			sp.Logger(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler() *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv:         sp.SessionService(),
			Log:          sp.Logger(),
			SecureCookie: sp.SessionCfg().SecureCookie(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) EngineCfg() config.EngineConfig {
	if sp.engineCfg == nil {
		cfg, err := env.NewEngineConfigFromYAML(engineConfigPath)
		if err != nil {
			panic("failed to get engine config: " + err.Error())
		}
		sp.engineCfg = cfg
	}
	return sp.engineCfg
}

func (sp *ServiceProvider) RoundService() service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(sp.EngineCfg(), sp.LedgerRepository(), sp.Logger())
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RoundHandler() *roundAPI.Handler {
	if sp.roundHand == nil {
		sp.roundHand = roundAPI.NewHandler(roundAPI.HandlerDeps{
			Serv: sp.RoundService(),
			Log:  sp.Logger(),
		})
	}
	return sp.roundHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware. Cookie сессии разрешены только для явно перечисленных origin,
		// при "*" браузерным клиентам остается заголовок Authorization
		origins := sp.HTTPCfg().AllowedOrigins()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: !slices.Contains(origins, "*"),
			MaxAge:           60 * 15,
		}))

		roundHandler := sp.RoundHandler()
		sessionHandler := sp.SessionHandler()
		requireSession := middleware.Session(sp.SessionService(), sp.Logger())

		// Stateless endpoints
		r.Post("/hands/evaluate", roundHandler.EvaluateHands)
		r.Post("/bets/settle", roundHandler.SettleBet)

		// Session endpoints
		r.Post("/session", sessionHandler.Open)
		r.With(requireSession).Delete("/session", sessionHandler.Close)

		// Ledger endpoints
		r.Route("/ledger", func(rr chi.Router) {
			rr.Use(requireSession)
			rr.Post("/rounds", roundHandler.Record)
			rr.Get("/rounds", roundHandler.Rounds)
			rr.Delete("/rounds", roundHandler.Reset)
			rr.Get("/stats", roundHandler.Statistics)
			rr.Get("/streak", roundHandler.Streak)
			rr.Get("/recommendation", roundHandler.Recommendation)
			rr.Get("/checkpoint", roundHandler.Checkpoint)
		})

		sp.router = r
	}

	return sp.router
}

package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-twin/internal/ai"
	appsvc "portfolio-twin/internal/app"
	"portfolio-twin/internal/config"
	"portfolio-twin/internal/notify"
	"portfolio-twin/internal/persona"
	mysqlClient "portfolio-twin/internal/platform/mysql"
	"portfolio-twin/internal/platform/paramstore"
	rabbitmqClient "portfolio-twin/internal/platform/rabbitmq"
	redisClient "portfolio-twin/internal/platform/redis"
	sqliteClient "portfolio-twin/internal/platform/sqlite"
	"portfolio-twin/internal/repository"
	"portfolio-twin/internal/worker"
)

// App holds every long-lived handle. It is built once at startup and shared read-only
// by request handlers.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *gorm.DB
	Redis   *redis.Client
	MQConn  *amqp.Connection
	Persona *persona.Persona

	ChatService        *appsvc.ChatService
	ContactService     *appsvc.ContactService
	NotificationWorker *worker.NotificationWorker

	StartedAt time.Time
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (app *App, err error) {
	app = &App{Config: cfg, Logger: log, StartedAt: time.Now()}
	defer func() {
		if err != nil {
			_ = app.Close()
			app = nil
		}
	}()

	if app.DB, err = openDatabase(ctx, cfg); err != nil {
		return app, err
	}
	if err = repository.Migrate(app.DB); err != nil {
		return app, err
	}

	if cfg.UsesRedis() {
		if app.Redis, err = redisClient.New(ctx, cfg.Redis); err != nil {
			return app, err
		}
	}
	if cfg.UsesRabbitMQ() {
		if app.MQConn, err = rabbitmqClient.New(cfg.RabbitMQ.URL); err != nil {
			return app, err
		}
	}

	source, err := app.personaSource(ctx)
	if err != nil {
		return app, err
	}
	if app.Persona, err = source.Load(ctx); err != nil {
		return app, fmt.Errorf("load persona failed: %w", err)
	}
	log.Info("persona loaded",
		zap.String("source", cfg.Persona.Source),
		zap.String("version", app.Persona.Version),
	)

	generator, err := ai.NewOpenAICompatibleClient(ai.ChatConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLMTimeout(),
	})
	if err != nil {
		return app, fmt.Errorf("create llm client failed: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		log.Warn("llm api key is empty, chat requests will fail upstream")
	}

	if app.ChatService, err = newChatService(app.DB, generator, app.Persona, log); err != nil {
		return app, err
	}

	mailer := notify.NewSMTPMailer(cfg.Mail)
	notifier, err := app.notifier(ctx, mailer)
	if err != nil {
		return app, err
	}
	if app.ContactService, err = appsvc.NewContactService(repository.NewContactRepository(app.DB), notifier, log.Named("contact")); err != nil {
		return app, err
	}

	return app, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverSQLite:
		return sqliteClient.New(ctx, cfg.Database.SQLitePath)
	default:
		return mysqlClient.New(ctx, cfg.MySQLDSN())
	}
}

func (a *App) personaSource(ctx context.Context) (persona.Source, error) {
	switch a.Config.Persona.Source {
	case config.PersonaSourceSSM:
		params, err := paramstore.NewFromEnvironment(ctx)
		if err != nil {
			return nil, err
		}
		return persona.ParamStoreSource{Params: params, Name: a.Config.Persona.SSMParameter}, nil
	case config.PersonaSourceRedis:
		return persona.RedisSource{Client: a.Redis, Key: a.Config.Persona.RedisKey}, nil
	default:
		return persona.FileSource{Path: a.Config.Persona.Path}, nil
	}
}

func (a *App) notifier(ctx context.Context, mailer *notify.SMTPMailer) (appsvc.Notifier, error) {
	log := a.Logger.Named("notify")
	switch a.Config.Mail.Mode {
	case config.MailModeSMTP:
		if !mailer.Configured() {
			log.Info("mail credentials not configured, notifications will be skipped")
		}
		return notify.NewDirectNotifier(mailer, log), nil
	case config.MailModeQueue:
		if !mailer.Configured() {
			log.Info("mail credentials not configured, queued notifications will be skipped")
		}
		a.NotificationWorker = worker.NewNotificationWorker(a.MQConn, mailer, a.Config.RabbitMQ.NotificationQueue, log)
		if err := a.NotificationWorker.Start(ctx); err != nil {
			return nil, fmt.Errorf("start notification worker failed: %w", err)
		}
		publisher := rabbitmqClient.NewPublisher(a.MQConn, a.Config.RabbitMQ.NotificationQueue)
		return notify.NewQueueNotifier(publisher, mailer, log), nil
	default:
		log.Info("notifications disabled")
		return notify.DisabledNotifier{}, nil
	}
}

func newChatService(db *gorm.DB, generator appsvc.Generator, p *persona.Persona, log *zap.Logger) (*appsvc.ChatService, error) {
	recorder, err := appsvc.NewTurnRecorder(repository.NewTurnRepository(db))
	if err != nil {
		return nil, err
	}
	pipeline, err := appsvc.NewTurnPipeline(generator, p, log.Named("pipeline"))
	if err != nil {
		return nil, err
	}
	return appsvc.NewChatService(recorder, pipeline, log.Named("chat"))
}

func (a *App) Close() error {
	var closeErr error
	if a.NotificationWorker != nil {
		a.NotificationWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}

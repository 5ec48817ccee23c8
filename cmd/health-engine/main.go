package main

import (
	"SRM_Health_Automation/internal/health-engine/api/handler"
	"SRM_Health_Automation/internal/health-engine/api/routes"
	"SRM_Health_Automation/internal/health-engine/config"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/monitor"
	"SRM_Health_Automation/internal/health-engine/notifier"
	"SRM_Health_Automation/internal/health-engine/orchestrator"
	"SRM_Health_Automation/internal/health-engine/probe"
	"SRM_Health_Automation/internal/health-engine/remediation"
	"SRM_Health_Automation/internal/health-engine/repository"
	"SRM_Health_Automation/internal/health-engine/report"
	"SRM_Health_Automation/internal/health-engine/scheduler"
	"SRM_Health_Automation/pkg/infra"
	"SRM_Health_Automation/pkg/logger"
	"SRM_Health_Automation/pkg/mail"
	"SRM_Health_Automation/pkg/middleware"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/health-engine.log")
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "health-engine"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	if err = db.AutoMigrate(&model.RemediationRule{}, &model.RemediationResult{}); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}

	// set up kafka writers
	commandWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.CommandTopic)
	defer commandWriter.Close()
	notificationWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.NotificationTopic)
	defer notificationWriter.Close()

	// set up dependencies
	clock := clockwork.NewRealClock()
	resultRepo := repository.NewResultRepository(esClient)
	metricsRepo := repository.NewMetricsRepository(esClient)
	ruleRepo := repository.NewCachedRuleRepository(redisClient, repository.NewRuleRepository(db), appConfig.Remediation.RuleCacheTTL)
	remediationRepo := repository.NewRemediationResultRepository(db)

	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	notificationSender := notifier.NewSender(notificationWriter, zapLogger)

	healthProbe := probe.NewHTTPProbe(appConfig.Probe.Endpoints, appConfig.Probe.MaxRetries,
		appConfig.Probe.RequestTimeout, appConfig.Probe.InitialBackoff, clock)

	sched := scheduler.NewScheduler(healthProbe, resultRepo, clock, zapLogger, appConfig.Scheduler.DefaultInterval)
	sched.Configure(appConfig.Scheduler.Intervals)

	executor := remediation.NewActionExecutor(commandWriter, redisClient, remediationRepo, zapLogger, remediation.ExecutorConfig{
		ScriptsDir:      appConfig.Remediation.ScriptsDir,
		ScriptTimeout:   appConfig.Remediation.ScriptTimeout,
		KnownServices:   appConfig.Remediation.KnownServices,
		CacheNamespaces: appConfig.Remediation.CacheNamespaces,
	})
	engine := remediation.NewEngine(ruleRepo, remediationRepo, healthProbe, executor, notificationSender,
		clock, zapLogger, appConfig.Remediation.SettleDelay)

	recorder := monitor.NewRecorder(clock)
	slowThreshold := time.Duration(appConfig.Monitor.SlowQueryThresholdMs) * time.Millisecond
	if err = infra.RegisterQueryMetrics(db, slowThreshold, recorder.RecordQuery); err != nil {
		zapLogger.Fatal("failed to register query metrics callbacks", zap.Error(err))
	}
	dbStats := func() (sql.DBStats, error) {
		return sqlDB.Stats(), nil
	}
	mon := monitor.NewMonitor(metricsRepo, notificationSender, recorder, dbStats, clock, zapLogger, monitor.Config{
		Interval:     appConfig.Monitor.Interval,
		HistoryLimit: appConfig.Monitor.HistoryLimit,
		Thresholds: monitor.Thresholds{
			CPUPercent:     appConfig.Monitor.CPUThreshold,
			MemoryPercent:  appConfig.Monitor.MemoryThreshold,
			ResponseTimeMs: appConfig.Monitor.ResponseTimeMsLimit,
			ErrorRate:      appConfig.Monitor.ErrorRateThreshold,
		},
	})

	generator := report.NewGenerator(resultRepo, remediationRepo, clock, appConfig.Report.Dir)
	orch := orchestrator.NewOrchestrator(sched, engine, mon, resultRepo, generator, clock, zapLogger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = orch.Start(startCtx)
	startCancel()
	if err != nil {
		zapLogger.Fatal("failed to start orchestrator", zap.Error(err))
	}

	ruleHandler := handler.NewRuleHandler(zapLogger, engine)
	engineHandler := handler.NewEngineHandler(zapLogger, orch, sched, mon, generator, mailSender)
	m := middleware.NewAuthMiddleware()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.RecordAPIMetrics(recorder))

	routes.AddRuleRoutes(r, ruleHandler, m)
	routes.AddEngineRoutes(r, engineHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	orch.Stop()
	zapLogger.Info("server exiting")
}

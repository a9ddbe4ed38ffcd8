package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutriplan/controllers/check"
	"nutriplan/database"
	"nutriplan/router"
	"nutriplan/services/auth"
	"nutriplan/services/dish"
	"nutriplan/services/food"
	"nutriplan/services/lock"
	"nutriplan/services/plan"
	"nutriplan/services/profile"
	"nutriplan/services/rabbitmq"
	"nutriplan/services/webhook"
	"nutriplan/utils"

	logLib "nutriplan/services/log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {

	// init env
	envService := utils.EnvService{ConfigPath: "."}
	config, err := envService.InitEnv()
	if err != nil {
		log.Fatalf("config init failed: %s", err)
	}
	fmt.Println("config loaded...")

	logService := logLib.LogService{Config: config.Log}
	logger := logService.LoggerInit("nutriplan")
	logwr := logger.WithField("task", "main")

	db, err := database.InitDatabasePool(config.Database)
	if err != nil {
		logwr.WithField("error_message", err.Error()).Fatal("database init failed")
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		logwr.WithField("error_message", err.Error()).Fatal("database migration failed")
	}
	if err := database.SeedEffects(db, config.Effects); err != nil {
		logwr.WithField("error_message", err.Error()).Fatal("effect seed failed")
	}

	// optional event publishing
	var publisher plan.EventPublisher
	var rabbit check.Pinger
	if config.RabbitMQ.Enable == 1 {
		conn := rabbitmq.NewConnection(config.RabbitMQ.Domain, []string{config.RabbitMQ.Queue})
		if err := conn.Connect(); err != nil {
			// Publish reconnects on demand
			logwr.WithField("error_message", err.Error()).Error("rabbitmq connect failed")
		}
		defer conn.Close()
		publisher = rabbitmq.NewEventPublisher(conn, config.RabbitMQ.Queue)
		rabbit = conn
	}

	var locker lock.Locker = lock.NewMemoryLocker()
	if config.Redis.Enable == 1 {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		defer client.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			logwr.WithField("error_message", err.Error()).Fatal("redis ping failed")
		}
		locker = lock.NewRedisLocker(client, config.Lock.TTL)
	}

	if config.Router.Mode != "" {
		gin.SetMode(config.Router.Mode)
	}
	profiles := profile.NewProfileService(db, logger)
	route, err := router.Router(router.Services{
		Logger:        logger,
		DB:            db,
		Rabbit:        rabbit,
		Auth:          auth.NewAuthService(db, config.Auth.Secret, config.Auth.TokenTTL, logger),
		Profiles:      profiles,
		Foods:         food.NewFoodService(db, logger),
		Dishes:        dish.NewDishService(db, logger),
		Plans:         plan.NewPlanService(db, profiles, locker, publisher, logger),
		Deployer:      webhook.NewDeployer(db, config.Deploy, publisher, logger),
		WebhookSecret: config.Webhook.Secret,
	})
	if err != nil {
		logwr.WithField("error_message", err.Error()).Fatal("router init failed")
	}
	if config.Webhook.Secret == "" {
		logwr.Warn("webhook.secret is empty, /update_server rejects every request")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Router.Port),
		Handler: route,
	}
	go func() {
		logwr.WithField("port", config.Router.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logwr.WithField("error_message", err.Error()).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logwr.WithField("error_message", err.Error()).Error("server shutdown failed")
	}
	logwr.Info("server shutdown")
}

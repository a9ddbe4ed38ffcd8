package utils

import (
	"errors"
	"fmt"
	"strings"

	"nutriplan/structs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devSecret = "supersecret"

// ErrMissingSecret is returned in release mode when neither AUTH_SECRET nor W_SECRET is set.
var ErrMissingSecret = errors.New("auth.secret or webhook.secret must be set in release mode")

type EnvService struct {
	// ConfigPath is searched for config.yml, defaults to the working directory.
	ConfigPath string
	v          *viper.Viper
}

// InitEnv loads .env, config.yml and the environment into a config model.
func (e *EnvService) InitEnv() (*structs.EnviromentModel, error) {
	if err := e.loadConfig(); err != nil {
		return nil, err
	}
	return e.configToModel()
}

func (e *EnvService) loadConfig() error {
	// a missing .env is fine, the environment is read directly
	_ = godotenv.Load()

	e.v = viper.New()
	e.setDefaults()

	path := e.ConfigPath
	if path == "" {
		path = "."
	}
	e.v.SetConfigName("config")
	e.v.SetConfigType("yml")
	e.v.AddConfigPath(path)
	e.v.AutomaticEnv()
	e.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := e.v.BindEnv("webhook.secret", "W_SECRET"); err != nil {
		return err
	}

	if err := e.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// config.yml exists but could not be parsed
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}
	return nil
}

func (e *EnvService) setDefaults() {
	e.v.SetDefault("database.client", "mysql")
	e.v.SetDefault("database.host", "127.0.0.1")
	e.v.SetDefault("database.port", "3306")
	e.v.SetDefault("database.name", "nutriplan")
	e.v.SetDefault("database.max_idle", 5)
	e.v.SetDefault("database.max_open_conn", 20)
	e.v.SetDefault("database.max_life_time", "1h")
	e.v.SetDefault("router.port", 8080)
	e.v.SetDefault("router.mode", "release")
	e.v.SetDefault("auth.token_ttl", "72h")
	e.v.SetDefault("deploy.repo_path", "./mysite")
	e.v.SetDefault("deploy.remote", "origin")
	e.v.SetDefault("deploy.timeout", "60s")
	e.v.SetDefault("log.level", "info")
	e.v.SetDefault("rabbitmq.queue", "nutriplan-events")
	e.v.SetDefault("redis.addr", "127.0.0.1:6379")
	e.v.SetDefault("lock.ttl", "30s")
	e.v.SetDefault("effects", []string{"Bulk", "Cut", "Balanced", "Erhaltung"})
}

func (e *EnvService) configToModel() (*structs.EnviromentModel, error) {
	var config structs.EnviromentModel
	config.Database.Client = e.v.GetString("database.client")
	config.Database.Host = e.v.GetString("database.host")
	config.Database.User = e.v.GetString("database.user")
	config.Database.Password = e.v.GetString("database.password")
	config.Database.Db = e.v.GetString("database.name")
	config.Database.MaxIdle = uint(e.v.GetInt("database.max_idle"))
	config.Database.MaxOpenConn = uint(e.v.GetInt("database.max_open_conn"))
	config.Database.MaxLifeTime = e.v.GetString("database.max_life_time")
	config.Database.Params = e.v.GetString("database.params")
	config.Database.Port = e.v.GetString("database.port")
	config.Database.LogEnable = e.v.GetInt("database.log_enable")
	config.Router.Port = e.v.GetInt("router.port")
	config.Router.Mode = e.v.GetString("router.mode")
	config.Auth.Secret = e.v.GetString("auth.secret")
	config.Auth.TokenTTL = e.v.GetDuration("auth.token_ttl")
	config.Webhook.Secret = e.v.GetString("webhook.secret")
	config.Deploy.RepoPath = e.v.GetString("deploy.repo_path")
	config.Deploy.Remote = e.v.GetString("deploy.remote")
	config.Deploy.Timeout = e.v.GetDuration("deploy.timeout")
	config.Deploy.NotifyURL = e.v.GetString("deploy.notify_url")
	config.Log.Level = e.v.GetString("log.level")
	config.Log.Dir = e.v.GetString("log.dir")
	config.Log.ElkEnable = e.v.GetInt("log.elk.enable")
	config.Log.ElkIndex = e.v.GetString("log.elk.index")
	config.Log.ElkURL = e.v.GetString("log.elk.url")
	config.Log.LogstashEnable = e.v.GetInt("log.logstash.enable")
	config.Log.LogstashURL = e.v.GetString("log.logstash.url")
	config.Log.LogstashIndex = e.v.GetString("log.logstash.index")
	config.RabbitMQ.Enable = e.v.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = e.v.GetString("rabbitmq.domain")
	config.RabbitMQ.Queue = e.v.GetString("rabbitmq.queue")
	config.Redis.Enable = e.v.GetInt("redis.enable")
	config.Redis.Addr = e.v.GetString("redis.addr")
	config.Redis.Password = e.v.GetString("redis.password")
	config.Redis.DB = e.v.GetInt("redis.db")
	config.Lock.TTL = e.v.GetDuration("lock.ttl")
	config.Effects = e.v.GetStringSlice("effects")

	// session signing falls back to the webhook secret, then a dev default outside release
	if config.Auth.Secret == "" {
		config.Auth.Secret = config.Webhook.Secret
	}
	if config.Auth.Secret == "" {
		if config.Router.Mode == gin.ReleaseMode {
			return nil, ErrMissingSecret
		}
		config.Auth.Secret = devSecret
	}
	return &config, nil
}

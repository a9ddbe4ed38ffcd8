package structs

import "time"

type EnviromentModel struct {
	Database DatabaseConfig
	Router   router
	Auth     auth
	Webhook  webhook
	Deploy   DeployConfig
	Log      LogConfig
	RabbitMQ RabbitMQConfig
	Redis    RedisConfig
	Lock     lock
	Effects  []string
}

type DatabaseConfig struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type router struct {
	Port int
	Mode string
}

type auth struct {
	Secret   string
	TokenTTL time.Duration
}

type webhook struct {
	Secret string
}

type DeployConfig struct {
	RepoPath  string
	Remote    string
	Timeout   time.Duration
	NotifyURL string
}

type LogConfig struct {
	Level          string
	Dir            string
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type RabbitMQConfig struct {
	Enable int
	Domain string
	Queue  string
}

type RedisConfig struct {
	Enable   int
	Addr     string
	Password string
	DB       int
}

type lock struct {
	TTL time.Duration
}

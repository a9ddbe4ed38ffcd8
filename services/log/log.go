package log

import (
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"time"

	"nutriplan/structs"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const hostName = "nutriplan"

type LogService struct {
	Config structs.LogConfig
}

// LoggerInit builds a logger writing to stdout and, when a log dir is configured,
// to <dir>/<date>/<name>.log. ELK and Logstash hooks are attached when enabled.
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()

	var out io.Writer = os.Stdout
	if l.Config.Dir != "" {
		if src, err := l.openLogFile(name); err != nil {
			fmt.Println(err.Error())
		} else {
			out = io.MultiWriter(os.Stdout, src)
		}
	}
	logger.Out = out

	level, err := logrus.ParseLevel(l.Config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if l.Config.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{l.Config.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, hostName, level, l.Config.ElkIndex)
			if err != nil {
				logger.Debug(err.Error())
			} else {
				logger.Hooks.Add(hook)
			}
		}
	}

	if l.Config.LogstashEnable == 1 {
		conn, err := net.Dial("udp", l.Config.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			fields := logrus.Fields{"type": hostName}
			if l.Config.LogstashIndex != "" {
				fields["index"] = l.Config.LogstashIndex
			}
			hook := logrustash.New(conn, logrustash.DefaultFormatter(fields))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

func (l *LogService) openLogFile(name string) (*os.File, error) {
	logFilePath := path.Join(l.Config.Dir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0755); err != nil {
		return nil, err
	}
	fileName := path.Join(logFilePath, name+".log")
	return os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

package check

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string `json:"database"`
	RabbitMQ   string `json:"rabbitmq"`
	RoutineNum int    `json:"routine_num"`
}

// Pinger reports whether an optional backend connection is up.
type Pinger interface {
	Alive() bool
}

type CheckController struct {
	db     *gorm.DB
	rabbit Pinger
	logger *logrus.Entry
}

// NewCheckController builds the liveness handler; rabbit may be nil when publishing is off.
func NewCheckController(db *gorm.DB, rabbit Pinger, logger *logrus.Logger) *CheckController {
	return &CheckController{db: db, rabbit: rabbit, logger: logger.WithField("task", "check")}
}

func (ch *CheckController) CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	success := true
	checkInfo := CheckInfo{Database: "ok", RabbitMQ: "disabled"}

	if err := ch.db.DB().Ping(); err != nil {
		success = false
		resMsg = "database unreachable"
		checkInfo.Database = err.Error()
		ch.logger.WithField("error_message", err.Error()).Error(resMsg)
	}

	if ch.rabbit != nil {
		checkInfo.RabbitMQ = "ok"
		if !ch.rabbit.Alive() {
			checkInfo.RabbitMQ = "connection lost"
			ch.logger.Warn("rabbitmq connection lost")
		}
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()
	ch.logger.WithField("routine_num", checkInfo.RoutineNum).Debug("goroutine number")

	status := http.StatusOK
	if !success {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, AliveResponse{success, resMsg, checkInfo})
}

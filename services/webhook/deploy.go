package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"nutriplan/enums"
	"nutriplan/services"
	"nutriplan/services/activityLog"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// EventPublisher receives a deploy.pulled event after a successful pull.
type EventPublisher interface {
	PublishEvent(event structs.EventModel) error
}

// Deployer pulls the deployed checkout.
type Deployer struct {
	db        *gorm.DB
	config    structs.DeployConfig
	run       Runner
	publisher EventPublisher
	logger    *logrus.Entry
}

// NewDeployer builds a git deployer; publisher and db may be nil.
func NewDeployer(db *gorm.DB, config structs.DeployConfig, publisher EventPublisher, logger *logrus.Logger) *Deployer {
	if config.Remote == "" {
		config.Remote = "origin"
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &Deployer{
		db:        db,
		config:    config,
		run:       execRunner,
		publisher: publisher,
		logger:    logger.WithField("task", "deploy"),
	}
}

// WithRunner swaps the command runner.
func (d *Deployer) WithRunner(run Runner) *Deployer {
	d.run = run
	return d
}

// Pull runs git pull in the configured repository.
func (d *Deployer) Pull(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	out, err := d.run(ctx, d.config.RepoPath, "git", "pull", d.config.Remote)
	output := strings.TrimSpace(string(out))
	logwr := d.logger.WithFields(logrus.Fields{"repo": d.config.RepoPath, "remote": d.config.Remote})
	if err != nil {
		logwr.WithFields(logrus.Fields{"error_message": err.Error(), "output": output}).Error("git pull failed")
		d.record(false, output)
		return output, fmt.Errorf("git pull: %w", err)
	}
	logwr.WithField("output", output).Info("git pull done")
	d.record(true, output)

	if d.publisher != nil {
		if err := d.publisher.PublishEvent(structs.EventModel{Event: enums.EventDeployPulled, Output: output}); err != nil {
			logwr.WithField("error_message", err.Error()).Error("publish deploy event failed")
		}
	}
	if d.config.NotifyURL != "" {
		body := structs.EventModel{Event: enums.EventDeployPulled, Output: output, Timestamp: time.Now().Unix()}
		if _, err := services.HttpRequest(ctx, http.MethodPost, d.config.NotifyURL, nil, body); err != nil {
			logwr.WithField("error_message", err.Error()).Error("deploy notify failed")
		}
	}
	return output, nil
}

func (d *Deployer) record(result bool, output string) {
	if d.db == nil {
		return
	}
	message := "ok"
	if !result {
		message = output
	}
	if err := activityLog.Insert(d.db, enums.LogDeployPull, "git pull", 0, structs.ActivityLogJsonModel{
		Type:    enums.LogDeployPull,
		Result:  result,
		Message: message,
	}); err != nil {
		d.logger.WithField("error_message", err.Error()).Error("activity log insert failed")
	}
}

package webhook

import (
	"context"
	"net/http"

	"nutriplan/services/trackLog"
	webhookService "nutriplan/services/webhook"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Puller updates the deployed checkout.
type Puller interface {
	Pull(ctx context.Context) (string, error)
}

type WebhookController struct {
	secret   string
	deployer Puller
	logger   *logrus.Entry
}

func NewWebhookController(secret string, deployer Puller, logger *logrus.Logger) *WebhookController {
	return &WebhookController{secret: secret, deployer: deployer, logger: logger.WithField("task", "webhook")}
}

// UpdateServer pulls the latest code when the request carries a valid signature.
func (w *WebhookController) UpdateServer(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}
	header := c.GetHeader(webhookService.SignatureHeader)

	if w.secret == "" {
		w.logger.Warn("webhook secret not configured, request rejected")
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}
	ok, err := webhookService.Verify(header, body, w.secret)
	if err != nil || !ok {
		logwr := w.logger.WithFields(logrus.Fields{"client_ip": c.ClientIP(), "request_id": trackLog.RequestID(c)})
		if err != nil {
			logwr = logwr.WithField("error_message", err.Error())
		}
		logwr.Warn("webhook signature rejected")
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := w.deployer.Pull(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Update failed")
		return
	}
	c.String(http.StatusOK, "Updated successfully")
}

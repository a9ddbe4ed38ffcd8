package utils

import (
	"net/http"

	"nutriplan/middlewares"

	"github.com/gin-gonic/gin"
)

// Render executes a page template with the pending flash message and login state.
func Render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flash"] = PopFlash(c)
	data["LoggedIn"] = middlewares.UserID(c) != 0
	c.HTML(http.StatusOK, name, data)
}

// Fail records err on the context for the request log and answers 500.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

package dashboard

import (
	"nutriplan/middlewares"
	"nutriplan/services/profile"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	profiles *profile.ProfileService
}

func NewDashboardController(profiles *profile.ProfileService) *DashboardController {
	return &DashboardController{profiles: profiles}
}

func (d *DashboardController) Index(c *gin.Context) {
	p, err := d.profiles.Get(middlewares.UserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "dashboard.html", gin.H{"Profile": p})
}

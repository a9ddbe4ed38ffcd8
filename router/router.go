package router

import (
	"fmt"

	"nutriplan/controllers/auth"
	"nutriplan/controllers/check"
	"nutriplan/controllers/dashboard"
	"nutriplan/controllers/dish"
	"nutriplan/controllers/food"
	"nutriplan/controllers/plan"
	"nutriplan/controllers/profile"
	"nutriplan/controllers/readProbe"
	"nutriplan/controllers/webhook"
	"nutriplan/middlewares"
	authService "nutriplan/services/auth"
	dishService "nutriplan/services/dish"
	foodService "nutriplan/services/food"
	planService "nutriplan/services/plan"
	profileService "nutriplan/services/profile"
	"nutriplan/services/trackLog"
	"nutriplan/templates"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Services is everything the HTTP layer needs. Rabbit may be nil.
type Services struct {
	Logger        *logrus.Logger
	DB            *gorm.DB
	Rabbit        check.Pinger
	Auth          *authService.AuthService
	Profiles      *profileService.ProfileService
	Foods         *foodService.FoodService
	Dishes        *dishService.DishService
	Plans         *planService.PlanService
	Deployer      webhook.Puller
	WebhookSecret string
}

func Router(s Services) (*gin.Engine, error) {
	route := gin.New()
	route.Use(trackLog.Middleware(s.Logger), gin.Recovery())

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	route.SetHTMLTemplate(tmpl)

	checkController := check.NewCheckController(s.DB, s.Rabbit, s.Logger)
	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", checkController.CheckAlive)

	webhookController := webhook.NewWebhookController(s.WebhookSecret, s.Deployer, s.Logger)
	route.POST("/update_server", webhookController.UpdateServer)

	authController := auth.NewAuthController(s.Auth)
	route.GET("/login", authController.LoginPage)
	route.POST("/login", authController.Login)
	route.GET("/register", authController.RegisterPage)
	route.POST("/register", authController.Register)

	private := route.Group("/", middlewares.AuthRequired(s.Auth))
	private.GET("/logout", authController.Logout)

	dashboardController := dashboard.NewDashboardController(s.Profiles)
	private.GET("/", dashboardController.Index)

	profileController := profile.NewProfileController(s.Profiles)
	private.GET("/profil", profileController.Show)
	private.POST("/profil/save", profileController.Save)
	private.POST("/profil/effekt/add", profileController.AddEffect)
	private.POST("/profil/effekt/delete", profileController.RemoveEffect)

	foodController := food.NewFoodController(s.Foods)
	private.GET("/lebensmittel", foodController.List)
	private.POST("/lebensmittel/add", foodController.Add)

	dishController := dish.NewDishController(s.Dishes)
	private.GET("/gerichte", dishController.List)
	private.POST("/gerichte/add", dishController.Add)
	private.GET("/gerichte/:id", dishController.Detail)
	private.POST("/gerichte/:id/zutaten/add", dishController.AddIngredient)
	private.POST("/gerichte/:id/effekt/add", dishController.AddEffect)
	private.POST("/gerichte/:id/effekt/delete", dishController.RemoveEffect)

	planController := plan.NewPlanController(s.Plans)
	private.GET("/plan", planController.Show)
	private.POST("/plan/generate", planController.Generate)
	private.GET("/plan/export/csv", planController.ExportCSV)

	return route, nil
}

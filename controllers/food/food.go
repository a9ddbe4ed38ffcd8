package food

import (
	"errors"

	"nutriplan/enums"
	foodService "nutriplan/services/food"
	"nutriplan/structs"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

const page = "/lebensmittel"

type FoodController struct {
	foods *foodService.FoodService
}

func NewFoodController(foods *foodService.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (f *FoodController) List(c *gin.Context) {
	foods, err := f.foods.List()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "lebensmittel.html", gin.H{"Foods": foods})
}

func (f *FoodController) Add(c *gin.Context) {
	var param structs.FoodParam
	_ = c.ShouldBind(&param)

	_, created, err := f.foods.Upsert(param)
	switch {
	case errors.Is(err, foodService.ErrMissingFields):
		utils.RedirectWithFlash(c, page, "Bitte alle Felder ausfüllen.")
	case errors.Is(err, foodService.ErrInvalidNumber):
		utils.RedirectWithFlash(c, page, "Kalorien/Proteine müssen Zahlen sein.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, page, enums.MessageGenericError)
	case created:
		utils.RedirectWithFlash(c, page, "Lebensmittel hinzugefügt.")
	default:
		utils.RedirectWithFlash(c, page, "Lebensmittel aktualisiert.")
	}
}

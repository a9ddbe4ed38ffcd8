package dish

import (
	"errors"
	"fmt"
	"strconv"

	"nutriplan/enums"
	dishService "nutriplan/services/dish"
	"nutriplan/services/profile"
	"nutriplan/structs"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

const listPage = "/gerichte"

type DishController struct {
	dishes *dishService.DishService
}

func NewDishController(dishes *dishService.DishService) *DishController {
	return &DishController{dishes: dishes}
}

func detailPage(dishID int64) string {
	return fmt.Sprintf("/gerichte/%d", dishID)
}

// dishID reads the :id path parameter; unknown ids send the user back to the list.
func dishID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RedirectWithFlash(c, listPage, "Gericht nicht gefunden.")
		return 0, false
	}
	return id, true
}

func (d *DishController) List(c *gin.Context) {
	dishes, err := d.dishes.List()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "gerichte.html", gin.H{"Dishes": dishes})
}

func (d *DishController) Add(c *gin.Context) {
	var param structs.DishParam
	_ = c.ShouldBind(&param)

	_, err := d.dishes.Create(param)
	switch {
	case errors.Is(err, dishService.ErrMissingName):
		utils.RedirectWithFlash(c, listPage, "Name fehlt.")
	case errors.Is(err, dishService.ErrDishExists):
		utils.RedirectWithFlash(c, listPage, "Gericht existiert schon.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, listPage, enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, listPage, "Gericht hinzugefügt.")
	}
}

func (d *DishController) Detail(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}
	detail, err := d.dishes.Get(id)
	if errors.Is(err, dishService.ErrDishNotFound) {
		utils.RedirectWithFlash(c, listPage, "Gericht nicht gefunden.")
		return
	}
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "gericht_detail.html", gin.H{"Detail": detail})
}

func (d *DishController) AddIngredient(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}
	var param structs.IngredientParam
	_ = c.ShouldBind(&param)

	updated, err := d.dishes.AddIngredient(id, param)
	switch {
	case errors.Is(err, dishService.ErrDishNotFound):
		utils.RedirectWithFlash(c, listPage, "Gericht nicht gefunden.")
	case errors.Is(err, dishService.ErrMissingFields):
		utils.RedirectWithFlash(c, detailPage(id), "Bitte Lebensmittel und Menge angeben.")
	case errors.Is(err, dishService.ErrInvalidQuantity):
		utils.RedirectWithFlash(c, detailPage(id), "Menge muss eine positive Zahl sein.")
	case errors.Is(err, dishService.ErrInvalidReference), errors.Is(err, dishService.ErrFoodNotFound):
		utils.RedirectWithFlash(c, detailPage(id), "Lebensmittel nicht gefunden.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, detailPage(id), enums.MessageGenericError)
	case updated:
		utils.RedirectWithFlash(c, detailPage(id), "Zutat existierte schon, Menge wurde aktualisiert.")
	default:
		utils.RedirectWithFlash(c, detailPage(id), "Zutat hinzugefügt.")
	}
}

func (d *DishController) AddEffect(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}
	var param structs.EffectParam
	_ = c.ShouldBind(&param)

	err := d.dishes.AddEffect(id, param.EffectID)
	switch {
	case errors.Is(err, dishService.ErrDishNotFound):
		utils.RedirectWithFlash(c, listPage, "Gericht nicht gefunden.")
	case errors.Is(err, dishService.ErrInvalidReference):
		utils.RedirectWithFlash(c, detailPage(id), "")
	case errors.Is(err, profile.ErrEffectNotFound):
		utils.RedirectWithFlash(c, detailPage(id), "Effekt nicht gefunden.")
	case errors.Is(err, dishService.ErrEffectAssigned):
		utils.RedirectWithFlash(c, detailPage(id), "Effekt war schon zugeordnet.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, detailPage(id), enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, detailPage(id), "Effekt hinzugefügt.")
	}
}

func (d *DishController) RemoveEffect(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}
	var param structs.EffectParam
	_ = c.ShouldBind(&param)

	err := d.dishes.RemoveEffect(id, param.EffectID)
	switch {
	case errors.Is(err, dishService.ErrInvalidReference):
		utils.RedirectWithFlash(c, detailPage(id), "")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, detailPage(id), enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, detailPage(id), "Effekt entfernt.")
	}
}

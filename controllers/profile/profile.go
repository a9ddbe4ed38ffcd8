package profile

import (
	"errors"
	"fmt"

	"nutriplan/enums"
	"nutriplan/middlewares"
	profileService "nutriplan/services/profile"
	"nutriplan/structs"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

const page = "/profil"

type ProfileController struct {
	profiles *profileService.ProfileService
}

func NewProfileController(profiles *profileService.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

func (p *ProfileController) Show(c *gin.Context) {
	userID := middlewares.UserID(c)
	current, err := p.profiles.Get(userID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	effects, err := p.profiles.AllEffects()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	userEffects, err := p.profiles.Effects(userID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "profil.html", gin.H{
		"Profile":     current,
		"Effects":     effects,
		"UserEffects": userEffects,
		"Activities":  []string{enums.ActivityLow, enums.ActivityMedium, enums.ActivityHigh},
		"Goals":       []string{enums.GoalBulk, enums.GoalCut, enums.GoalBalanced, enums.GoalMaintenance},
	})
}

func (p *ProfileController) Save(c *gin.Context) {
	var param structs.ProfileParam
	_ = c.ShouldBind(&param)

	saved, err := p.profiles.Save(middlewares.UserID(c), param)
	switch {
	case errors.Is(err, profileService.ErrMissingFields):
		utils.RedirectWithFlash(c, page, "Bitte Name und Gewicht ausfüllen.")
	case errors.Is(err, profileService.ErrInvalidNumber):
		utils.RedirectWithFlash(c, page, "Gewicht/Grösse müssen Zahlen sein.")
	case errors.Is(err, profileService.ErrInvalidWeight):
		utils.RedirectWithFlash(c, page, "Gewicht muss grösser als 0 sein.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, page, enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, page, fmt.Sprintf("Profil gespeichert. Kalorienbedarf: %d kcal/Tag", saved.DailyCalories))
	}
}

func (p *ProfileController) AddEffect(c *gin.Context) {
	var param structs.EffectParam
	_ = c.ShouldBind(&param)

	err := p.profiles.AddEffect(middlewares.UserID(c), param.EffectID)
	switch {
	case errors.Is(err, profileService.ErrInvalidEffectID):
		utils.RedirectWithFlash(c, page, "")
	case errors.Is(err, profileService.ErrProfileMissing):
		utils.RedirectWithFlash(c, page, "Bitte zuerst Profil speichern, bevor du Effekte zuordnest.")
	case errors.Is(err, profileService.ErrEffectNotFound):
		utils.RedirectWithFlash(c, page, "Effekt nicht gefunden.")
	case errors.Is(err, profileService.ErrEffectAssigned):
		utils.RedirectWithFlash(c, page, "Effekt war bereits zugeordnet.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, page, enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, page, "Effekt hinzugefügt.")
	}
}

func (p *ProfileController) RemoveEffect(c *gin.Context) {
	var param structs.EffectParam
	_ = c.ShouldBind(&param)

	err := p.profiles.RemoveEffect(middlewares.UserID(c), param.EffectID)
	switch {
	case errors.Is(err, profileService.ErrInvalidEffectID):
		utils.RedirectWithFlash(c, page, "")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, page, enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, page, "Effekt entfernt.")
	}
}

package plan

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nutriplan/enums"
	"nutriplan/middlewares"
	planService "nutriplan/services/plan"
	"nutriplan/structs"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

const (
	page        = "/plan"
	profilePage = "/profil"
	csvFilename = "ernaehrungsplan.csv"
)

type PlanController struct {
	plans *planService.PlanService
}

func NewPlanController(plans *planService.PlanService) *PlanController {
	return &PlanController{plans: plans}
}

func (p *PlanController) Show(c *gin.Context) {
	rows, err := p.plans.List(middlewares.UserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Render(c, "plan.html", gin.H{"Rows": rows})
}

func (p *PlanController) Generate(c *gin.Context) {
	var param structs.PlanParam
	_ = c.ShouldBind(&param)

	startDate := strings.TrimSpace(param.StartDate)
	endDate := strings.TrimSpace(param.EndDate)
	if startDate == "" || endDate == "" {
		utils.RedirectWithFlash(c, page, "Bitte von_datum und bis_datum angeben.")
		return
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		utils.RedirectWithFlash(c, page, "Datum muss im Format YYYY-MM-DD sein.")
		return
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		utils.RedirectWithFlash(c, page, "Datum muss im Format YYYY-MM-DD sein.")
		return
	}

	created, err := p.plans.Generate(c.Request.Context(), middlewares.UserID(c), start, end)
	switch {
	case errors.Is(err, planService.ErrInvalidRange):
		utils.RedirectWithFlash(c, page, "bis_datum muss nach von_datum sein.")
	case errors.Is(err, planService.ErrProfileMissing):
		utils.RedirectWithFlash(c, profilePage, "Bitte zuerst Profil speichern, bevor du einen Plan generierst.")
	case errors.Is(err, planService.ErrNoGoalSelected):
		utils.RedirectWithFlash(c, profilePage, "Bitte zuerst einen Effekt/Ziel im Profil setzen.")
	case errors.Is(err, planService.ErrNoMatchingDishes):
		utils.RedirectWithFlash(c, page, "Keine passenden Gerichte gefunden. Bitte die Effekte der Gerichte prüfen.")
	case err != nil:
		_ = c.Error(err)
		utils.RedirectWithFlash(c, page, enums.MessageGenericError)
	default:
		utils.RedirectWithFlash(c, page, fmt.Sprintf("Ernährungsplan generiert: %d Einträge.", created))
	}
}

func (p *PlanController) ExportCSV(c *gin.Context) {
	var param structs.PlanParam
	_ = c.ShouldBindQuery(&param)

	startDate := strings.TrimSpace(param.StartDate)
	endDate := strings.TrimSpace(param.EndDate)
	if startDate == "" || endDate == "" {
		c.String(http.StatusBadRequest, "Bitte von_datum und bis_datum angeben (YYYY-MM-DD).")
		return
	}

	rows, err := p.plans.Export(middlewares.UserID(c), startDate, endDate)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := planService.WriteCSV(&buf, rows); err != nil {
		utils.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+csvFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

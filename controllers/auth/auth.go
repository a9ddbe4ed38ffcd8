package auth

import (
	"errors"
	"net/http"

	"nutriplan/middlewares"
	authService "nutriplan/services/auth"
	"nutriplan/structs"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *authService.AuthService
}

func NewAuthController(auth *authService.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type form struct {
	Title          string
	Action         string
	ButtonLabel    string
	FooterText     string
	FooterLinkURL  string
	FooterLinkText string
}

var (
	loginForm = form{
		Title:          "In dein Konto einloggen",
		Action:         "/login",
		ButtonLabel:    "Einloggen",
		FooterText:     "Noch kein Konto?",
		FooterLinkURL:  "/register",
		FooterLinkText: "Registrieren",
	}
	registerForm = form{
		Title:          "Neues Konto erstellen",
		Action:         "/register",
		ButtonLabel:    "Registrieren",
		FooterText:     "Du hast bereits ein Konto?",
		FooterLinkURL:  "/login",
		FooterLinkText: "Einloggen",
	}
)

func renderForm(c *gin.Context, f form, errorMessage string) {
	utils.Render(c, "auth.html", gin.H{"Form": f, "Error": errorMessage})
}

func (a *AuthController) LoginPage(c *gin.Context) {
	renderForm(c, loginForm, "")
}

func (a *AuthController) Login(c *gin.Context) {
	var param structs.CredentialParam
	_ = c.ShouldBind(&param)

	user, err := a.auth.Authenticate(param.Username, param.Password)
	if err != nil {
		if !errors.Is(err, authService.ErrInvalidCredentials) && !errors.Is(err, authService.ErrMissingCredentials) {
			_ = c.Error(err)
		}
		renderForm(c, loginForm, "Benutzername oder Passwort ist falsch.")
		return
	}
	token, err := a.auth.IssueToken(user)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, int(a.auth.TokenTTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) RegisterPage(c *gin.Context) {
	renderForm(c, registerForm, "")
}

func (a *AuthController) Register(c *gin.Context) {
	var param structs.CredentialParam
	_ = c.ShouldBind(&param)

	_, err := a.auth.Register(param.Username, param.Password)
	switch {
	case errors.Is(err, authService.ErrMissingCredentials):
		renderForm(c, registerForm, "Bitte Benutzername und Passwort ausfüllen.")
		return
	case errors.Is(err, authService.ErrUsernameTaken):
		renderForm(c, registerForm, "Benutzername existiert bereits.")
		return
	case err != nil:
		_ = c.Error(err)
		renderForm(c, registerForm, "Registrierung fehlgeschlagen.")
		return
	}
	utils.RedirectWithFlash(c, "/login", "Registrierung erfolgreich. Bitte einloggen.")
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

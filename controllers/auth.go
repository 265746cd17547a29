package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/services"
)

type AuthController struct {
	auth    *services.AuthService
	profile *services.ProfileService
	log     *logrus.Logger
}

func NewAuthController(auth *services.AuthService, profile *services.ProfileService, log *logrus.Logger) *AuthController {
	return &AuthController{auth: auth, profile: profile, log: log}
}

// Signup creates the account and logs the new user straight in.
func (ctl *AuthController) Signup(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	profile, err := ctl.auth.Register(input)
	if err != nil {
		return respondError(c, ctl.log, err)
	}

	token, err := ctl.auth.IssueSession(profile)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": fiber.Map{
			"id":    profile.ID,
			"email": profile.Email,
			"role":  profile.Role,
		},
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	profile, err := ctl.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return respondError(c, ctl.log, err)
	}

	token, err := ctl.auth.IssueSession(profile)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    profile.ID,
			"email": profile.Email,
			"role":  profile.Role,
		},
	})
}

// Logout revokes the current token and clears the cookie.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	ctl.auth.RevokeSession(c.Cookies(middleware.CookieName))
	clearSessionCookie(c)
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the caller's own profile.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	listing, err := ctl.profile.GetByID(identity.UserID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(listing)
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.SessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylink/internal/application/user/usecases"
	"skylink/internal/domain/user"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/config"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// SignupRequest is the signup form. ConfirmPassword never reaches the
// backend.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SessionView is what the client learns about the signed-in user.
type SessionView struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID uint   `json:"user_id"`
}

type AuthHandler struct {
	loginUseCase   loginUseCase
	signupUseCase  signupUseCase
	logoutUseCase  logoutUseCase
	profileUseCase profileUseCase
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	signupUC signupUseCase,
	logoutUC logoutUseCase,
	profileUC profileUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		signupUseCase:  signupUC,
		logoutUseCase:  logoutUC,
		profileUseCase: profileUC,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

// LoginPage sends a signed-in user to their home view instead of the form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	role := authorization.UserRole(c.GetString(authorization.ContextKeyRole))
	if role != "" {
		utils.NavigateResponse(c, http.StatusOK, role.HomeRoute(), "", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"authenticated": false})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var cmd usecases.LoginWithPasswordCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), middleware.Holder(c), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NavigateResponse(c, http.StatusOK, result.Redirect, usecases.MsgLoginSucceeded, SessionView{
		Email:  result.Session.Email,
		Role:   result.Session.Role.String(),
		UserID: result.Session.UserID,
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.signupUseCase.Execute(c.Request.Context(), user.Registration{
		Name:            req.Name,
		Email:           req.Email,
		MobileNumber:    req.MobileNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NavigateResponse(c, http.StatusCreated, authorization.RouteLogin, usecases.MsgSignupSucceeded, nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	route, err := h.logoutUseCase.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		h.logger.Errorw("logout failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.NavigateResponse(c, http.StatusOK, route, "Logged out", nil)
}

// Me returns the backend profile of the signed-in user.
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.profileUseCase.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// Unauthorized is the landing view for a role that may not see a page.
func (h *AuthHandler) Unauthorized(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "You don't have permission to access this page.", gin.H{
		"login_route": authorization.RouteLogin,
	})
}

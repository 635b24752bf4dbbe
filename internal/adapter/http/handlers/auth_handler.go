package handlers

import (
	"net/http"

	request "locaequip/internal/adapter/http/dto/request"
	response "locaequip/internal/adapter/http/dto/response"
	"locaequip/internal/infrastructure/auth"
	"locaequip/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
)

// AuthHandler issues bearer tokens for the protected API surface.
type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, expiresIn, err := h.service.Login(payload.Username, payload.Password)
	if err != nil {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}

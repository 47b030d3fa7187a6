package controllers

import (
	"errors"
	"net/http"

	"github.com/alibek123/DProject/pkg/resp"
	"github.com/alibek123/DProject/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email,
		"firstName": user.FirstName, "lastName": user.LastName, "role": user.Role,
	})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email,
			"firstName": user.FirstName, "lastName": user.LastName, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	v, _ := c.Get("userId")
	uid, _ := v.(uint)
	user, err := a.Svc.GetProfile(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email,
		"firstName": user.FirstName, "lastName": user.LastName, "role": user.Role,
	})
}

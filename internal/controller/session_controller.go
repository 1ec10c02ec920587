package controller

import (
	"github.com/AdityaANS/dsa-progress-tracker/internal/service"
	"github.com/AdityaANS/dsa-progress-tracker/internal/util"
	"github.com/gin-gonic/gin"
)

// SessionController feeds the identity event stream from verified
// tokens. The sign-in flow itself lives with the external provider.
type SessionController struct {
	Identity *service.IdentityService
}

func NewSessionController(identity *service.IdentityService) *SessionController {
	return &SessionController{Identity: identity}
}

type SignInRequest struct {
	Token string `json:"token" binding:"required"`
}

// SignIn godoc
// @Summary Start an authenticated session
// @Description Verifies the provider-issued token and emits a sign-in
// @Description event consumed by the sync engine.
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/session [post]
func (c *SessionController) SignIn(ctx *gin.Context) {
	var req SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	identity, err := c.Identity.SignIn(req.Token)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, identity)
}

// SignOut godoc
// @Summary End the authenticated session
// @Tags session
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/session [delete]
func (c *SessionController) SignOut(ctx *gin.Context) {
	c.Identity.SignOut()
	util.Success(ctx, gin.H{"signedOut": true})
}

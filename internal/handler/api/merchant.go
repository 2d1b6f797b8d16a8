package api

import (
	"errors"
	"net/http"

	reqdto "paylane/internal/handler/dto/request"
	resdto "paylane/internal/handler/dto/response"
	"paylane/internal/handler/httperr"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	cmds commands.MerchantCommands
}

func NewMerchantHandler(cmds commands.MerchantCommands) *MerchantHandler {
	return &MerchantHandler{cmds: cmds}
}

// @Summary Register merchant
// @Description Register a merchant account and issue an API key
// @Tags merchants
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterMerchantRequest true "Register merchant request"
// @Success 201 {object} resdto.MerchantResponse
// @Failure 400 {object} map[string]string
// @Router /merchants [post]
func (h *MerchantHandler) Register(c *gin.Context) {
	var req reqdto.RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), commands.RegisterMerchantRequest{
		Name:          req.Name,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid merchant", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Register merchant failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMerchantResult(result))
}

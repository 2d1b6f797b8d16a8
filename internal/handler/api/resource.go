package api

import (
	"errors"
	"net/http"

	reqdto "paylane/internal/handler/dto/request"
	resdto "paylane/internal/handler/dto/response"
	"paylane/internal/handler/httperr"
	"paylane/internal/handler/middleware"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	cmds commands.ResourceCommands
	q    queries.ResourceQueries
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q}
}

// @Summary Create resource
// @Description Register a monetizable resource with a fixed price
// @Tags resources
// @Accept json
// @Produce json
// @Param X-API-Key header string true "Merchant API key"
// @Param request body reqdto.CreateResourceRequest true "Create resource request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	ownerKey, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing api key"), "API key required", nil)
		return
	}

	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateResource(c.Request.Context(), ownerKey, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMerchantNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid API key", nil)
		case errors.Is(err, errs.ErrDuplicateResource):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Resource already exists", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create resource failed", nil)
		}
		return
	}

	c.Header("Location", "/api/resources/"+result.ResourceID.String())
	c.JSON(http.StatusCreated, gin.H{"id": result.ResourceID.String()})
}

// @Summary List resources
// @Description List the calling merchant's resources in insertion order
// @Tags resources
// @Produce json
// @Param X-API-Key header string true "Merchant API key"
// @Success 200 {object} map[string][]resdto.ResourceResponse
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	ownerKey, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing api key"), "API key required", nil)
		return
	}

	// Unknown keys list empty rather than erroring: a key with no
	// resources and an unregistered key are indistinguishable.
	items, err := h.q.ListByOwner(c.Request.Context(), ownerKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List resources failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resources": resdto.FromResourceList(items)})
}

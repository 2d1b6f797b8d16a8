package api

import (
	"net/http"

	resdto "paylane/internal/handler/dto/response"
	"paylane/internal/handler/httperr"
	"paylane/internal/handler/middleware"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Revenue analytics
// @Description Point-in-time rollup of session counts and paid revenue
// @Tags analytics
// @Produce json
// @Param X-API-Key header string true "Merchant API key"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 401 {object} map[string]string
// @Router /analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	ownerKey, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing api key"), "API key required", nil)
		return
	}

	view, err := h.q.Recompute(c.Request.Context(), ownerKey)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recompute analytics failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}

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
	"github.com/google/uuid"
)

type SessionHandler struct {
	cmds commands.SessionCommands
	q    queries.SessionQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// @Summary Open payment session
// @Description Open a pending pay-per-use session against a resource, snapshotting its price
// @Tags sessions
// @Accept json
// @Produce json
// @Param X-API-Key header string true "Merchant API key"
// @Param request body reqdto.OpenSessionRequest true "Open session request"
// @Success 201 {object} resdto.OpenSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Open(c *gin.Context) {
	ownerKey, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing api key"), "API key required", nil)
		return
	}

	var req reqdto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.OpenSession(c.Request.Context(), ownerKey, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMerchantNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid API key", nil)
		case errors.Is(err, errs.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Open session failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOpenSessionResult(result))
}

// @Summary Mark session paid
// @Description Apply the pending→paid transition; idempotent on retries
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/paid [post]
func (h *SessionHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	snap, err := h.cmds.MarkPaid(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark paid failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionSnapshot(snap))
}

// @Summary Check session status
// @Description Read the session status snapshot; safe to poll
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}

	view, err := h.q.CheckStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Check status failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionStatusView(view))
}

// @Summary List all sessions
// @Description List every session across all resources and owners
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string][]resdto.SessionResponse
// @Router /sessions [get]
func (h *SessionHandler) ListAll(c *gin.Context) {
	items, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List sessions failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": resdto.FromSessionList(items)})
}

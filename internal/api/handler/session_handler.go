package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api/metrics"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

type SessionHandler struct {
	sessionService ports.SessionService
}

func NewSessionHandler(sessionService ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type recordSessionRequest struct {
	TherapyType string `json:"therapyType" validate:"required,oneof=audio reading yoga laughing talking child spiritual"`
	ContentID   string `json:"contentId" validate:"required"`
	Duration    int64  `json:"duration" validate:"gte=0"`
	MoodBefore  int    `json:"moodBefore,omitempty" validate:"omitempty,gte=1,lte=10"`
	MoodAfter   int    `json:"moodAfter,omitempty" validate:"omitempty,gte=1,lte=10"`
	Notes       string `json:"notes,omitempty"`
}

type recordSessionResponse struct {
	Message string                 `json:"message"`
	Session *domain.TherapySession `json:"session"`
}

type sessionHistoryResponse struct {
	Sessions    []*domain.TherapySession `json:"sessions"`
	TotalPages  int                      `json:"totalPages"`
	CurrentPage int                      `json:"currentPage"`
	Total       int64                    `json:"total"`
}

// Record persists a completed therapy session for the authenticated user and
// bumps their progress counters.
//
// @Summary      Record a completed therapy session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordSessionRequest  true  "Session details"
// @Success      201   {object}  recordSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /sessions [post]
func (h *SessionHandler) Record(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req recordSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := h.sessionService.Record(c.Request().Context(), userID, ports.RecordSessionInput{
		TherapyType: req.TherapyType,
		ContentID:   req.ContentID,
		Duration:    req.Duration,
		MoodBefore:  req.MoodBefore,
		MoodAfter:   req.MoodAfter,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SessionsRecordedTotal.WithLabelValues(string(session.TherapyType)).Inc()

	return c.JSON(http.StatusCreated, recordSessionResponse{
		Message: "Session recorded successfully",
		Session: session,
	})
}

// History returns one page of the authenticated user's session records,
// newest first.
//
// @Summary      List own session history
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  sessionHistoryResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /sessions/history [get]
func (h *SessionHandler) History(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	history, err := h.sessionService.History(c.Request().Context(), userID, page, limit)
	if err != nil {
		return err
	}

	if history.Sessions == nil {
		history.Sessions = []*domain.TherapySession{}
	}

	return c.JSON(http.StatusOK, sessionHistoryResponse{
		Sessions:    history.Sessions,
		TotalPages:  history.TotalPages,
		CurrentPage: history.CurrentPage,
		Total:       history.Total,
	})
}

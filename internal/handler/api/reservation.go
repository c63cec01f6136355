package api

import (
	"net/http"
	"strconv"

	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/internal/handler/httperr"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	queries queries.ReservationQueries
}

func NewReservationHandler(q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{queries: q}
}

// @Summary Get reservation
// @Description Get a stored reservation by GP code or id
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation code or id"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.queries.GetByCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			if err == nil {
				err = errs.New("negative limit")
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.queries.List(c.Request.Context(), after, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out, err := resdto.FromReservationList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

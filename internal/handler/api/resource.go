package api

import (
	"net/http"
	"strconv"

	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q queries.ResourceQueries
}

func NewResourceHandler(q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{q: q}
}

// @Summary List rooms
// @Tags resources
// @Produce json
// @Success 200 {array} resdto.ResourceResponse
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Get room
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Room availability
// @Description Free windows of the given day for a room
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	view, err := h.q.Availability(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func resourceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.AbortWithCode(c, http.StatusBadRequest, errBadID(err), "malformed_input", "Invalid resource ID", nil)
		return 0, false
	}
	return id, true
}

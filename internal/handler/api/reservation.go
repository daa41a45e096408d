package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Request a location and materials for a time slot. The reservation starts as pending.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+res.ID().String())
	h.render(c, http.StatusCreated, res.ID())
}

// @Summary Get reservation
// @Description Get a reservation visible to the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary List reservations
// @Description List reservations ordered by start time. Non-managers only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param location_id query string false "Location ID"
// @Param requester_id query string false "Requester ID (managers only)"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param limit query int false "Max items"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	filter, err := parseReservationFilter(c)
	if err != nil {
		respondBadRequest(c, err, "Invalid query parameter")
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			respondBadRequest(c, err, "Invalid limit")
			return
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), actor, filter, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationList(items, next)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update reservation
// @Description Change slot, location, purpose, assignee or materials of a pending or approved reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Changes"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Approve reservation
// @Description Approve a pending reservation and reserve its materials
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uuid.UUID) error {
		actor, _ := middleware.GetActor(c)
		_, err := h.cmds.Approve(c.Request.Context(), actor, id)
		return err
	})
}

// @Summary Reject reservation
// @Description Reject a pending reservation with a reason
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	h.transition(c, func(c *gin.Context, id uuid.UUID) error {
		actor, _ := middleware.GetActor(c)
		_, err := h.cmds.Reject(c.Request.Context(), actor, id, req.Reason)
		return err
	})
}

// @Summary Cancel reservation
// @Description Cancel a pending or approved reservation; approved ones return their materials
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uuid.UUID) error {
		actor, _ := middleware.GetActor(c)
		_, err := h.cmds.Cancel(c.Request.Context(), actor, id)
		return err
	})
}

// @Summary Delete reservation
// @Description Remove a reservation; approved ones return their materials first
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List reservation materials
// @Description Materials requested by a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.ReservationMaterialResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/materials [get]
func (h *ReservationHandler) ListMaterials(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	items, err := h.q.ListMaterials(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationMaterials(items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) transition(c *gin.Context, run func(c *gin.Context, id uuid.UUID) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := middleware.GetActor(c); !ok {
		respondUnauthenticated(c)
		return
	}
	if err := run(c, id); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

func (h *ReservationHandler) render(c *gin.Context, status int, id uuid.UUID) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parseReservationFilter(c *gin.Context) (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	for _, raw := range c.QueryArray("status") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Statuses = append(f.Statuses, s)
			}
		}
	}
	var err error
	if f.LocationID, err = optionalUUID(c, "location_id"); err != nil {
		return f, err
	}
	if f.RequesterID, err = optionalUUID(c, "requester_id"); err != nil {
		return f, err
	}
	if f.From, err = optionalTime(c, "from"); err != nil {
		return f, err
	}
	if f.To, err = optionalTime(c, "to"); err != nil {
		return f, err
	}
	return f, nil
}

func optionalUUID(c *gin.Context, key string) (*uuid.UUID, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, errs.Wrapf(err, "%s", key)
	}
	return &id, nil
}

func optionalTime(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errs.Wrapf(err, "%s", key)
	}
	return &t, nil
}

package api

import (
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DirectoryHandler struct {
	cmds commands.DirectoryCommands
	q    queries.DirectoryQueries
}

func NewDirectoryHandler(cmds commands.DirectoryCommands, q queries.DirectoryQueries) *DirectoryHandler {
	return &DirectoryHandler{cmds: cmds, q: q}
}

// @Summary List locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param type query string false "classroom, laboratory or amphitheater"
// @Success 200 {array} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Router /locations [get]
func (h *DirectoryHandler) ListLocations(c *gin.Context) {
	var filter queries.LocationFilter
	if t := c.Query("type"); t != "" {
		filter.Type = &t
	}
	views, err := h.q.ListLocations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromLocationViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *DirectoryHandler) GetLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.renderLocation(c, http.StatusOK, id)
}

// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /locations [post]
func (h *DirectoryHandler) CreateLocation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	loc, err := h.cmds.CreateLocation(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/locations/"+loc.ID().String())
	h.renderLocation(c, http.StatusCreated, loc.ID())
}

// @Summary Update location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Changes"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [put]
func (h *DirectoryHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.UpdateLocation(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	h.renderLocation(c, http.StatusOK, id)
}

// @Summary List materials
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MaterialResponse
// @Router /materials [get]
func (h *DirectoryHandler) ListMaterials(c *gin.Context) {
	views, err := h.q.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromMaterialViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} resdto.MaterialResponse
// @Failure 404 {object} httperr.Response
// @Router /materials/{id} [get]
func (h *DirectoryHandler) GetMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.renderMaterial(c, http.StatusOK, id)
}

// @Summary Create material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMaterialRequest true "Material"
// @Success 201 {object} resdto.MaterialResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /materials [post]
func (h *DirectoryHandler) CreateMaterial(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	m, err := h.cmds.CreateMaterial(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/materials/"+m.ID().String())
	h.renderMaterial(c, http.StatusCreated, m.ID())
}

// @Summary Update material
// @Description Rename or describe a material. Stock changes go through restock and reservations.
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param request body reqdto.UpdateMaterialRequest true "Changes"
// @Success 200 {object} resdto.MaterialResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /materials/{id} [put]
func (h *DirectoryHandler) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.UpdateMaterial(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	h.renderMaterial(c, http.StatusOK, id)
}

// @Summary Restock material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param request body reqdto.RestockRequest true "Units received"
// @Success 200 {object} resdto.MaterialResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /materials/{id}/restock [post]
func (h *DirectoryHandler) Restock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request")
		return
	}
	if _, err := h.cmds.Restock(c.Request.Context(), actor, id, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	h.renderMaterial(c, http.StatusOK, id)
}

func (h *DirectoryHandler) renderLocation(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetLocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromLocationView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *DirectoryHandler) renderMaterial(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetMaterial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromMaterialView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

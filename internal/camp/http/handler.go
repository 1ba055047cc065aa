package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/camp"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/request"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

type CampHandler struct {
	service camp.Service
}

func NewHandler(s camp.Service) *CampHandler {
	return &CampHandler{service: s}
}

// List returns all camps, optionally ordered by post time.
func (h *CampHandler) List(c *gin.Context) {
	var req ListCampsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	camps, err := h.service.List(c.Request.Context(), camp.Filter{Sort: req.Sort})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newCampList(camps))
}

// Popular returns the most attended camps inside a success envelope.
func (h *CampHandler) Popular(c *gin.Context) {
	camps, err := h.service.Popular(c.Request.Context())
	if err != nil {
		response.Failure(c, err, "An error occurred while fetching popular camps")
		return
	}

	c.JSON(http.StatusOK, PopularCampsResponse{Success: true, Data: newCampList(camps)})
}

func (h *CampHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	camps, err := h.service.Search(c.Request.Context(), req.V)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newCampList(camps))
}

func (h *CampHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	cp, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCampResponse(cp))
}

// Create stores a new camp on behalf of the calling admin.
// Access Control: Admin only. The contributor must be the caller.
func (h *CampHandler) Create(c *gin.Context) {
	var req CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if req.ContributorUID == "" {
		req.ContributorUID = auth.GetUserID(c)
	}
	if !auth.IsOwner(c, req.ContributorUID) {
		response.Error(c, auth.ErrNotOwner)
		return
	}

	cp, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCampResponse(cp))
}

// Update merges the supplied fields into the camp.
// Access Control: Admin only.
func (h *CampHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	var body UpdateCampRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid body", err)
		return
	}

	cp, err := h.service.Update(c.Request.Context(), uri.ID, camp.UpdateRequest{
		Name:                   body.Name,
		Image:                  body.Image,
		Fees:                   body.Fees,
		DateTime:               body.DateTime,
		Location:               body.Location,
		HealthcareProfessional: body.HealthcareProfessional,
		Description:            body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCampResponse(cp))
}

func (h *CampHandler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// IncrementParticipants adds one participant and returns the new count.
func (h *CampHandler) IncrementParticipants(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	n, err := h.service.IncrementParticipants(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ParticipantCountResponse{ParticipantCount: n})
}

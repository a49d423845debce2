package delivery

import (
	"net/http"

	"katana_store/internal/domain"
	"katana_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type KatanaHandler struct {
	useCase usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewKatanaHandler(uc usecase.CatalogUseCase, logger *logrus.Logger) *KatanaHandler {
	return &KatanaHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *KatanaHandler) RegisterRoutes(router gin.IRouter) {
	katanas := router.Group("/api/katanas")
	{
		katanas.GET("", h.ListKatanas)
		katanas.POST("", h.CreateKatana)
	}
}

// createKatanaRequest is the create payload. Pointer fields distinguish
// omitted values from explicit zeros so defaults only apply on omission.
type createKatanaRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Steel         string   `json:"steel"`
	BladeLengthCM *float64 `json:"blade_length_cm" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Images        []string `json:"images"`
}

func (r *createKatanaRequest) toDomain() *domain.Katana {
	katana := &domain.Katana{
		Name:          r.Name,
		Description:   r.Description,
		Steel:         r.Steel,
		BladeLengthCM: r.BladeLengthCM,
		Price:         *r.Price,
		Rating:        domain.DefaultRating,
		Images:        r.Images,
	}
	if r.Stock != nil {
		katana.Stock = *r.Stock
	}
	if r.Rating != nil {
		katana.Rating = *r.Rating
	}
	if katana.Images == nil {
		katana.Images = []string{}
	}
	return katana
}

func (h *KatanaHandler) ListKatanas(c *gin.Context) {
	query := c.Query("q")

	katanas, err := h.useCase.ListKatanas(c.Request.Context(), query)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list katanas (q=%q): %v", query, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}
	if katanas == nil {
		katanas = []domain.Katana{}
	}

	h.log.Infof("Retrieved %d katanas (q=%q)", len(katanas), query)
	c.JSON(http.StatusOK, gin.H{"items": katanas})
}

func (h *KatanaHandler) CreateKatana(c *gin.Context) {
	var req createKatanaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create katana: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	katana := req.toDomain()
	created, err := h.useCase.CreateKatana(c.Request.Context(), katana)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create katana '%s': %v", katana.Name, err)
		ErrorResponse(c, statusCode, "Failed to create katana: "+err.Error())
		return
	}

	h.log.Infof("Katana created successfully: ID %s, Name %s", created.ID.Hex(), created.Name)
	c.JSON(http.StatusOK, gin.H{"id": created.ID.Hex()})
}

package delivery

import (
	"net/http"

	"katana_store/internal/domain"
	"katana_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	useCase usecase.CheckoutUseCase
	log     *logrus.Logger
}

func NewCheckoutHandler(uc usecase.CheckoutUseCase, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/checkout", h.Checkout)
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for checkout: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.useCase.Checkout(c.Request.Context(), &req)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Checkout failed for %s: %v", req.CustomerEmail, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Checkout completed: order %s, total %.2f", order.ID.Hex(), order.Total)
	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID.Hex(),
		"total":    order.Total,
	})
}

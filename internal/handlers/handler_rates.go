package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers the read-only and administration rate routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/rates", h.getRates)

	admin := rg.Group("/admin/rates")
	{
		admin.GET("", h.getRates)
		admin.POST("/update", h.updateRate)
		admin.POST("/add", h.addRate)
		admin.POST("/delete", h.deleteRate)
		admin.POST("/reset", h.resetRates)
	}
}

// getRates godoc
// @Summary Get my rates
// @Description Returns the rate table used for the caller's conversions.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates [get]
// @Router /admin/rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eff, err := h.rateService.GetEffectiveRates(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "get rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(eff))
}

// updateRate godoc
// @Summary Set a rate
// @Description Creates or overwrites one entry of the caller's personal table.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.UpdateRateRequest true "Currency and rate"
// @Success 200 {object} dto.RateMutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates/update [post]
func (h *rateHandler) updateRate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	eff, err := h.rateService.SetRate(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "update rate")
		return
	}

	c.JSON(http.StatusOK, dto.RateMutationResponse{Message: "Rate updated successfully", Rates: dto.ToRatesResponse(eff)})
}

// addRate godoc
// @Summary Add a currency
// @Description Adds a currency that is not yet in the caller's personal table.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.AddRateRequest true "New currency and rate"
// @Success 200 {object} dto.RateMutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Currency already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates/add [post]
func (h *rateHandler) addRate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	eff, err := h.rateService.AddRate(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "add rate")
		return
	}

	c.JSON(http.StatusOK, dto.RateMutationResponse{Message: "Currency added successfully", Rates: dto.ToRatesResponse(eff)})
}

// deleteRate godoc
// @Summary Delete a currency
// @Description Removes a currency from the caller's personal table. USD cannot be removed.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.DeleteRateRequest true "Currency to delete"
// @Success 200 {object} dto.RateMutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates/delete [post]
func (h *rateHandler) deleteRate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	eff, err := h.rateService.DeleteRate(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "delete rate")
		return
	}

	c.JSON(http.StatusOK, dto.RateMutationResponse{Message: "Currency deleted successfully", Rates: dto.ToRatesResponse(eff)})
}

// resetRates godoc
// @Summary Reset rates
// @Description Replaces the caller's personal table with a copy of the baseline.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateMutationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates/reset [post]
func (h *rateHandler) resetRates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eff, err := h.rateService.ResetRates(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "reset rates")
		return
	}

	c.JSON(http.StatusOK, dto.RateMutationResponse{Message: "Rates reset to baseline values", Rates: dto.ToRatesResponse(eff)})
}

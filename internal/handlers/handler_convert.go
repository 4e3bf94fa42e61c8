package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type convertHandler struct {
	conversionService portssvc.ConversionSvc
	analytics         *utils.PosthogClientWrapper
}

func registerConvertRoutes(rg *gin.RouterGroup, cs portssvc.ConversionSvc, analytics *utils.PosthogClientWrapper) {
	h := &convertHandler{conversionService: cs, analytics: analytics}
	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two currencies using the caller's rates. The result is rounded to 4 decimal places.
// @Tags convert
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Amount and currency pair"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	res, err := h.conversionService.Convert(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "convert")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "currency_converted", map[string]any{
		"from_currency": res.FromCurrency,
		"to_currency":   res.ToCurrency,
	})
	c.JSON(http.StatusOK, dto.ToConvertResponse(res))
}

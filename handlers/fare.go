package handlers

import (
	"net/http"

	"swiftcab/models"
	"swiftcab/services/fare"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
)

// FareHandler exposes the fare calculator.
type FareHandler struct {
	Svc fare.Service
}

func NewFareHandler(svc fare.Service) *FareHandler {
	return &FareHandler{Svc: svc}
}

// QuoteFare computes a fare quote for a route and vehicle class.
func (h *FareHandler) QuoteFare(c *gin.Context) {
	var req models.FareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Svc.Quote(req)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "no quote available", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

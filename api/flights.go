package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/Domenick1991/flightregistry/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

func NewFlightHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, bookings: bookings}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:number", h.get)
	router.POST("", h.create)
	router.DELETE("/:number", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	board, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *FlightHandler) get(c *gin.Context) {
	number, ok := flightNumberParam(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByNumber(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req booking.CreateFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.bookings.CreateFlight(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	number, ok := flightNumberParam(c)
	if !ok {
		return
	}
	if err := h.bookings.DeleteFlight(c.Request.Context(), number); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func flightNumberParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return 0, false
	}
	return number, true
}

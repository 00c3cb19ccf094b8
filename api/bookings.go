package api

import (
	"net/http"

	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingRequest struct {
	PassengerID  string `json:"passenger_id" binding:"required"`
	FlightNumber int    `json:"flight_number"`
}

type passengerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
	Luggage  int    `json:"luggage"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.book)
	router.DELETE("/bookings", h.cancel)
	router.POST("/passengers", h.registerPassenger)
	router.GET("/passengers", h.listPassengers)
	router.GET("/passengers/:id/history", h.history)
}

func (h *BookingHandler) book(c *gin.Context) {
	passengerID, flightNumber, ok := bindBookingRequest(c)
	if !ok {
		return
	}

	receipt, err := h.service.BookFlight(c.Request.Context(), passengerID, flightNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	passengerID, flightNumber, ok := bindBookingRequest(c)
	if !ok {
		return
	}

	receipt, err := h.service.CancelFlight(c.Request.Context(), passengerID, flightNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *BookingHandler) registerPassenger(c *gin.Context) {
	var req booking.RegisterPassengerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.service.RegisterPassenger(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPassengerResponse(passenger))
}

func (h *BookingHandler) listPassengers(c *gin.Context) {
	passengers, err := h.service.ListPassengers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]passengerResponse, 0, len(passengers))
	for _, p := range passengers {
		response = append(response, newPassengerResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) history(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passenger id"})
		return
	}

	history, err := h.service.FlightHistory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func newPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Age:      p.Age,
		Location: p.Where(),
		Luggage:  p.LuggageCount(),
	}
}

func bindBookingRequest(c *gin.Context) (uuid.UUID, int, bool) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, 0, false
	}
	id, err := uuid.Parse(req.PassengerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid passenger id"})
		return uuid.Nil, 0, false
	}
	return id, req.FlightNumber, true
}

package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrFlightNotFound), errors.Is(err, booking.ErrPassengerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrValidation), errors.Is(err, booking.ErrInvalidEntity):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrAlreadyBooked):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// File: handlers/booking.go
package handlers

import (
	"fmt"
	"net/http"

	"maggamhub/config"
	bookingRepo "maggamhub/database/repository/booking"
	"maggamhub/models"
	"maggamhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking submission and admin review endpoints.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// CreateBookingHandler accepts a public booking submission. Name, phone and
// service are required; amount may arrive as a JSON string or number and
// defaults from configuration when absent.
func (bh *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Service string `json:"service" binding:"required"`
		Amount  any    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	amount := config.AppConfig.DefaultBookingAmount
	if input.Amount != nil {
		amount = fmt.Sprint(input.Amount)
	}

	booking := models.Booking{
		BookingID: utils.NewBookingID(),
		Name:      input.Name,
		Phone:     input.Phone,
		Service:   input.Service,
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: utils.CurrentTimestamp(),
	}

	if err := bh.Repo.Create(&booking); err != nil {
		zap.L().Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking_id": booking.BookingID,
	})
}

// ListBookingsHandler returns all bookings in storage order.
func (bh *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := bh.Repo.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatusHandler sets the status of a booking by its booking_id. An
// unknown booking_id succeeds with zero records affected.
func (bh *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		BookingID string `json:"booking_id" binding:"required"`
		Status    string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if err := bh.Repo.UpdateStatus(input.BookingID, input.Status); err != nil {
		zap.L().Error("Failed to update booking status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/salonhub/booking-api/internal/domain/appointment"
	"github.com/salonhub/booking-api/internal/httperr"
	"github.com/salonhub/booking-api/internal/httpresp"
	"github.com/salonhub/booking-api/internal/middleware"
	ucAppointment "github.com/salonhub/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	SalonID     uint   `json:"salon" binding:"required"`
	HairstyleID uint   `json:"hairstyle" binding:"required"`
	Date        string `json:"appointment_date" binding:"required"`
	Time        string `json:"appointment_time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"appointment_date,omitempty"`
	Time   *string `json:"appointment_time,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:      userID,
		SalonID:     req.SalonID,
		HairstyleID: req.HairstyleID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// RETRIEVE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	out, err := h.getUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.updateUC.Execute(c.Request.Context(), id, userID, domain.UpdateFields{
		Date:   req.Date,
		Time:   req.Time,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, userID); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.Status(204)
}

// ======================================================
// HELPERS
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return 0, false
	}
	return uint(id), true
}

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "salon_not_found"):
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
	case httperr.IsBusiness(err, "hairstyle_not_found"):
		httperr.NotFound(c, "hairstyle_not_found", "Estilo não encontrado.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida (use HH:MM).")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

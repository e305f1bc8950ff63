package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/salonhub/booking-api/internal/domain/appointment"
	"github.com/salonhub/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Hairstyle
// --------------------------------------------------

func (r *AppointmentGormRepository) GetHairstyleByID(
	ctx context.Context,
	id uint,
) (*models.Hairstyle, error) {

	var style models.Hairstyle
	if err := r.db.WithContext(ctx).First(&style, id).Error; err != nil {
		return nil, err
	}
	return &style, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Salon").
		Preload("Hairstyle").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Salon").
		Preload("Hairstyle").
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

package dto

import (
	"time"

	"github.com/salaoflow/salon-scheduler/internal/models"
)

type BookingListDTO struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	ServiceName      string    `json:"service_name"`
	Notes            string    `json:"notes"`
}

func BookingList(items []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(items))
	for _, b := range items {
		d := BookingListDTO{
			ID:               b.ID,
			Reference:        b.Reference,
			StartTime:        b.StartTime,
			EndTime:          b.EndTime,
			Status:           b.Status,
			ClientName:       b.Client.Name,
			ProfessionalName: b.Professional.Name,
			Notes:            b.Notes,
		}
		if b.Service != nil {
			d.ServiceName = b.Service.Name
		}
		out = append(out, d)
	}
	return out
}

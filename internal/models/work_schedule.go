package models

import "time"

// WorkSchedule holds one weekday of a professional's working grid.
// Weekday is indexed 0=Monday .. 6=Sunday. Times are wall-clock "HH:MM"
// strings; an empty lunch pair means no lunch break that day.
type WorkSchedule struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_professional_weekday;not null" json:"professional_id"`
	Professional   User `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday int `gorm:"uniqueIndex:idx_professional_weekday;not null" json:"weekday"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	DayOff     bool   `gorm:"default:false" json:"day_off"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

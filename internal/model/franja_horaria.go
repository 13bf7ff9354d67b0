package model

import "time"

// FranjaHoraria is one contiguous scheduled block of a room's week.
// It maps to table franjas_horarias. Dia runs 0 (Monday) to 6 (Sunday);
// times are zero-padded "HH:MM" with hora_inicio < hora_fin.
type FranjaHoraria struct {
	FranjaID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"franja_id"`
	AmbienteID string    `gorm:"type:uuid;not null;index"                       json:"ambiente_id"`
	Dia        int       `gorm:"type:smallint;not null"                         json:"dia"`
	HoraInicio string    `gorm:"type:varchar(5);not null"                       json:"hora_inicio"`
	HoraFin    string    `gorm:"type:varchar(5);not null"                       json:"hora_fin"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (FranjaHoraria) TableName() string { return "franjas_horarias" }

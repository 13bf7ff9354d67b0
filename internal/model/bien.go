package model

// Bien is a physical asset identified by its inventory tag (NIA).
// It maps to table bienes.
// AmbienteID is NULL while the asset is not assigned to any room.
type Bien struct {
	BienID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"bien_id"`
	NIA         string  `gorm:"column:nia;type:varchar(30);not null;uniqueIndex" json:"nia"`
	Descripcion string  `gorm:"type:varchar(200);not null"                     json:"descripcion"`
	AmbienteID  *string `gorm:"type:uuid"                                      json:"ambiente_id,omitempty"`
	BaseModel

	Ambiente *Ambiente `gorm:"foreignKey:AmbienteID;references:AmbienteID" json:"ambiente,omitempty"`
}

// TableName sets the table name.
func (Bien) TableName() string { return "bienes" }

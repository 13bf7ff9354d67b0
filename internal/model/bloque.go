package model

// Bloque is a building inside a campus. It maps to table bloques.
type Bloque struct {
	BloqueID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"bloque_id"`
	Nombre       string  `gorm:"type:varchar(100);not null"                     json:"nombre"`
	Codigo       string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"codigo"`
	SedeID       string  `gorm:"type:uuid;not null"                             json:"sede_id"`
	FacultadID   *string `gorm:"type:uuid"                                      json:"facultad_id,omitempty"` // NULL for shared blocks
	TipoBloqueID string  `gorm:"type:uuid;not null"                             json:"tipo_bloque_id"`
	Pisos        int     `gorm:"type:smallint;not null;default:1"               json:"pisos"`
	Activo       bool    `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel

	Sede       *Sede       `gorm:"foreignKey:SedeID;references:SedeID"                   json:"sede,omitempty"`
	Facultad   *Facultad   `gorm:"foreignKey:FacultadID;references:FacultadID"           json:"facultad,omitempty"`
	TipoBloque *TipoBloque `gorm:"foreignKey:TipoBloqueID;references:TipoBloqueID"       json:"tipo_bloque,omitempty"`
}

// TableName sets the table name.
func (Bloque) TableName() string { return "bloques" }

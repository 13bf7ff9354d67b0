package model

// Ambiente is a schedulable room inside a block. It maps to table ambientes.
// HoraApertura/HoraCierre/Periodo define the grid the weekly schedule
// (franjas_horarias) must align to.
type Ambiente struct {
	AmbienteID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"ambiente_id"`
	Nombre         string `gorm:"type:varchar(100);not null"                     json:"nombre"`
	Codigo         string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"codigo"`
	BloqueID       string `gorm:"type:uuid;not null"                             json:"bloque_id"`
	TipoAmbienteID string `gorm:"type:uuid;not null"                             json:"tipo_ambiente_id"`
	Piso           int    `gorm:"type:smallint;not null;default:0"               json:"piso"`
	Capacidad      int    `gorm:"not null;default:0"                             json:"capacidad"`
	Activo         bool   `gorm:"not null;default:true"                          json:"activo"`
	HoraApertura   string `gorm:"type:varchar(5);not null;default:'07:00'"       json:"hora_apertura"`
	HoraCierre     string `gorm:"type:varchar(5);not null;default:'22:00'"       json:"hora_cierre"`
	Periodo        int    `gorm:"type:smallint;not null;default:60"              json:"periodo"` // minutes
	SoftDeleteModel

	Bloque       *Bloque       `gorm:"foreignKey:BloqueID;references:BloqueID"                   json:"bloque,omitempty"`
	TipoAmbiente *TipoAmbiente `gorm:"foreignKey:TipoAmbienteID;references:TipoAmbienteID"       json:"tipo_ambiente,omitempty"`
}

// TableName sets the table name.
func (Ambiente) TableName() string { return "ambientes" }

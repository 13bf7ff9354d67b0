package model

// Sede is a university campus. It maps to table sedes.
type Sede struct {
	SedeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"sede_id"`
	Nombre    string `gorm:"type:varchar(100);not null"                     json:"nombre"`
	Direccion string `gorm:"type:varchar(200)"                              json:"direccion,omitempty"`
	Activo    bool   `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Sede) TableName() string { return "sedes" }

package model

// TipoAmbiente classifies rooms (aula, laboratorio, auditorio...).
// It maps to table tipos_ambiente.
type TipoAmbiente struct {
	TipoAmbienteID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tipo_ambiente_id"`
	Nombre         string `gorm:"type:varchar(50);not null"                      json:"nombre"`
	Descripcion    string `gorm:"type:text"                                      json:"descripcion,omitempty"`
	Activo         bool   `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel
}

// TableName sets the table name.
func (TipoAmbiente) TableName() string { return "tipos_ambiente" }

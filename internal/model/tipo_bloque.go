package model

// TipoBloque classifies buildings. It maps to table tipos_bloque.
type TipoBloque struct {
	TipoBloqueID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tipo_bloque_id"`
	Nombre       string `gorm:"type:varchar(50);not null"                      json:"nombre"`
	Descripcion  string `gorm:"type:text"                                      json:"descripcion,omitempty"`
	Activo       bool   `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel
}

// TableName sets the table name.
func (TipoBloque) TableName() string { return "tipos_bloque" }

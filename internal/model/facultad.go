package model

// Facultad is an academic faculty. It maps to table facultades.
type Facultad struct {
	FacultadID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"facultad_id"`
	Nombre     string `gorm:"type:varchar(100);not null"                     json:"nombre"`
	Sigla      string `gorm:"type:varchar(20)"                               json:"sigla,omitempty"`
	Activo     bool   `gorm:"not null;default:true"                          json:"activo"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Facultad) TableName() string { return "facultades" }

package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Sede         SedeRepository
	Facultad     FacultadRepository
	TipoBloque   TipoBloqueRepository
	Bloque       BloqueRepository
	TipoAmbiente TipoAmbienteRepository
	Ambiente     AmbienteRepository
	Bien         BienRepository
	Franja       FranjaRepository
}

// NewRepository wires every repository over the shared gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Sede:         NewSedeRepo(db),
		Facultad:     NewFacultadRepo(db),
		TipoBloque:   NewTipoBloqueRepo(db),
		Bloque:       NewBloqueRepo(db),
		TipoAmbiente: NewTipoAmbienteRepo(db),
		Ambiente:     NewAmbienteRepo(db),
		Bien:         NewBienRepo(db),
		Franja:       NewFranjaRepo(db),
	}
}

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/schedule"
)

// In-memory repositories so services can be exercised without a database.

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		Sede:         &mockSedeRepo{items: map[string]*model.Sede{}},
		Facultad:     &mockFacultadRepo{items: map[string]*model.Facultad{}},
		TipoBloque:   &mockTipoBloqueRepo{items: map[string]*model.TipoBloque{}},
		Bloque:       &mockBloqueRepo{items: map[string]*model.Bloque{}},
		TipoAmbiente: &mockTipoAmbienteRepo{items: map[string]*model.TipoAmbiente{}},
		Ambiente:     &mockAmbienteRepo{items: map[string]*model.Ambiente{}},
		Bien:         &mockBienRepo{items: map[string]*model.Bien{}},
		Franja:       &mockFranjaRepo{items: map[string][]model.FranjaHoraria{}},
	}
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

type mockSedeRepo struct {
	items map[string]*model.Sede
}

func (m *mockSedeRepo) Create(_ context.Context, sede *model.Sede) error {
	if sede.SedeID == "" {
		sede.SedeID = uuid.NewString()
	}
	copia := *sede
	m.items[sede.SedeID] = &copia
	return nil
}

func (m *mockSedeRepo) GetByID(_ context.Context, id string) (*model.Sede, error) {
	sede, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *sede
	return &copia, nil
}

func (m *mockSedeRepo) List(_ context.Context, search string, includeInactive bool, offset, limit int) ([]model.Sede, int64, error) {
	var out []model.Sede
	for _, sede := range m.items {
		if !includeInactive && !sede.Activo {
			continue
		}
		if matches(search, sede.Nombre) {
			out = append(out, *sede)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return page(out, offset, limit), int64(len(out)), nil
}

func (m *mockSedeRepo) Update(_ context.Context, sede *model.Sede) error {
	copia := *sede
	m.items[sede.SedeID] = &copia
	return nil
}

func (m *mockSedeRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type mockFacultadRepo struct {
	items map[string]*model.Facultad
}

func (m *mockFacultadRepo) Create(_ context.Context, facultad *model.Facultad) error {
	if facultad.FacultadID == "" {
		facultad.FacultadID = uuid.NewString()
	}
	copia := *facultad
	m.items[facultad.FacultadID] = &copia
	return nil
}

func (m *mockFacultadRepo) GetByID(_ context.Context, id string) (*model.Facultad, error) {
	facultad, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *facultad
	return &copia, nil
}

func (m *mockFacultadRepo) List(_ context.Context, search string, includeInactive bool, offset, limit int) ([]model.Facultad, int64, error) {
	var out []model.Facultad
	for _, facultad := range m.items {
		if !includeInactive && !facultad.Activo {
			continue
		}
		if matches(search, facultad.Nombre, facultad.Sigla) {
			out = append(out, *facultad)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return page(out, offset, limit), int64(len(out)), nil
}

func (m *mockFacultadRepo) Update(_ context.Context, facultad *model.Facultad) error {
	copia := *facultad
	m.items[facultad.FacultadID] = &copia
	return nil
}

func (m *mockFacultadRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type mockTipoBloqueRepo struct {
	items   map[string]*model.TipoBloque
	bloques map[string]int64
}

func (m *mockTipoBloqueRepo) Create(_ context.Context, tipo *model.TipoBloque) error {
	if tipo.TipoBloqueID == "" {
		tipo.TipoBloqueID = uuid.NewString()
	}
	copia := *tipo
	m.items[tipo.TipoBloqueID] = &copia
	return nil
}

func (m *mockTipoBloqueRepo) GetByID(_ context.Context, id string) (*model.TipoBloque, error) {
	tipo, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *tipo
	return &copia, nil
}

func (m *mockTipoBloqueRepo) List(_ context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoBloque, int64, error) {
	var out []model.TipoBloque
	for _, tipo := range m.items {
		if !includeInactive && !tipo.Activo {
			continue
		}
		if matches(search, tipo.Nombre) {
			out = append(out, *tipo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return page(out, offset, limit), int64(len(out)), nil
}

func (m *mockTipoBloqueRepo) Update(_ context.Context, tipo *model.TipoBloque) error {
	copia := *tipo
	m.items[tipo.TipoBloqueID] = &copia
	return nil
}

func (m *mockTipoBloqueRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockTipoBloqueRepo) CountBloques(_ context.Context, id string) (int64, error) {
	return m.bloques[id], nil
}

type mockBloqueRepo struct {
	items     map[string]*model.Bloque
	ambientes map[string]int64
}

func (m *mockBloqueRepo) Create(_ context.Context, bloque *model.Bloque) error {
	if bloque.BloqueID == "" {
		bloque.BloqueID = uuid.NewString()
	}
	copia := *bloque
	m.items[bloque.BloqueID] = &copia
	return nil
}

func (m *mockBloqueRepo) GetByID(_ context.Context, id string) (*model.Bloque, error) {
	bloque, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *bloque
	return &copia, nil
}

func (m *mockBloqueRepo) List(_ context.Context, filter repository.BloqueFilter) ([]model.Bloque, int64, error) {
	var out []model.Bloque
	for _, bloque := range m.items {
		if !filter.IncludeInactive && !bloque.Activo {
			continue
		}
		if filter.SedeID != "" && bloque.SedeID != filter.SedeID {
			continue
		}
		if filter.FacultadID != "" && (bloque.FacultadID == nil || *bloque.FacultadID != filter.FacultadID) {
			continue
		}
		if matches(filter.Search, bloque.Nombre, bloque.Codigo) {
			out = append(out, *bloque)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return page(out, filter.Offset, filter.Limit), int64(len(out)), nil
}

func (m *mockBloqueRepo) Update(_ context.Context, bloque *model.Bloque) error {
	copia := *bloque
	m.items[bloque.BloqueID] = &copia
	return nil
}

func (m *mockBloqueRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockBloqueRepo) CountAmbientes(_ context.Context, id string) (int64, error) {
	return m.ambientes[id], nil
}

type mockTipoAmbienteRepo struct {
	items     map[string]*model.TipoAmbiente
	ambientes map[string]int64
}

func (m *mockTipoAmbienteRepo) Create(_ context.Context, tipo *model.TipoAmbiente) error {
	if tipo.TipoAmbienteID == "" {
		tipo.TipoAmbienteID = uuid.NewString()
	}
	copia := *tipo
	m.items[tipo.TipoAmbienteID] = &copia
	return nil
}

func (m *mockTipoAmbienteRepo) GetByID(_ context.Context, id string) (*model.TipoAmbiente, error) {
	tipo, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *tipo
	return &copia, nil
}

func (m *mockTipoAmbienteRepo) List(_ context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoAmbiente, int64, error) {
	var out []model.TipoAmbiente
	for _, tipo := range m.items {
		if !includeInactive && !tipo.Activo {
			continue
		}
		if matches(search, tipo.Nombre) {
			out = append(out, *tipo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return page(out, offset, limit), int64(len(out)), nil
}

func (m *mockTipoAmbienteRepo) Update(_ context.Context, tipo *model.TipoAmbiente) error {
	copia := *tipo
	m.items[tipo.TipoAmbienteID] = &copia
	return nil
}

func (m *mockTipoAmbienteRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockTipoAmbienteRepo) CountAmbientes(_ context.Context, id string) (int64, error) {
	return m.ambientes[id], nil
}

type mockAmbienteRepo struct {
	items map[string]*model.Ambiente
}

func (m *mockAmbienteRepo) Create(_ context.Context, ambiente *model.Ambiente) error {
	if ambiente.AmbienteID == "" {
		ambiente.AmbienteID = uuid.NewString()
	}
	copia := *ambiente
	m.items[ambiente.AmbienteID] = &copia
	return nil
}

func (m *mockAmbienteRepo) GetByID(_ context.Context, id string) (*model.Ambiente, error) {
	ambiente, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *ambiente
	return &copia, nil
}

func (m *mockAmbienteRepo) List(_ context.Context, filter repository.AmbienteFilter) ([]model.Ambiente, int64, error) {
	var out []model.Ambiente
	for _, ambiente := range m.items {
		if !filter.IncludeInactive && !ambiente.Activo {
			continue
		}
		if filter.BloqueID != "" && ambiente.BloqueID != filter.BloqueID {
			continue
		}
		if filter.TipoAmbienteID != "" && ambiente.TipoAmbienteID != filter.TipoAmbienteID {
			continue
		}
		if matches(filter.Search, ambiente.Nombre, ambiente.Codigo) {
			out = append(out, *ambiente)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return page(out, filter.Offset, filter.Limit), int64(len(out)), nil
}

func (m *mockAmbienteRepo) ListAll(_ context.Context) ([]model.Ambiente, error) {
	var out []model.Ambiente
	for _, ambiente := range m.items {
		out = append(out, *ambiente)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (m *mockAmbienteRepo) Update(_ context.Context, ambiente *model.Ambiente) error {
	copia := *ambiente
	m.items[ambiente.AmbienteID] = &copia
	return nil
}

func (m *mockAmbienteRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type mockBienRepo struct {
	items map[string]*model.Bien
}

func (m *mockBienRepo) Create(_ context.Context, bien *model.Bien) error {
	if bien.BienID == "" {
		bien.BienID = uuid.NewString()
	}
	copia := *bien
	m.items[bien.BienID] = &copia
	return nil
}

func (m *mockBienRepo) GetByNIA(_ context.Context, nia string) (*model.Bien, error) {
	for _, bien := range m.items {
		if bien.NIA == nia {
			copia := *bien
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBienRepo) List(_ context.Context, filter repository.BienFilter) ([]model.Bien, int64, error) {
	var out []model.Bien
	for _, bien := range m.items {
		if filter.SinAsignar && bien.AmbienteID != nil {
			continue
		}
		if matches(filter.Search, bien.NIA, bien.Descripcion) {
			out = append(out, *bien)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NIA < out[j].NIA })
	return page(out, filter.Offset, filter.Limit), int64(len(out)), nil
}

func (m *mockBienRepo) ListByAmbiente(_ context.Context, ambienteID string) ([]model.Bien, error) {
	var out []model.Bien
	for _, bien := range m.items {
		if bien.AmbienteID != nil && *bien.AmbienteID == ambienteID {
			out = append(out, *bien)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NIA < out[j].NIA })
	return out, nil
}

func (m *mockBienRepo) ListAll(_ context.Context) ([]model.Bien, error) {
	var out []model.Bien
	for _, bien := range m.items {
		out = append(out, *bien)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NIA < out[j].NIA })
	return out, nil
}

func (m *mockBienRepo) ReplaceAmbienteAsignacion(_ context.Context, ambienteID string, nias []string) error {
	set := map[string]bool{}
	for _, nia := range nias {
		set[nia] = true
	}
	for _, bien := range m.items {
		switch {
		case set[bien.NIA]:
			id := ambienteID
			bien.AmbienteID = &id
		case bien.AmbienteID != nil && *bien.AmbienteID == ambienteID:
			bien.AmbienteID = nil
		}
	}
	return nil
}

type mockFranjaRepo struct {
	items map[string][]model.FranjaHoraria
}

func (m *mockFranjaRepo) ListByAmbiente(_ context.Context, ambienteID string) ([]model.FranjaHoraria, error) {
	out := append([]model.FranjaHoraria(nil), m.items[ambienteID]...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dia != out[j].Dia {
			return out[i].Dia < out[j].Dia
		}
		return schedule.ToMinutes(out[i].HoraInicio) < schedule.ToMinutes(out[j].HoraInicio)
	})
	return out, nil
}

func (m *mockFranjaRepo) ReplaceForAmbiente(_ context.Context, ambienteID string, franjas []model.FranjaHoraria) error {
	m.items[ambienteID] = append([]model.FranjaHoraria(nil), franjas...)
	return nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

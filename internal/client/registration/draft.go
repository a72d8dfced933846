// Package registration реализует мастер регистрации: черновик, который
// накапливает поля по шагам, и конечный автомат переходов между шагами
// с единственной атомарной отправкой в конце.
package registration

// Draft — накопленное состояние регистрации. Черновик не имеет
// собственной идентичности: он либо пуст, либо частично заполнен, либо
// отправлен целиком и сброшен. Частично он никогда не сохраняется.
type Draft struct {
	Nombre          string
	Apellidos       string
	Email           string
	Password        string
	FechaNacimiento string // YYYY-MM-DD
	AlturaCm        string
	PesoKg          string
	Genero          Gender
}

// Partial — набор полей для слияния в черновик. Непустые указатели
// перезаписывают одноимённые поля, nil-поля не трогают прежние значения.
type Partial struct {
	Nombre          *string
	Apellidos       *string
	Email           *string
	Password        *string
	FechaNacimiento *string
	AlturaCm        *string
	PesoKg          *string
	Genero          *Gender
}

// DraftStore — накопитель черновика. Сам по себе ничего не валидирует:
// допуск полей до слияния — работа мастера.
type DraftStore struct {
	draft Draft
}

// NewDraftStore создаёт пустой черновик.
func NewDraftStore() *DraftStore {
	return &DraftStore{}
}

// Merge вливает переданные поля в черновик. Повторное слияние того же
// значения ничего не меняет.
func (s *DraftStore) Merge(p Partial) {
	if p.Nombre != nil {
		s.draft.Nombre = *p.Nombre
	}
	if p.Apellidos != nil {
		s.draft.Apellidos = *p.Apellidos
	}
	if p.Email != nil {
		s.draft.Email = *p.Email
	}
	if p.Password != nil {
		s.draft.Password = *p.Password
	}
	if p.FechaNacimiento != nil {
		s.draft.FechaNacimiento = *p.FechaNacimiento
	}
	if p.AlturaCm != nil {
		s.draft.AlturaCm = *p.AlturaCm
	}
	if p.PesoKg != nil {
		s.draft.PesoKg = *p.PesoKg
	}
	if p.Genero != nil {
		s.draft.Genero = *p.Genero
	}
}

// Read возвращает текущее накопленное состояние, возможно частичное.
func (s *DraftStore) Read() Draft {
	return s.draft
}

// Reset очищает черновик до исходного пустого состояния.
func (s *DraftStore) Reset() {
	s.draft = Draft{}
}

// complete сообщает, накоплены ли все обязательные поля.
func (d Draft) complete() bool {
	return d.Nombre != "" && d.Apellidos != "" && d.Email != "" && d.Password != "" &&
		d.FechaNacimiento != "" && d.AlturaCm != "" && d.PesoKg != "" && d.Genero != ""
}

// Package session хранит текущую сессию клиента: не более одной
// аутентифицированной учётной записи на процесс. Сессия живёт только в
// памяти и не переживает перезапуск — «запомнить меня» нет сознательно.
package session

// User — аутентифицированный пользователь.
type User struct {
	ID        int
	Nombre    string
	Apellidos string
	Email     string
}

// Store — хранилище текущей сессии. Нулевое значение — «не вошли».
// Хранилище передаётся зависимостям явно, а не лежит в глобальной
// переменной, чтобы его можно было изолированно тестировать.
type Store struct {
	current *User
}

// NewStore создаёт пустое хранилище сессии.
func NewStore() *Store {
	return &Store{}
}

// Set заменяет активную сессию. Предыдущая, если была, вытесняется.
func (s *Store) Set(user User) {
	s.current = &user
}

// Current возвращает активного пользователя и признак его наличия.
func (s *Store) Current() (User, bool) {
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// Clear завершает сессию.
func (s *Store) Clear() {
	s.current = nil
}

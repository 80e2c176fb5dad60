package role

import "fmt"

type Role int

const (
	Client     Role = iota // покупатель услуг
	Specialist             // владелец карточек специалистов
	Admin                  // администратор площадки
)

var names = map[Role]string{
	Client:     "client",
	Specialist: "specialist",
	Admin:      "admin",
}

func (r Role) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// IsValid сообщает, известна ли роль
func (r Role) IsValid() bool {
	_, ok := names[r]
	return ok
}

// Elevated: роль обходит проверку владения
func (r Role) Elevated() bool {
	return r == Admin
}

// Parse преобразует строковое имя роли
func Parse(s string) (Role, error) {
	for r, name := range names {
		if name == s {
			return r, nil
		}
	}
	return Client, fmt.Errorf("unknown role %q", s)
}

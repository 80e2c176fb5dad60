package ds

import "github.com/google/uuid"

// ensureID проставляет UUID перед вставкой, если вызывающий его не задал
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

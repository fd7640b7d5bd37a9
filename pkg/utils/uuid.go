package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera um identificador curto, usado para rastrear cargas nos logs
func GenerateID() string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		return "unknown"
	}
	return id
}

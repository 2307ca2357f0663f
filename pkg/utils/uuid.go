package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 10
)

// GenerateRunID gera um identificador curto para execuções de relatórios agendados
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}

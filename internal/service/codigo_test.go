package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGerarCodigo_Formato(t *testing.T) {
	for i := 0; i < 200; i++ {
		codigo := GerarCodigo()

		assert.Len(t, codigo, 7)
		for pos, ch := range codigo {
			if pos%2 == 0 {
				assert.True(t, strings.ContainsRune(letrasCodigo, ch),
					"posição %d de %q deveria ser letra maiúscula", pos, codigo)
			} else {
				assert.True(t, strings.ContainsRune(digitosCodigo, ch),
					"posição %d de %q deveria ser dígito", pos, codigo)
			}
		}
	}
}

func TestGerarCodigo_Independentes(t *testing.T) {
	// Dois códigos da mesma reserva são sorteados de forma
	// independente: em 100 pares, nenhum deveria repetir
	iguais := 0
	for i := 0; i < 100; i++ {
		if GerarCodigo() == GerarCodigo() {
			iguais++
		}
	}
	assert.Zero(t, iguais)
}

package service

import (
	"crypto/rand"
	"math/big"
)

const (
	letrasCodigo  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitosCodigo = "0123456789"
)

// GerarCodigo produz um código de confirmação de 7 caracteres,
// alternando letra maiúscula e dígito (letra nas posições pares).
// Cada chamada é independente; não há verificação de unicidade
// contra códigos existentes — a colisão é aceita como desprezível.
func GerarCodigo() string {
	var b [7]byte
	for i := range b {
		if i%2 == 0 {
			b[i] = letrasCodigo[sorteio(len(letrasCodigo))]
		} else {
			b[i] = digitosCodigo[sorteio(len(digitosCodigo))]
		}
	}
	return string(b[:])
}

// sorteio devolve um inteiro uniforme em [0, max). Os códigos são
// segredos de uso único, então a fonte é crypto/rand.
func sorteio(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}

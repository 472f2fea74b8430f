package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarJanela(t *testing.T) {
	tests := []struct {
		name    string
		inicio  string
		termino string
		wantErr error
	}{
		{
			name:    "janela válida",
			inicio:  "2025-03-10T10:00:00Z",
			termino: "2025-03-12T10:00:00Z",
			wantErr: nil,
		},
		{
			name:    "duração mínima exata é aceita",
			inicio:  "2025-03-10T10:00:00Z",
			termino: "2025-03-10T10:15:00Z",
			wantErr: nil,
		},
		{
			name:    "início ilegível",
			inicio:  "10/03/2025",
			termino: "2025-03-12T10:00:00Z",
			wantErr: ErrDatasInvalidas,
		},
		{
			name:    "término ilegível",
			inicio:  "2025-03-10T10:00:00Z",
			termino: "amanhã",
			wantErr: ErrDatasInvalidas,
		},
		{
			name:    "início depois do término",
			inicio:  "2025-03-12T10:00:00Z",
			termino: "2025-03-10T10:00:00Z",
			wantErr: ErrInicioAposTermino,
		},
		{
			name:    "início igual ao término",
			inicio:  "2025-03-10T10:00:00Z",
			termino: "2025-03-10T10:00:00Z",
			wantErr: ErrInicioAposTermino,
		},
		{
			name:    "menos de 15 minutos",
			inicio:  "2025-03-10T10:00:00Z",
			termino: "2025-03-10T10:14:59Z",
			wantErr: ErrDuracaoMinima,
		},
		{
			name: "menos de 15 minutos disfarçado por fusos diferentes",
			// 10:00Z e 13:10+03:00 são 10 minutos de diferença real
			inicio:  "2025-03-10T10:00:00Z",
			termino: "2025-03-10T13:10:00+03:00",
			wantErr: ErrDuracaoMinima,
		},
		{
			name: "janela válida expressa em fusos diferentes",
			// 07:00-03:00 == 10:00Z; termina uma hora depois
			inicio:  "2025-03-10T07:00:00-03:00",
			termino: "2025-03-10T11:00:00Z",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inicio, termino, err := ValidarJanela(tt.inicio, tt.termino)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.UTC, inicio.Location())
			assert.Equal(t, time.UTC, termino.Location())
			assert.True(t, inicio.Before(termino))
		})
	}
}

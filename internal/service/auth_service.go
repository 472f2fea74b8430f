package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reserva-service/internal/model"
)

// Serviço que consulta o microsserviço externo de autenticação.
// A emissão de tokens é responsabilidade dele; aqui o bearer é
// consumido de forma opaca e resolvido para um ator {id, papel}.
type AuthService struct {
	authURL string
	client  *http.Client
}

type AuthUser struct {
	ID    string      `json:"id"`
	Nome  string      `json:"nome"`
	Papel model.Papel `json:"papel"`
	Ativo bool        `json:"ativo"`
}

func NewAuthService(authURL string) *AuthService {
	return &AuthService{
		authURL: authURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Valida o token consultando /usuarios/atual do microsserviço de auth
func (a *AuthService) ValidateToken(token string) (*AuthUser, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/usuarios/atual", a.authURL), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid token")
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	if !user.Ativo {
		return nil, errors.New("usuário desativado")
	}

	return &user, nil
}

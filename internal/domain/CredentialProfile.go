package domain

import "fmt"

// CredentialProfile agrupa as contas acessíveis por um mesmo token da plataforma
type CredentialProfile struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	CurrentAccessToken  string `json:"-"`
	PreviousAccessToken string `json:"-"`
}

// ActiveToken retorna o token atual, o anterior como fallback, ou ErrMissingCredential
func (p *CredentialProfile) ActiveToken() (string, error) {
	if p == nil {
		return "", ErrMissingCredential
	}

	if p.CurrentAccessToken != "" {
		return p.CurrentAccessToken, nil
	}

	if p.PreviousAccessToken != "" {
		return p.PreviousAccessToken, nil
	}

	return "", fmt.Errorf("%w: perfil %s", ErrMissingCredential, p.ID)
}

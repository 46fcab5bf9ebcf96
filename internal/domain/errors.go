package domain

import (
	"errors"
	"fmt"
)

// Taxonomia de erros do núcleo de sincronização
var (
	// Falha de rede/plataforma: registrar, pular o item e seguir com o lote
	ErrTransientNetwork = errors.New("transient network error")

	// Campo numérico ilegível: assume zero e segue
	ErrMalformedData = errors.New("malformed data")

	// Dado que quebra uma invariante (ex.: status não inteiro): sobe para quem chamou a operação
	ErrInvariantViolation = errors.New("invariant violation")

	// Perfil sem token utilizável: pular o perfil/conta com warning
	ErrMissingCredential = errors.New("missing credential")
)

// SyncError carrega o contexto de uma falha de sincronização
type SyncError struct {
	Err       error
	Stage     string
	ProfileID string
	AccountID string
}

func (e *SyncError) Error() string {
	switch {
	case e.AccountID != "":
		return fmt.Sprintf("%s [perfil=%s conta=%s]: %v", e.Stage, e.ProfileID, e.AccountID, e.Err)
	case e.ProfileID != "":
		return fmt.Sprintf("%s [perfil=%s]: %v", e.Stage, e.ProfileID, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError cria um SyncError para a etapa e conta informadas
func NewSyncError(err error, stage, profileID, accountID string) *SyncError {
	return &SyncError{
		Err:       err,
		Stage:     stage,
		ProfileID: profileID,
		AccountID: accountID,
	}
}

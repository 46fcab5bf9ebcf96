package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros da plataforma
	ErrFetchAccounts = errors.New("error fetching accounts from Meta")

	// Erros de dados da plataforma
	ErrInvalidStatus    = errors.New("invalid account status")
	ErrMissingAccountID = errors.New("missing account id")

	// Erros de banco de dados
	ErrFindAccount        = errors.New("error finding account")
	ErrUpdateAccount      = errors.New("error updating account")
	ErrRecordStatusChange = errors.New("error recording status change")
	ErrGenerateID         = errors.New("error generating ID")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	msg := e.Err.Error()
	if e.AccountID != "" {
		msg = fmt.Sprintf("%s [conta=%s]", msg, e.AccountID)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com ID da conta
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do operador emitidas pelo serviço de autenticação externo.
// Este serviço apenas valida o token; não emite credenciais.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

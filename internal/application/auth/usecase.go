package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator operador de la consola con su hash bcrypt y rol ("admin" | "operador").
type Operator struct {
	Username     string
	PasswordHash string
	Role         string
}

// AuthUseCase login de los operadores de la consola.
type AuthUseCase struct {
	operators []Operator
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso con los operadores configurados.
func NewAuthUseCase(operators []Operator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operators: operators, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña y genera el JWT de la sesión.
// Usuario desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, domain.NewValidationError("username", "El usuario es requerido")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "La contraseña es requerida")
	}
	op := uc.find(in.Username)
	if op == nil || op.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, op.Username, op.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Username:  op.Username,
		Role:      op.Role,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

func (uc *AuthUseCase) find(username string) *Operator {
	for i := range uc.operators {
		if subtle.ConstantTimeCompare([]byte(uc.operators[i].Username), []byte(username)) == 1 {
			return &uc.operators[i]
		}
	}
	return nil
}

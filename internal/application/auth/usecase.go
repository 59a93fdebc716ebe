package auth

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/config"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// UseCase autentica usuarios definidos por configuración (organización única,
// sin tabla de usuarios) y emite tokens JWT.
type UseCase struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(auth config.AuthConfig, jwt config.JWTConfig) *UseCase {
	return &UseCase{auth: auth, jwt: jwt}
}

// Login verifica credenciales contra el hash bcrypt configurado y emite un JWT.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user := uc.auth.FindUser(in.Username)
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwt.Secret, user.Username, user.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

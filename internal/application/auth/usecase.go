package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
	"github.com/gestion-erp/erp-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase caso de uso de autenticación: login contra la tabla users.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera el JWT. Usuario inexistente y
// password incorrecto producen exactamente el mismo error, para no filtrar
// qué usernames existen. El token retornado ya incluye el prefijo "Bearer ".
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials()
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: "Bearer " + token}, nil
}

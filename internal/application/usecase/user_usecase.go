package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD + listado para usuarios. El password se
// hashea con bcrypt antes de tocar el repositorio; las respuestas nunca
// incluyen el hash.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create valida, hashea el password y persiste un usuario nuevo; devuelve
// el ID generado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (int64, error) {
	if err := validateUser(in); err != nil {
		return 0, err
	}
	user, err := userFromRequest(in)
	if err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, user)
}

// Get obtiene un usuario por ID.
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	return toUserResponse(user), nil
}

// Update sobreescribe todos los campos mutables del usuario identificado,
// rehasheando el password recibido.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UserRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "user"}
	}
	if err := validateUser(in); err != nil {
		return 0, err
	}
	user, err := userFromRequest(in)
	if err != nil {
		return 0, err
	}
	user.ID = *in.ID
	affected, err := uc.repo.Update(ctx, user)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "user", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total.
func (uc *UserUseCase) List(ctx context.Context, page, filter string) (*dto.ListResponse[dto.UserResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter))
	if err != nil {
		return nil, err
	}
	body := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		body = append(body, *toUserResponse(u))
	}
	return &dto.ListResponse[dto.UserResponse]{Total: total, Body: body}, nil
}

func validateUser(in dto.UserRequest) error {
	if l := len(in.Name); l < 2 || l > 50 {
		return &domain.ValidationError{Field: "name", Reason: "debe tener entre 2 y 50 caracteres"}
	}
	if l := len(in.Username); l < 3 || l > 30 {
		return &domain.ValidationError{Field: "username", Reason: "debe tener entre 3 y 30 caracteres"}
	}
	if len(in.Password) < 6 {
		return &domain.ValidationError{Field: "password", Reason: "debe tener al menos 6 caracteres"}
	}
	if in.Rank < entity.RankMin || in.Rank > entity.RankMax {
		return &domain.ValidationError{Field: "rank", Reason: "debe estar entre 0 y 3"}
	}
	return nil
}

func userFromRequest(in dto.UserRequest) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &domain.StoreError{Op: "hash password", Err: err}
	}
	return &entity.User{
		Name:     in.Name,
		Username: in.Username,
		Password: string(hash),
		Rank:     in.Rank,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Rank:     u.Rank,
	}
}

package auth

import (
	"context"
	"strings"
	"time"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/app/services/shared/session"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository UserRepository
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userRepository UserRepository,
	sessionService session.SessionService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    email,
		Password: hashedPassword,
		Role:     request.Role,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		ID:    userID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID := uuid.NewString()
	err = uc.SessionService.CreateSession(ctx, sessionID, &models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

package userapp

import (
	"context"
	"errors"

	"keepit/internal/config"
	userEntity "keepit/internal/core/user"
	userPort "keepit/internal/ports/user"
	"keepit/internal/shared"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
}

func NewUserService(repo userPort.UserRepository) *UserService {
	return &UserService{
		UserRepository: repo,
	}
}

// RegisterUser ثبت‌نام کاربر جدید؛ پسورد فقط همین‌جا hash می‌شود
func (s *UserService) RegisterUser(ctx context.Context, name, email, password string) (*userPort.UserDTO, error) {
	// هش کردن پسورد
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// ایجاد کاربر جدید؛ بررسی تکراری بودن ایمیل داخل تراکنش repository انجام می‌شود
	user := &userEntity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, shared.ErrorEmailTaken) {
			config.Logger.Error("Error creating user", zap.Error(err))
		}
		return nil, err
	}

	config.Logger.Info("✅ User registered", zap.Uint("userID", u.ID), zap.String("email", u.Email))

	return &userPort.UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

// LoginUser ورود کاربر با ایمیل و پسورد
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.UserDTO, error) {
	user, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUnknownEmail
		}
		return nil, err
	}

	// مقایسه پسورد hash شده
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, shared.ErrorIncorrectPassword
	}

	return &userPort.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// GetUserByID بازیابی کاربر برای resolve کردن session
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*userPort.UserDTO, error) {
	user, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &userPort.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// DeleteUser حذف کاربر با همه پست‌ها و کامنت‌های او
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.UserRepository.Delete(ctx, id)
}

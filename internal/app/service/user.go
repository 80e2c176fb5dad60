package service

import (
	"context"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/role"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *ds.User) error
	GetUserByEmail(ctx context.Context, email string) (*ds.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*ds.User, error)
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     role.Role
}

// UserService: регистрация и проверка учётных данных. Токены выпускает HTTP-слой
type UserService struct {
	repo     UserRepository
	tx       TxManager
	cost     int
	validate *validator.Validate
}

// NewUserService: cost задаёт стоимость bcrypt, 0 означает bcrypt.DefaultCost
func NewUserService(repo UserRepository, tx TxManager, cost int) *UserService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, tx: tx, cost: cost, validate: validator.New()}
}

// Register создаёт клиента или специалиста. Администраторы так не создаются
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*ds.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	var fe fieldErrors
	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		fe.add("email", "must be a valid email address")
	}
	if len(in.Password) < 6 {
		fe.add("password", "must be at least 6 characters")
	}
	if in.Role != role.Client && in.Role != role.Specialist {
		fe.add("role", "must be client or specialist")
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &ds.User{
		Email:    in.Email,
		Password: string(hash),
		FullName: in.FullName,
		Role:     int(in.Role),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return apperr.Conflict(apperr.CodeEmailExists, "user with this email already exists")
		case !apperr.Is(err, apperr.KindNotFound):
			return err
		}
		return s.repo.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"id": user.ID, "role": in.Role}).Info("user registered")
	return user, nil
}

// Authenticate проверяет email и пароль. Неизвестный email и неверный пароль неразличимы
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ds.User, error) {
	invalid := apperr.New(apperr.KindUnauthorized, apperr.CodeInvalidCredentials, "invalid credentials")

	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalid
	}

	logrus.WithField("id", user.ID).Info("user logged in")
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, id uuid.UUID) (*ds.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

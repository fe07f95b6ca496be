package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/configs"
	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
	"github.com/MavMaver/food-delivery/utils"
)

type AuthService struct {
	Cfg     *configs.Config
	Users   *repository.UserRepository
	UserSvc *UserService
}

func NewAuthService(cfg *configs.Config, users *repository.UserRepository, userSvc *UserService) *AuthService {
	return &AuthService{Cfg: cfg, Users: users, UserSvc: userSvc}
}

type RegisterIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(in *RegisterIn) (*TokenOut, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     "customer",
		Active:   true,
	}
	if _, err := s.UserSvc.Create(u); err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *AuthService) Login(in *LoginIn) (*TokenOut, error) {
	u, err := s.Users.FindByEmail(s.Users.DB, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("BAD_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}
	if !u.Active {
		return nil, apperr.BadRequest("BAD_CREDENTIALS", "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, apperr.BadRequest("BAD_CREDENTIALS", "Invalid email or password")
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*TokenOut, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &TokenOut{Token: token, User: u}, nil
}

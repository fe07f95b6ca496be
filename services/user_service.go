package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

// UserService manages users and their snapshot-on-write version history:
// a snapshot is stored on create and before every change, so the profile
// can be read back "as of" any time.
type UserService struct {
	DB    *gorm.DB
	Users *repository.UserRepository
}

func NewUserService(db *gorm.DB, users *repository.UserRepository) *UserService {
	return &UserService{DB: db, Users: users}
}

type UpdateUserIn struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

func (s *UserService) Create(u *entity.User) (*entity.User, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := s.Users.ExistsByEmail(tx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperr.BadRequest("EMAIL_TAKEN", "Email is already in use")
		}
		if err := s.Users.Create(tx, u); err != nil {
			return err
		}
		// initial snapshot, so "state as of" works from creation on
		return s.Users.CreateVersion(tx, entity.SnapshotOf(u))
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Users.FindByID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(role string, page, limit int) ([]entity.User, int64, error) {
	return s.Users.List(role, page, limit)
}

func (s *UserService) Update(id uint, in *UpdateUserIn) (*entity.User, error) {
	var out *entity.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.Users.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("USER_NOT_FOUND", "User not found")
			}
			return err
		}

		// snapshot the state before the change
		if err := s.Users.CreateVersion(tx, entity.SnapshotOf(u)); err != nil {
			return err
		}

		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil && *in.Email != u.Email {
			taken, err := s.Users.ExistsByEmail(tx, *in.Email)
			if err != nil {
				return err
			}
			if taken {
				return apperr.BadRequest("EMAIL_TAKEN", "Email is already in use")
			}
			u.Email = *in.Email
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Active != nil {
			u.Active = *in.Active
		}

		if err := s.Users.Save(tx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate soft-deletes by flipping the active flag.
func (s *UserService) Deactivate(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		u, err := s.Users.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("USER_NOT_FOUND", "User not found")
			}
			return err
		}
		if err := s.Users.CreateVersion(tx, entity.SnapshotOf(u)); err != nil {
			return err
		}
		u.Active = false
		return s.Users.Save(tx, u)
	})
}

// SnapshotAt returns the profile state as of t.
func (s *UserService) SnapshotAt(id uint, t time.Time) (*entity.UserVersion, error) {
	v, err := s.Users.LatestVersionAt(id, t)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("SNAPSHOT_NOT_FOUND", "No profile snapshot at or before that time")
		}
		return nil, err
	}
	return v, nil
}

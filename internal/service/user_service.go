package service

import (
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
)

type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List() ([]model.User, error) {
	return s.Users.List()
}

// SetActive toggles the soft-disable flag. Accounts are never hard-deleted;
// a disabled account's tokens stop working at the auth middleware.
func (s *UserService) SetActive(id uint, active bool) (*model.User, error) {
	if _, err := s.Users.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.Users.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.Users.FindByID(id)
}

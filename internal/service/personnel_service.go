package service

import (
	"errors"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PersonnelService struct {
	Personnel *repository.PersonnelRepository
	Users     *repository.UserRepository
}

func NewPersonnelService(personnel *repository.PersonnelRepository, users *repository.UserRepository) *PersonnelService {
	return &PersonnelService{
		Personnel: personnel,
		Users:     users,
	}
}

func (s *PersonnelService) Create(p *model.Personnel) error {
	return s.Personnel.Create(p)
}

func (s *PersonnelService) Get(id uint) (*model.Personnel, error) {
	return s.Personnel.FindByID(id)
}

func (s *PersonnelService) List() ([]model.Personnel, error) {
	return s.Personnel.List()
}

func (s *PersonnelService) Update(p *model.Personnel) error {
	return s.Personnel.Update(p)
}

func (s *PersonnelService) Delete(id uint) error {
	if _, err := s.Personnel.FindByID(id); err != nil {
		return err
	}
	return s.Personnel.Delete(id)
}

// CreateAccount provisions a login for a Personnel record. User insert and
// personnel link happen in one transaction; any failure rolls both back.
func (s *PersonnelService) CreateAccount(personnelID uint, email, password string, role authz.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, util.ErrUnknownRole
	}

	var user *model.User
	err := s.Personnel.DB.Transaction(func(tx *gorm.DB) error {
		var p model.Personnel
		if err := tx.First(&p, personnelID).Error; err != nil {
			return err
		}
		if p.UserID != nil {
			return util.ErrAccountExists
		}

		var existing model.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return util.ErrEmailRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var roleRow model.Role
		if err := tx.Where("name = ?", role).First(&roleRow).Error; err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user = &model.User{
			Email:    email,
			Password: string(hash),
			RoleID:   roleRow.ID,
			Active:   true,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Personnel{}).Where("id = ?", personnelID).Update("user_id", user.ID).Error; err != nil {
			return err
		}

		user.Role = roleRow
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

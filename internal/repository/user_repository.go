package repository

import (
	"time"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Role").First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Role").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindRoleByName(name authz.Role) (*model.Role, error) {
	var role model.Role
	err := r.DB.Where("name = ?", name).First(&role).Error
	return &role, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Preload("Role").Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("active", active).Error
}

func (r *UserRepository) IsActive(id uint) (bool, error) {
	var user model.User
	if err := r.DB.Select("active").First(&user, id).Error; err != nil {
		return false, err
	}
	return user.Active, nil
}

func (r *UserRepository) UpdateLastLogin(id uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}

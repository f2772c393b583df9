package repository

import (
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type PersonnelRepository struct {
	DB *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{DB: db}
}

func (r *PersonnelRepository) Create(p *model.Personnel) error {
	return r.DB.Create(p).Error
}

func (r *PersonnelRepository) FindByID(id uint) (*model.Personnel, error) {
	var p model.Personnel
	err := r.DB.Preload("Crew").Preload("User").Preload("User.Role").First(&p, id).Error
	return &p, err
}

// FindByUserID resolves the Personnel record behind a login, if one exists.
func (r *PersonnelRepository) FindByUserID(userID uint) (*model.Personnel, error) {
	var p model.Personnel
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	return &p, err
}

func (r *PersonnelRepository) List() ([]model.Personnel, error) {
	var list []model.Personnel
	err := r.DB.Preload("Crew").Order("last_name ASC, first_name ASC").Find(&list).Error
	return list, err
}

func (r *PersonnelRepository) Update(p *model.Personnel) error {
	return r.DB.Save(p).Error
}

func (r *PersonnelRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Personnel{}, id).Error
}

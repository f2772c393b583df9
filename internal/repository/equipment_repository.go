package repository

import (
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	DB *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{DB: db}
}

func (r *EquipmentRepository) Create(e *model.Equipment) error {
	return r.DB.Create(e).Error
}

func (r *EquipmentRepository) FindByID(id uint) (*model.Equipment, error) {
	var e model.Equipment
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EquipmentRepository) List() ([]model.Equipment, error) {
	var list []model.Equipment
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *EquipmentRepository) Update(e *model.Equipment) error {
	return r.DB.Save(e).Error
}

func (r *EquipmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Equipment{}, id).Error
}

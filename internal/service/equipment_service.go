package service

import (
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
)

type EquipmentService struct {
	Equipment *repository.EquipmentRepository
}

func NewEquipmentService(equipment *repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{Equipment: equipment}
}

func (s *EquipmentService) Create(e *model.Equipment) error {
	return s.Equipment.Create(e)
}

func (s *EquipmentService) Get(id uint) (*model.Equipment, error) {
	return s.Equipment.FindByID(id)
}

func (s *EquipmentService) List() ([]model.Equipment, error) {
	return s.Equipment.List()
}

func (s *EquipmentService) Update(e *model.Equipment) error {
	return s.Equipment.Update(e)
}

func (s *EquipmentService) Delete(id uint) error {
	if _, err := s.Equipment.FindByID(id); err != nil {
		return err
	}
	return s.Equipment.Delete(id)
}

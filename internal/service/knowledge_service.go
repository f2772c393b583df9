package service

import (
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
)

type KnowledgeService struct {
	Knowledge *repository.KnowledgeRepository
}

func NewKnowledgeService(knowledge *repository.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{Knowledge: knowledge}
}

func (s *KnowledgeService) CreateCategory(cat *model.KnowledgeCategory) error {
	if cat.ParentID != nil {
		if _, err := s.Knowledge.FindCategoryByID(*cat.ParentID); err != nil {
			return err
		}
	}
	return s.Knowledge.CreateCategory(cat)
}

func (s *KnowledgeService) GetCategory(id uint) (*model.KnowledgeCategory, error) {
	return s.Knowledge.FindCategoryByID(id)
}

func (s *KnowledgeService) ListCategories() ([]model.KnowledgeCategory, error) {
	return s.Knowledge.ListCategories()
}

func (s *KnowledgeService) UpdateCategory(cat *model.KnowledgeCategory) error {
	return s.Knowledge.UpdateCategory(cat)
}

func (s *KnowledgeService) DeleteCategory(id uint) error {
	if _, err := s.Knowledge.FindCategoryByID(id); err != nil {
		return err
	}
	return s.Knowledge.DeleteCategory(id)
}

func (s *KnowledgeService) CreateMaterial(m *model.KnowledgeMaterial) error {
	if _, err := s.Knowledge.FindCategoryByID(m.CategoryID); err != nil {
		return err
	}
	return s.Knowledge.CreateMaterial(m)
}

func (s *KnowledgeService) GetMaterial(id uint) (*model.KnowledgeMaterial, error) {
	return s.Knowledge.FindMaterialByID(id)
}

func (s *KnowledgeService) ListMaterials(categoryID uint) ([]model.KnowledgeMaterial, error) {
	return s.Knowledge.ListMaterials(categoryID)
}

func (s *KnowledgeService) UpdateMaterial(m *model.KnowledgeMaterial) error {
	return s.Knowledge.UpdateMaterial(m)
}

func (s *KnowledgeService) DeleteMaterial(id uint) error {
	if _, err := s.Knowledge.FindMaterialByID(id); err != nil {
		return err
	}
	return s.Knowledge.DeleteMaterial(id)
}

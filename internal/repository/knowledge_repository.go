package repository

import (
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type KnowledgeRepository struct {
	DB *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{DB: db}
}

func (r *KnowledgeRepository) CreateCategory(cat *model.KnowledgeCategory) error {
	return r.DB.Create(cat).Error
}

func (r *KnowledgeRepository) FindCategoryByID(id uint) (*model.KnowledgeCategory, error) {
	var cat model.KnowledgeCategory
	err := r.DB.Preload("Children").First(&cat, id).Error
	return &cat, err
}

// ListCategories returns root categories with one level of children.
func (r *KnowledgeRepository) ListCategories() ([]model.KnowledgeCategory, error) {
	var cats []model.KnowledgeCategory
	err := r.DB.Preload("Children").Where("parent_id IS NULL").Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *KnowledgeRepository) UpdateCategory(cat *model.KnowledgeCategory) error {
	return r.DB.Save(cat).Error
}

func (r *KnowledgeRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&model.KnowledgeCategory{}, id).Error
}

func (r *KnowledgeRepository) CreateMaterial(m *model.KnowledgeMaterial) error {
	return r.DB.Create(m).Error
}

func (r *KnowledgeRepository) FindMaterialByID(id uint) (*model.KnowledgeMaterial, error) {
	var m model.KnowledgeMaterial
	err := r.DB.Preload("Category").First(&m, id).Error
	return &m, err
}

func (r *KnowledgeRepository) ListMaterials(categoryID uint) ([]model.KnowledgeMaterial, error) {
	var list []model.KnowledgeMaterial
	q := r.DB.Order("created_at DESC")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *KnowledgeRepository) UpdateMaterial(m *model.KnowledgeMaterial) error {
	return r.DB.Save(m).Error
}

func (r *KnowledgeRepository) DeleteMaterial(id uint) error {
	return r.DB.Delete(&model.KnowledgeMaterial{}, id).Error
}

package repository

import (
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type CrewRepository struct {
	DB *gorm.DB
}

func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{DB: db}
}

func (r *CrewRepository) Create(crew *model.Crew) error {
	return r.DB.Create(crew).Error
}

func (r *CrewRepository) FindByID(id uint) (*model.Crew, error) {
	var crew model.Crew
	err := r.DB.Preload("Members").First(&crew, id).Error
	return &crew, err
}

func (r *CrewRepository) List() ([]model.Crew, error) {
	var crews []model.Crew
	err := r.DB.Preload("Members").Order("name ASC").Find(&crews).Error
	return crews, err
}

func (r *CrewRepository) Update(crew *model.Crew) error {
	return r.DB.Save(crew).Error
}

// Delete removes the crew; member rows keep existing with crew_id cleared.
func (r *CrewRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Personnel{}).Where("crew_id = ?", id).Update("crew_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Crew{}, id).Error
	})
}

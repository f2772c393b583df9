package service

import (
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"

	"gorm.io/gorm"
)

type CrewService struct {
	Crews *repository.CrewRepository
}

func NewCrewService(crews *repository.CrewRepository) *CrewService {
	return &CrewService{Crews: crews}
}

func (s *CrewService) Create(crew *model.Crew) error {
	return s.Crews.Create(crew)
}

func (s *CrewService) Get(id uint) (*model.Crew, error) {
	return s.Crews.FindByID(id)
}

func (s *CrewService) List() ([]model.Crew, error) {
	return s.Crews.List()
}

func (s *CrewService) Update(crew *model.Crew) error {
	return s.Crews.Update(crew)
}

func (s *CrewService) Delete(id uint) error {
	if _, err := s.Crews.FindByID(id); err != nil {
		return err
	}
	return s.Crews.Delete(id)
}

// ReassignMembers replaces the crew's member set in one transaction:
// current members are released, the given personnel are attached. A missing
// personnel id rolls the whole operation back.
func (s *CrewService) ReassignMembers(crewID uint, memberIDs []uint) (*model.Crew, error) {
	err := s.Crews.DB.Transaction(func(tx *gorm.DB) error {
		var crew model.Crew
		if err := tx.First(&crew, crewID).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Personnel{}).Where("crew_id = ?", crewID).Update("crew_id", nil).Error; err != nil {
			return err
		}

		if len(memberIDs) == 0 {
			return nil
		}

		res := tx.Model(&model.Personnel{}).Where("id IN ?", memberIDs).Update("crew_id", crewID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(memberIDs)) {
			return util.ErrPersonnelNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Crews.FindByID(crewID)
}

package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// CreateProject inserts a new project
func (s *ProjectsStore) CreateProject(project *model.Project) error {
	return translateError(s.db.Create(project).Error)
}

// ListProjects returns every project
func (s *ProjectsStore) ListProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchProject retrieves one project
func (s *ProjectsStore) FetchProject(id uint) (*model.Project, error) {
	var project model.Project
	tx := s.db.First(&project, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &project, nil
}

// UpdateProject updates the project's fields
func (s *ProjectsStore) UpdateProject(project *model.Project) error {
	result := s.db.Model(&model.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"name":        project.Name,
		"description": project.Description,
		"picture":     project.Picture,
		"client_id":   project.ClientID,
		"start_date":  project.StartDate,
		"end_date":    project.EndDate,
		"status":      project.Status,
	})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project
func (s *ProjectsStore) DeleteProject(id uint) error {
	result := s.db.Delete(&model.Project{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetProjectPicture attaches an uploaded file name to the project
func (s *ProjectsStore) SetProjectPicture(id uint, filename string) (*model.Project, error) {
	result := s.db.Model(&model.Project{}).Where("id = ?", id).Update("picture", filename)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchProject(id)
}

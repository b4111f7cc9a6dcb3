package store

import "github.com/atelier-web/atelier/pkg/model"

// ProjectsStore abstracts project storage.
type ProjectsStore interface {
	CreateProject(project *model.Project) error
	ListProjects() ([]model.Project, error)
	FetchProject(id uint) (*model.Project, error)
	UpdateProject(project *model.Project) error
	DeleteProject(id uint) error

	// SetProjectPicture attaches an uploaded file name to the project and
	// returns the updated record.
	SetProjectPicture(id uint, filename string) (*model.Project, error)
}

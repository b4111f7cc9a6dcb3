package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/atelier-web/atelier/pkg/model"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) FindUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindUserByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) UpdateUserProfile(id uint, firstName, lastName, email string) (*model.User, error) {
	args := m.Called(id, firstName, lastName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTagsStore implements store.TagsStore for testing using testify/mock
type MockTagsStore struct {
	mock.Mock
}

func (m *MockTagsStore) ReconcileTags(labels []string) ([]model.Tag, error) {
	args := m.Called(labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagsStore) ListTags() ([]model.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagsStore) ListTagsByArticle(articleID uint) ([]model.Tag, error) {
	args := m.Called(articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagsStore) CreateTag(name string) (*model.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagsStore) DeleteTag(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockArticlesStore implements store.ArticlesStore for testing using testify/mock
type MockArticlesStore struct {
	mock.Mock
}

func (m *MockArticlesStore) CreateArticle(article *model.Article, labels []string) error {
	args := m.Called(article, labels)
	return args.Error(0)
}

func (m *MockArticlesStore) ListArticles() ([]model.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticlesStore) FetchArticle(id uint) (*model.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticlesStore) UpdateArticle(article *model.Article, labels []string) error {
	args := m.Called(article, labels)
	return args.Error(0)
}

func (m *MockArticlesStore) DeleteArticle(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticlesStore) ArticleAuthor(id uint) (uint, error) {
	args := m.Called(id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockArticlesStore) SetArticlePicture(id uint, filename string) (*model.Article, error) {
	args := m.Called(id, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func (m *MockProjectsStore) CreateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) ListProjects() ([]model.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) FetchProject(id uint) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) UpdateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) DeleteProject(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProjectsStore) SetProjectPicture(id uint, filename string) (*model.Project, error) {
	args := m.Called(id, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

// MockClientsStore implements store.ClientsStore for testing using testify/mock
type MockClientsStore struct {
	mock.Mock
}

func (m *MockClientsStore) CreateClient(client *model.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientsStore) ListClients() ([]model.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientsStore) FetchClient(id uint) (*model.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientsStore) FetchClientByUser(userID uint) (*model.Client, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientsStore) UpdateClient(client *model.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientsStore) DeleteClient(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockContactsStore implements store.ContactsStore for testing using testify/mock
type MockContactsStore struct {
	mock.Mock
}

func (m *MockContactsStore) CreateContact(contact *model.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactsStore) ListContacts() ([]model.Contact, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactsStore) FetchContact(id uint) (*model.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactsStore) UpdateContact(contact *model.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactsStore) DeleteContact(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

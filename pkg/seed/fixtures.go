package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
	"gopkg.in/yaml.v3"
)

// Fixtures is the content of a seed file. Projects and tasks refer to
// users and projects by their Key, which exists only in the file.
//
//	users:
//	  - key: ada
//	    email: ada@example.com
//	    password: s3cret!
//	    role: ProjectManager
//	projects:
//	  - key: launch
//	    name: Launch
//	    manager: ada
//	tasks:
//	  - project: launch
//	    assignee: ada
//	    title: Write the announcement
type Fixtures struct {
	Users    []UserFixture    `yaml:"users"`
	Projects []ProjectFixture `yaml:"projects"`
	Tasks    []TaskFixture    `yaml:"tasks"`
}

type UserFixture struct {
	Key       string         `yaml:"key"`
	FirstName string         `yaml:"firstName"`
	LastName  string         `yaml:"lastName"`
	Email     string         `yaml:"email"`
	Password  string         `yaml:"password"`
	Role      taskboard.Role `yaml:"role"`
}

type ProjectFixture struct {
	Key         string                  `yaml:"key"`
	Name        string                  `yaml:"name"`
	Description *string                 `yaml:"description"`
	Status      taskboard.ProjectStatus `yaml:"status"`
	Manager     string                  `yaml:"manager"`
	StartDate   *time.Time              `yaml:"startDate"`
	EndDate     *time.Time              `yaml:"endDate"`
}

type TaskFixture struct {
	Project     string               `yaml:"project"`
	Assignee    string               `yaml:"assignee"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Status      taskboard.TaskStatus `yaml:"status"`
	DueDate     *time.Time           `yaml:"dueDate"`
}

var ErrEmptyFixtures = errors.New("seed: fixtures contain no users")

// Load decodes fixtures and checks every reference between them.
// Unknown keys in the document are rejected.
func Load(r io.Reader) (*Fixtures, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var f Fixtures
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFixtures
		}
		return nil, fmt.Errorf("seed: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func LoadFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

func (f *Fixtures) Validate() error {
	if len(f.Users) == 0 {
		return ErrEmptyFixtures
	}

	users := make(map[string]bool, len(f.Users))
	for i, u := range f.Users {
		if u.Key == "" {
			return fmt.Errorf("seed: users[%d]: missing key", i)
		}
		if users[u.Key] {
			return fmt.Errorf("seed: users[%d]: duplicate key %q", i, u.Key)
		}
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("seed: user %q: email and password are required", u.Key)
		}
		if u.Role != "" && !u.Role.Valid() {
			return fmt.Errorf("seed: user %q: unknown role %q", u.Key, u.Role)
		}
		users[u.Key] = true
	}

	projects := make(map[string]bool, len(f.Projects))
	for i, p := range f.Projects {
		if p.Key == "" {
			return fmt.Errorf("seed: projects[%d]: missing key", i)
		}
		if projects[p.Key] {
			return fmt.Errorf("seed: projects[%d]: duplicate key %q", i, p.Key)
		}
		if p.Name == "" {
			return fmt.Errorf("seed: project %q: name is required", p.Key)
		}
		if p.Status != "" && !p.Status.Valid() {
			return fmt.Errorf("seed: project %q: unknown status %q", p.Key, p.Status)
		}
		if p.Manager != "" && !users[p.Manager] {
			return fmt.Errorf("seed: project %q: unknown manager %q", p.Key, p.Manager)
		}
		projects[p.Key] = true
	}

	for i, t := range f.Tasks {
		if t.Title == "" {
			return fmt.Errorf("seed: tasks[%d]: title is required", i)
		}
		if !projects[t.Project] {
			return fmt.Errorf("seed: tasks[%d]: unknown project %q", i, t.Project)
		}
		if !users[t.Assignee] {
			return fmt.Errorf("seed: tasks[%d]: unknown assignee %q", i, t.Assignee)
		}
		if t.Status != "" && !t.Status.Valid() {
			return fmt.Errorf("seed: tasks[%d]: unknown status %q", i, t.Status)
		}
	}

	return nil
}

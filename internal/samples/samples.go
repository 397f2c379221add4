package samples

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var embedded []byte

// ErrNotFound is returned for unknown sample ids.
var ErrNotFound = errors.New("sample not found")

// Job is a sample job description.
type Job struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Resume is a sample resume.
type Resume struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text,omitempty"`
}

// Catalog is an immutable, ordered set of sample jobs and resumes.
type Catalog struct {
	jobs    []Job
	resumes []Resume
}

type catalogFile struct {
	Jobs    []Job    `yaml:"jobs"`
	Resumes []Resume `yaml:"resumes"`
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a YAML catalog. Ids must be present and unique per kind.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}

	seen := map[string]bool{}
	for _, j := range f.Jobs {
		if err := checkID("job", j.ID, seen); err != nil {
			return nil, err
		}
	}
	seen = map[string]bool{}
	for _, r := range f.Resumes {
		if err := checkID("resume", r.ID, seen); err != nil {
			return nil, err
		}
	}
	return &Catalog{jobs: f.Jobs, resumes: f.Resumes}, nil
}

func checkID(kind, id string, seen map[string]bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("parse samples: %s without id", kind)
	}
	if seen[id] {
		return fmt.Errorf("parse samples: duplicate %s id %q", kind, id)
	}
	seen[id] = true
	return nil
}

// Jobs lists sample jobs without their descriptions.
func (c *Catalog) Jobs() []Job {
	out := make([]Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		out = append(out, Job{ID: j.ID, Title: j.Title})
	}
	return out
}

// Resumes lists sample resumes without their text.
func (c *Catalog) Resumes() []Resume {
	out := make([]Resume, 0, len(c.resumes))
	for _, r := range c.resumes {
		out = append(out, Resume{ID: r.ID, Title: r.Title})
	}
	return out
}

// Job returns the sample job with the given id.
func (c *Catalog) Job(id string) (Job, error) {
	for _, j := range c.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, fmt.Errorf("job %q: %w", id, ErrNotFound)
}

// Resume returns the sample resume with the given id.
func (c *Catalog) Resume(id string) (Resume, error) {
	for _, r := range c.resumes {
		if r.ID == id {
			return r, nil
		}
	}
	return Resume{}, fmt.Errorf("resume %q: %w", id, ErrNotFound)
}

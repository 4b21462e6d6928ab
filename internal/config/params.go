package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Project is one entry of the project-parameters document (params.json),
// an array of project descriptors maintained by the scaffolding pipeline.
type Project struct {
	Name     string   `json:"project_name"`
	Database Database `json:"database"`
}

// Database carries a project's database settings; Sgbd selects the SQL
// dialect the DDL is generated for.
type Database struct {
	Sgbd string `json:"sgbd"`
}

// LoadParams reads and parses the project-parameters document. A missing
// or malformed file is fatal to the run; nothing has been generated yet.
func LoadParams(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", path, err)
	}
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	return projects, nil
}

// DialectFrom returns the first project's database.sgbd value, defaulting
// to postgresql when the list is empty or the value is absent.
func DialectFrom(projects []Project) string {
	if len(projects) == 0 || projects[0].Database.Sgbd == "" {
		return "postgresql"
	}
	return projects[0].Database.Sgbd
}

package testutils

import (
	"encoding/json"
	"log"
	"os"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// LoadDataFromFile imports a file for processing in tests.
func LoadDataFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return string(data)
}

// LoadUsersFromFile loads GitLab user records from a JSON fixture.
func LoadUsersFromFile(filepath string) ([]*gitlab.User, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	users := []*gitlab.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}

	return users, nil
}

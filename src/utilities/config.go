package utilities

import (
	"encoding/json"
	"os"
)

// JsonConfigObj is the raw JSON shape of a config file; ConvertToDomain
// applies defaults and turns it into the runtime representation.
type JsonConfigObj[T any] interface {
	ConvertToDomain() T
}

func ReadConfig[T JsonConfigObj[U], U any](file string) (U, error) {
	var empty U

	fileContent, err := os.ReadFile(file)
	if err != nil {
		return empty, err
	}

	var config T
	err = json.Unmarshal(fileContent, &config)
	if err != nil {
		return empty, err
	}

	return config.ConvertToDomain(), nil
}

package flake

import (
	"os"
)

// ReadLockFile reads the whole lock file into memory
func ReadLockFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}

// Load reads, decodes and parses the lock file at path
func Load(path string, schema Schema) (*InputSet, error) {
	data, err := ReadLockFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	return Parse(doc, schema)
}

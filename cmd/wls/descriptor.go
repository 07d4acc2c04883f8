package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/wls/ejbjar"
)

// decodeFile reads the descriptor at path. Validation runs when validator
// is not nil.
func decodeFile(path string, validator *ejbjar.Validator) (*ejbjar.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()

	opts := []ejbjar.DecodeOption{ejbjar.WithNamespace(settings.Namespace)}
	if validator != nil {
		opts = append(opts, ejbjar.WithValidation(validator))
	}
	doc, err := ejbjar.NewDecoder(f, opts...).DecodeDocument()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

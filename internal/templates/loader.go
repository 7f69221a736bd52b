package templates

import (
	"os"

	"github.com/opmodel/newcomp/internal/output"
)

// Load reads and validates the template behind d. Read failures and
// denylist matches are returned as *LoadError; advisories are logged as
// warnings and kept on the result.
func Load(d Descriptor) (*Loaded, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, &LoadError{Source: d.Path, Cause: err}
	}

	raw := string(data)
	advisories, err := Validate(raw, d.Path)
	if err != nil {
		return nil, &LoadError{Source: d.Path, Cause: err}
	}

	for _, a := range advisories {
		output.Warn(a.Message, "source", a.Source)
	}

	loaded := &Loaded{
		Descriptor: d,
		Raw:        raw,
		Variables:  ExtractVariables(raw),
		Advisories: advisories,
	}

	output.Debug("loaded template",
		"name", d.Name,
		"path", d.Path,
		"variables", loaded.Variables,
	)

	return loaded, nil
}

// LoadFile is Load for a path that was not discovered.
func LoadFile(path string) (*Loaded, error) {
	return Load(descriptorFor(path))
}

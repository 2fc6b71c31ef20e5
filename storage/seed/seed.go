// Package seed loads the portal's seed data from YAML.
package seed

import (
	"bytes"
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/happyclass/core/gallery"
	"github.com/trezcool/happyclass/core/portal"
	"github.com/trezcool/happyclass/core/resource"
	appfs "github.com/trezcool/happyclass/fs"
)

// DefaultPath is the embedded seed file.
const DefaultPath = "seed/portal.yaml"

// Load decodes the seed file at path in fsys. Unknown keys are an error.
func Load(fsys fs.FS, path string) (portal.Seed, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return portal.Seed{}, errors.Wrapf(err, "reading seed %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (portal.Seed, error) {
	var s portal.Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return portal.Seed{}, errors.Wrap(err, "decoding seed")
	}
	if err := validate(s); err != nil {
		return portal.Seed{}, err
	}
	return s, nil
}

// Default returns the embedded seed.
func Default() (portal.Seed, error) {
	return Load(appfs.FS, DefaultPath)
}

func validate(s portal.Seed) error {
	seen := make(map[string]bool)
	for _, p := range s.Gallery.Photos {
		if seen[p.ID] {
			return errors.Errorf("seed: duplicate gallery photo %q", p.ID)
		}
		seen[p.ID] = true
	}
	seen = make(map[string]bool)
	for _, f := range s.Resources.Files {
		if seen[f.ID] {
			return errors.Errorf("seed: duplicate resource file %q", f.ID)
		}
		seen[f.ID] = true
	}
	if !contains(s.Gallery.Categories, gallery.AllCategory) {
		return errors.Errorf("seed: gallery categories must include %s", gallery.AllCategory)
	}
	if !contains(s.Resources.Subjects, resource.AllSubject) {
		return errors.Errorf("seed: resource subjects must include %s", resource.AllSubject)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

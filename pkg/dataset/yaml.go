package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle is the YAML form of a complete dataset.
//
//	locales:
//	  usa: United States
//	cities:
//	  usa: [New York, Los Angeles, Chicago]
//	states:
//	  usa: [California, Texas, Florida]
//	team_names: [Otters, Comets]
//	first_names: [Avery, Blake]
//	last_names: [Abbott, Barnes]
//	leagues_divisions:
//	  - [alpha, bravo, charlie, delta]
type Bundle struct {
	Locales          map[string]string   `yaml:"locales"`
	Cities           map[string][]string `yaml:"cities"`
	States           map[string][]string `yaml:"states"`
	TeamNames        []string            `yaml:"team_names"`
	FirstNames       []string            `yaml:"first_names"`
	LastNames        []string            `yaml:"last_names"`
	LeaguesDivisions [][]string          `yaml:"leagues_divisions"`
}

// NewYAMLSource decodes a YAML bundle into an in-memory source laid out like
// the on-disk dataset.
func NewYAMLSource(r io.Reader) (*MemorySource, error) {
	var b Bundle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, errors.Join(ErrInvalidBundle, err)
	}
	files, err := b.files()
	if err != nil {
		return nil, err
	}
	return NewMemorySource(files), nil
}

// OpenYAMLFile reads a YAML bundle from disk.
func OpenYAMLFile(name string) (*MemorySource, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetNotFound, err)
	}
	defer f.Close()
	return NewYAMLSource(f)
}

func (b Bundle) files() (map[string]string, error) {
	files := make(map[string]string)
	for code, items := range b.Cities {
		files[Cities.Path(NormalizeLocale(code))] = joinLines(items)
	}
	for code, items := range b.States {
		files[States.Path(NormalizeLocale(code))] = joinLines(items)
	}
	if len(b.Locales) > 0 {
		codes := make([]string, 0, len(b.Locales))
		for code := range b.Locales {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		var sb strings.Builder
		for _, code := range codes {
			fmt.Fprintf(&sb, "%s %s\n", NormalizeLocale(code), b.Locales[code])
		}
		files[LocaleKeyFile] = sb.String()
	}
	if len(b.TeamNames) > 0 {
		files[TeamNames.Path("")] = joinLines(b.TeamNames)
	}
	if len(b.FirstNames) > 0 {
		files[FirstNames.Path("")] = joinLines(b.FirstNames)
	}
	if len(b.LastNames) > 0 {
		files[LastNames.Path("")] = joinLines(b.LastNames)
	}
	if len(b.LeaguesDivisions) > 0 {
		rows := make([]string, 0, len(b.LeaguesDivisions))
		for i, row := range b.LeaguesDivisions {
			for _, label := range row {
				if strings.Contains(label, ",") {
					return nil, fmt.Errorf("%w: label %q in row %d contains a comma", ErrInvalidBundle, label, i)
				}
			}
			rows = append(rows, strings.Join(row, ","))
		}
		files[LeaguesDivisions.Path("")] = joinLines(rows)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: bundle has no datasets", ErrInvalidBundle)
	}
	return files, nil
}

func joinLines(items []string) string {
	return strings.Join(items, "\n") + "\n"
}

package taxonomy

import (
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

// TaxonomyLoadError reports a missing or malformed taxonomy file.
type TaxonomyLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *TaxonomyLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("taxonomy %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("taxonomy %s: %s", e.Path, e.Reason)
}

func (e *TaxonomyLoadError) Unwrap() error { return e.Err }

// Taxonomy maps role -> canonical skill -> ordered aliases. It is
// loaded once at startup and must never be mutated afterwards, so it
// is safe to share across concurrent requests.
type Taxonomy struct {
	roles map[string]map[string][]string
}

// New builds a Taxonomy from an in-memory mapping. The caller must not
// mutate roles afterwards.
func New(roles map[string]map[string][]string) Taxonomy {
	return Taxonomy{roles: roles}
}

// Load parses a taxonomy JSON file of shape
// {"role": {"skill": ["alias", ...], ...}, ...}.
func Load(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, &TaxonomyLoadError{Path: path, Reason: "read failed", Err: err}
	}
	if !gjson.ValidBytes(data) {
		return Taxonomy{}, &TaxonomyLoadError{Path: path, Reason: "invalid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Taxonomy{}, &TaxonomyLoadError{Path: path, Reason: "top level must be an object of roles"}
	}

	roles := make(map[string]map[string][]string)
	var loadErr error
	root.ForEach(func(role, skills gjson.Result) bool {
		if !skills.IsObject() {
			loadErr = &TaxonomyLoadError{Path: path, Reason: fmt.Sprintf("role %q must be an object of skills", role.String())}
			return false
		}
		entry := make(map[string][]string)
		skills.ForEach(func(skill, aliases gjson.Result) bool {
			if !aliases.IsArray() {
				loadErr = &TaxonomyLoadError{Path: path, Reason: fmt.Sprintf("skill %q in role %q must be an array of aliases", skill.String(), role.String())}
				return false
			}
			var list []string
			for _, a := range aliases.Array() {
				if a.Type != gjson.String || a.String() == "" {
					loadErr = &TaxonomyLoadError{Path: path, Reason: fmt.Sprintf("skill %q in role %q has a non-string alias", skill.String(), role.String())}
					return false
				}
				list = append(list, a.String())
			}
			if len(list) == 0 {
				loadErr = &TaxonomyLoadError{Path: path, Reason: fmt.Sprintf("skill %q in role %q has zero aliases", skill.String(), role.String())}
				return false
			}
			entry[skill.String()] = list
			return true
		})
		if loadErr != nil {
			return false
		}
		roles[role.String()] = entry
		return true
	})
	if loadErr != nil {
		return Taxonomy{}, loadErr
	}
	if len(roles) == 0 {
		return Taxonomy{}, &TaxonomyLoadError{Path: path, Reason: "no roles defined"}
	}

	return Taxonomy{roles: roles}, nil
}

// Roles returns all role names, sorted.
func (t Taxonomy) Roles() []string {
	names := make([]string, 0, len(t.roles))
	for r := range t.roles {
		names = append(names, r)
	}
	sort.Strings(names)
	return names
}

func (t Taxonomy) HasRole(role string) bool {
	_, ok := t.roles[role]
	return ok
}

// Skills returns the skill -> aliases mapping for a role. Callers must
// treat the returned map as read-only.
func (t Taxonomy) Skills(role string) map[string][]string {
	return t.roles[role]
}

// SkillNames returns the canonical skill names of a role, sorted.
func (t Taxonomy) SkillNames(role string) []string {
	entry := t.roles[role]
	names := make([]string, 0, len(entry))
	for s := range entry {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// Vocabulary returns the union of all skills from roles other than
// exclude, skipping skill names that already belong to exclude. When
// the same skill appears in several roles the first alias list wins;
// alias lists are identical across roles in practice.
func (t Taxonomy) Vocabulary(exclude string) map[string][]string {
	own := t.roles[exclude]
	vocab := make(map[string][]string)
	for role, skills := range t.roles {
		if role == exclude {
			continue
		}
		for skill, aliases := range skills {
			if _, owned := own[skill]; owned {
				continue
			}
			if _, seen := vocab[skill]; seen {
				continue
			}
			vocab[skill] = aliases
		}
	}
	return vocab
}

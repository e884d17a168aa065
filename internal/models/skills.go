package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// SkillList is the canonical representation of a skills field: an ordered
// sequence of non-empty, trimmed tokens. Legacy rows stored skills either
// as a comma-separated string or as a list depending on which screen wrote
// them, so the codec accepts both shapes and always normalizes here
// instead of branching per view.
type SkillList []string

// NormalizeSkills splits a comma-separated string into a SkillList,
// trimming whitespace and dropping empty tokens.
func NormalizeSkills(raw string) SkillList {
	if strings.TrimSpace(raw) == "" {
		return SkillList{}
	}
	parts := strings.Split(raw, ",")
	out := make(SkillList, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// String joins the list back into the stored comma-separated form.
func (s SkillList) String() string {
	return strings.Join(s, ",")
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		out := make(SkillList, 0, len(list))
		for _, item := range list {
			if t := strings.TrimSpace(item); t != "" {
				out = append(out, t)
			}
		}
		*s = out
		return nil
	}

	var scalar string
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("skills must be a string or a list of strings")
	}
	*s = NormalizeSkills(scalar)
	return nil
}

// MarshalJSON always emits the canonical array form.
func (s SkillList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Value stores the list as a comma-separated text column.
func (s SkillList) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan reads the text column back into the canonical form.
func (s *SkillList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = SkillList{}
	case string:
		*s = NormalizeSkills(v)
	case []byte:
		*s = NormalizeSkills(string(v))
	default:
		return fmt.Errorf("unsupported skills column type %T", value)
	}
	return nil
}

package domain

import (
	"encoding/json"
	"fmt"
)

// Section is the portal page currently shown to a visitor. Exactly one is
// active per session.
type Section string

const (
	SectionHome        Section = "home"
	SectionTheory      Section = "theory"
	SectionMethodology Section = "methodology"
	SectionLegal       Section = "legal"
	SectionCases       Section = "cases"
	SectionTest        Section = "test"
)

var sectionTitles = map[Section]string{
	SectionHome:        "Главная",
	SectionTheory:      "Теория",
	SectionMethodology: "Методология",
	SectionLegal:       "Нормативная база",
	SectionCases:       "Кейсы",
	SectionTest:        "Тестирование",
}

// AllSections lists the sections in navigation order.
func AllSections() []Section {
	return []Section{SectionHome, SectionTheory, SectionMethodology, SectionLegal, SectionCases, SectionTest}
}

// ParseSection validates a raw section name.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if _, ok := sectionTitles[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return s, nil
}

// Title is the navigation label.
func (s Section) Title() string {
	return sectionTitles[s]
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSection(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package las

import (
	"fmt"
	"strings"

	"github.com/sergiomr04/petrolog/model"
)

// classifierState tracks which header section the classifier is inside.
// Exactly one state is active at a time; the original format's five
// independent booleans collapse into this enum so contradictory flag
// combinations cannot exist.
type classifierState int

const (
	stateNone classifierState = iota
	stateVersion
	stateWell
	stateParameter
	stateCurve
	stateData
)

// sections is the result of classifying a file's header.
type sections struct {
	version   *model.Section
	well      *model.Section
	parameter *model.Section
	curve     *model.Section

	// dataLines holds every line after the ASCII data tag, verbatim.
	dataLines []string
}

// Classify walks the file's lines in a single forward pass, routing header
// lines to ParseParameter and accumulating them per section. Reaching the
// ASCII data tag (~A) ends classification; the remaining lines are returned
// untouched as the raw data block.
//
// Tag matching is substring-based on the upper-cased line, so ~A matches
// any tag starting with those two characters (e.g. ~APIINFO). This mirrors
// how LAS files are handled in the wild and is pinned by tests rather than
// special-cased.
func Classify(lines []string) (version, well, parameter, curve *model.Section, dataLines []string, err error) {
	s, err := classify(lines)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return s.version, s.well, s.parameter, s.curve, s.dataLines, nil
}

func classify(lines []string) (*sections, error) {
	s := &sections{
		version:   model.NewSection(model.SectionVersion),
		well:      model.NewSection(model.SectionWell),
		parameter: model.NewSection(model.SectionParameter),
		curve:     model.NewSection(model.SectionCurve),
	}

	state := stateNone
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.Contains(upper, "~VERSION"):
			state = stateVersion
			continue
		case strings.Contains(upper, "~WELL"):
			state = stateWell
			continue
		case strings.Contains(upper, "~PARAMETER"):
			state = stateParameter
			continue
		case strings.Contains(upper, "~CURVE"):
			state = stateCurve
			continue
		case strings.Contains(upper, "~A"):
			// Data tag: everything after this line is the data block,
			// including a data row on the very next line.
			s.dataLines = lines[i+1:]
			return s, nil
		}

		target := s.sectionFor(state)
		if target == nil {
			// Line before any section tag; nothing to attach it to.
			continue
		}
		p, err := ParseParameter(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		target.Add(p)
	}

	return s, nil
}

func (s *sections) sectionFor(state classifierState) *model.Section {
	switch state {
	case stateVersion:
		return s.version
	case stateWell:
		return s.well
	case stateParameter:
		return s.parameter
	case stateCurve:
		return s.curve
	default:
		return nil
	}
}

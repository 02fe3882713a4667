package model

// Parameter represents one header declaration from a LAS section line,
// for example:
//
//	NULL.      -999.25 : NULL VALUE
//
// Name is the mnemonic as written (case-sensitive). Unit, Value, AltValue
// and Description may be empty but are never "missing": vendors place the
// semantically meaningful value in different positions, so every candidate
// position is captured and resolution logic picks between them later.
type Parameter struct {
	Name        string
	Unit        string
	Value       string // value tokens between the unit and the description delimiter
	AltValue    string // first token after the description delimiter
	Description string // full text after the description delimiter
}

// SectionKind identifies one of the four LAS header sections.
type SectionKind int

const (
	SectionVersion SectionKind = iota
	SectionWell
	SectionParameter
	SectionCurve
)

// String returns the string representation of the section kind.
func (k SectionKind) String() string {
	switch k {
	case SectionVersion:
		return "Version"
	case SectionWell:
		return "Well"
	case SectionParameter:
		return "Parameter"
	case SectionCurve:
		return "Curve"
	default:
		return "Unknown"
	}
}

// Section is an ordered collection of parameters from one header section.
// Mnemonic order is preserved as written in the file; on a duplicate
// mnemonic the last occurrence wins in the lookup while the first keeps
// its position in the order.
type Section struct {
	kind   SectionKind
	names  []string
	byName map[string]Parameter
}

// NewSection creates an empty section of the given kind.
func NewSection(kind SectionKind) *Section {
	return &Section{
		kind:   kind,
		byName: make(map[string]Parameter),
	}
}

// Kind returns the section kind.
func (s *Section) Kind() SectionKind { return s.kind }

// Add appends a parameter to the section. A mnemonic seen before keeps its
// original position but takes the new parameter's fields.
func (s *Section) Add(p Parameter) {
	if _, seen := s.byName[p.Name]; !seen {
		s.names = append(s.names, p.Name)
	}
	s.byName[p.Name] = p
}

// Get returns the parameter for the given mnemonic.
func (s *Section) Get(name string) (Parameter, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Has reports whether the section contains the given mnemonic.
func (s *Section) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Names returns the mnemonics in file order.
func (s *Section) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of distinct mnemonics in the section.
func (s *Section) Len() int {
	return len(s.names)
}

package model

// Document represents one fully parsed LAS file: the four header sections,
// the numeric curve table, and the resolved well metadata.
type Document struct {
	Version   *Section
	Well      *Section
	Params    *Section
	CurveInfo *Section

	// Curves holds the log data; columns are named and ordered by the
	// CurveInfo section's mnemonic sequence.
	Curves *CurveTable

	// UWI is the unique well identifier with hyphens stripped, or empty
	// when the well section declares none.
	UWI string

	// Null is the sentinel value marking missing samples in Curves.
	Null float64
}

// NewDocument creates a document with empty header sections.
func NewDocument() *Document {
	return &Document{
		Version:   NewSection(SectionVersion),
		Well:      NewSection(SectionWell),
		Params:    NewSection(SectionParameter),
		CurveInfo: NewSection(SectionCurve),
	}
}

// Curve returns a copy of the named curve's values, or nil if the mnemonic
// is not in the curve table.
func (d *Document) Curve(mnemonic string) []float64 {
	if d.Curves == nil {
		return nil
	}
	return d.Curves.Column(mnemonic)
}

// Depths returns the index curve (the first column), or nil if the table
// is empty.
func (d *Document) Depths() []float64 {
	if d.Curves == nil || len(d.Curves.Columns) == 0 {
		return nil
	}
	return d.Curves.Column(d.Curves.Columns[0])
}

// CurvesWithNaN returns a copy of the curve table with the document's null
// sentinel replaced by NaN.
func (d *Document) CurvesWithNaN() *CurveTable {
	if d.Curves == nil {
		return nil
	}
	return d.Curves.ReplaceNull(d.Null)
}

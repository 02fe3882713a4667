package petrolog

// ParseOptions holds configuration for a parse.
type ParseOptions struct {
	wrap     WrapMode
	encoding Encoding
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() ParseOptions {
	return ParseOptions{
		wrap:     WrapAuto,
		encoding: EncodingAuto,
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		wrap:     o.wrap,
		encoding: o.encoding,
	}
}

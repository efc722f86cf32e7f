package barcode

// ResultPointCallback is invoked at each guard-pattern midpoint a decoder
// discovers, e.g. for caller-side visualisation.
type ResultPointCallback func(point ResultPoint)

// DecodeHints configures decode-side behavior. A nil *DecodeHints is
// equivalent to the zero value: no format restriction, no TryHarder.
type DecodeHints struct {
	// TryHarder expands row-scan coverage to the full image height and
	// enables the 90-degree rotation fallback.
	TryHarder bool

	// PossibleFormats restricts which per-symbology decoders run. A nil or
	// empty set means "use the default set" (every 1D format).
	PossibleFormats map[Format]bool

	// AllowedLengths restricts ITF's accepted final text lengths. Defaults
	// to {6, 8, 10, 12, 14} when nil.
	AllowedLengths []int

	// AllowedEANExtensions restricts which EAN-2/EAN-5 extension lengths are
	// accepted. A nil slice accepts any.
	AllowedEANExtensions []int

	// AssumeGS1, when set, makes Code 128 emit the "]C1" symbology
	// identifier and promote FNC1 to GS (ASCII 29).
	AssumeGS1 bool

	// AssumeCode39CheckDigit enables Code 39 mod-43 check digit
	// verification.
	AssumeCode39CheckDigit bool

	// ReturnCodabarStartEnd preserves the Codabar start/stop characters in
	// the decoded text.
	ReturnCodabarStartEnd bool

	// ResultPointCallback is invoked at each guard-pattern midpoint a
	// decoder discovers.
	ResultPointCallback ResultPointCallback

	// CharacterSet overrides ECI-derived encoding for byte-to-character
	// conversion (e.g. "ISO-8859-1", "UTF-8").
	CharacterSet string
}

func (h *DecodeHints) wantsFormat(f Format) bool {
	if h == nil || len(h.PossibleFormats) == 0 {
		return true
	}
	return h.PossibleFormats[f]
}

// WantsFormat reports whether hints (which may be nil) request format f, or
// impose no restriction at all.
func WantsFormat(h *DecodeHints, f Format) bool {
	return h.wantsFormat(f)
}

// AllowedITFLengths returns the configured ITF lengths, or the default set.
func (h *DecodeHints) AllowedITFLengths() []int {
	if h != nil && len(h.AllowedLengths) > 0 {
		return h.AllowedLengths
	}
	return []int{6, 8, 10, 12, 14}
}

// EncodeHints configures encode-side behavior.
type EncodeHints struct {
	// Margin is the quiet-zone module count on both sides of the encoded
	// row or matrix. Symbology-specific defaults apply when zero.
	Margin int

	// ForceCodeSet forces Code 128 to use code set "A", "B", or "C" instead
	// of choosing automatically.
	ForceCodeSet string

	// Code128Compact enables the minimal-cost divide-and-conquer code-set
	// optimizer for Code 128 encoding.
	Code128Compact bool
}

package folio

import "github.com/tsawler/folio/vocab"

// reconstructOptions holds configuration for reconstruction and rendering.
type reconstructOptions struct {
	// vocab is the venue vocabulary; nil means the built-in default.
	vocab *vocab.Vocabulary

	// splitX overrides the column split threshold when splitXSet is true.
	splitX    float64
	splitXSet bool

	// keepRaw disables extraction scrubbing.
	keepRaw bool
}

// defaultReconstructOptions returns the default options.
func defaultReconstructOptions() reconstructOptions {
	return reconstructOptions{}
}

// clone creates a copy of the options.
func (o reconstructOptions) clone() reconstructOptions {
	return reconstructOptions{
		vocab:     o.vocab,
		splitX:    o.splitX,
		splitXSet: o.splitXSet,
		keepRaw:   o.keepRaw,
	}
}

// vocabulary resolves the effective vocabulary.
func (o reconstructOptions) vocabulary() *vocab.Vocabulary {
	if o.vocab != nil {
		return o.vocab
	}
	return vocab.Default()
}

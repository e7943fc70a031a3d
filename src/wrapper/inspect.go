// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

// Segment describes one contiguous part of an artifact.
type Segment struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

// Token pairs a fixed argument with the literal it is rendered as inside the
// artifact: a shell word for POSIX, a Python string for Windows.
type Token struct {
	Arg     string `json:"arg"`
	Literal string `json:"literal"`
}

// Report describes the artifact Build would produce for the same inputs.
type Report struct {
	Platform string    `json:"platform"`
	Size     int       `json:"size"`
	Entry    string    `json:"entry,omitempty"`
	Segments []Segment `json:"segments"`
	Tokens   []Token   `json:"tokens"`
}

// Inspect builds the artifact for args and describes its layout instead of
// returning the bytes. It fails exactly when Build fails.
func Inspect(args []string, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	segments, err := assemble(args, o)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Platform: o.platform.String(),
		Segments: make([]Segment, 0, len(segments)),
		Tokens:   make([]Token, 0, len(args)),
	}

	for _, s := range segments {
		report.Segments = append(report.Segments, Segment{
			Name:   s.name,
			Offset: report.Size,
			Size:   len(s.data),
		})
		report.Size += len(s.data)
	}

	quote := quotePOSIX
	if o.platform == Windows {
		quote = quotePython
		report.Entry = MainEntry
	}
	for _, arg := range args {
		report.Tokens = append(report.Tokens, Token{Arg: arg, Literal: quote(arg)})
	}

	return report, nil
}

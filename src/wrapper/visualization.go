// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the report as two markdown tables: the artifact
// segments, then the fixed arguments with their rendered literals.
func (r *Report) RenderTable() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "%s wrapper, %d bytes", r.Platform, r.Size)
	if r.Entry != "" {
		fmt.Fprintf(&buf, ", payload %s", r.Entry)
	}
	buf.WriteString("\n\n")

	segments := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	segments.Header([]string{"#", "Segment", "Offset", "Size"})
	var rows [][]string
	for i, s := range r.Segments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Offset),
			fmt.Sprintf("%d", s.Size),
		})
	}
	segments.Bulk(rows)
	segments.Render()

	buf.WriteString("\n")

	tokens := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	tokens.Header([]string{"#", "Argument", "Literal"})
	rows = make([][]string, 0, len(r.Tokens))
	for i, t := range r.Tokens {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), t.Arg, t.Literal})
	}
	tokens.Bulk(rows)
	tokens.Render()

	return buf.String()
}

// JSON returns the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

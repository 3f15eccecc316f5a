package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func render(w io.Writer, format string, r report) error {
	switch strings.ToLower(format) {
	case "", "text":
		return renderText(w, r)
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, r report) error {
	if _, err := fmt.Fprintf(w, "arch:  %s\nlevel: %s\n\n", r.Arch, r.Level); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Feature\tBit\tDetected"); err != nil {
		return err
	}
	for _, f := range r.Features {
		mark := "no"
		if f.Detected {
			mark = "yes"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Name, f.Bit, mark); err != nil {
			return err
		}
	}
	return tw.Flush()
}

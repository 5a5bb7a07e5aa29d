package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	df "github.com/seismo/detectionformats"
)

// fileResult is the report for one validated file.
type fileResult struct {
	File   string     `json:"file"`
	Valid  bool       `json:"valid"`
	Error  string     `json:"error,omitempty"`
	Issues []issueOut `json:"issues,omitempty"`
}

type issueOut struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func validateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Parse and validate Detection documents",
		Long: `Parse each file and report every semantic violation.
The command exits non-zero when any file cannot be decoded or is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]fileResult, 0, len(args))
			failed := 0
			for _, path := range args {
				res := a.validateFile(cmd, path)
				if !res.Valid {
					failed++
				}
				results = append(results, res)
			}
			if err := a.report(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}

func (a *app) validateFile(cmd *cobra.Command, path string) fileResult {
	res := fileResult{File: path}
	d, err := a.parseFile(cmd.Context(), path)
	if err != nil {
		res.Error = err.Error()
		if iss, ok := df.AsIssues(err); ok {
			res.Issues = toIssueOut(iss)
		}
		a.log.WithField("file", path).WithError(err).Error("decode failed")
		return res
	}
	valid, iss := df.Validate(d)
	res.Valid = valid
	res.Issues = toIssueOut(iss)
	a.log.WithField("file", path).WithField("violations", len(iss)).Debug("validated")
	return res
}

func toIssueOut(iss df.Issues) []issueOut {
	if len(iss) == 0 {
		return nil
	}
	out := make([]issueOut, 0, len(iss))
	for _, it := range iss {
		out = append(out, issueOut{Path: it.Path, Code: it.Code, Message: it.Message})
	}
	return out
}

func (a *app) report(w io.Writer, results []fileResult) error {
	if a.cfg.Output == "json" {
		b, err := marshalIndent(results)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	var errs []error
	for _, r := range results {
		status := "OK"
		switch {
		case r.Error != "":
			status = "ERROR"
		case !r.Valid:
			status = "INVALID"
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.File, status); err != nil {
			errs = append(errs, err)
		}
		for _, it := range r.Issues {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", it.Path, it.Message); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

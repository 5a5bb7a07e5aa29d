package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	df "github.com/seismo/detectionformats"
)

// inputFor picks the decoder for path. With format "auto", .yaml and .yml
// files are YAML and everything else is JSON.
func inputFor(path, format string, data []byte) df.Input {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	if format == "yaml" {
		return df.YAMLBytes(data)
	}
	return df.JSONBytes(data)
}

// parseFile reads and parses one file, logging parse notices at warn level.
func (a *app) parseFile(ctx context.Context, path string) (*df.Detection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	entry := a.log.WithField("file", path)
	sink := func(is df.Issue) {
		entry.WithFields(logrus.Fields{"path": is.Path, "code": is.Code}).Warn(is.Message)
	}
	d, err := df.ParseFrom(ctx, inputFor(path, a.cfg.Format, data), a.cfg.ParseOpt(sink))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

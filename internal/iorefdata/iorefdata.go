// Package iorefdata loads the reference data file. Reference data is
// read once at process start and injected read-only into the pipeline
// and serving components.
package iorefdata

import (
	"os"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"gopkg.in/yaml.v3"
)

// Load reads refdata.yaml from the config directory. A missing file
// yields the built-in defaults; a present file is validated and its
// gaps are backfilled with warnings.
func Load(homeDir string) (*refdata.RefData, error) {
	path := config.RefDataFilePath(homeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return refdata.New(), nil
		}
		return nil, LoadError(path, err)
	}

	var rd refdata.RefData
	if err := yaml.Unmarshal(data, &rd); err != nil {
		return nil, LoadError(path, err)
	}

	for _, w := range rd.Validate() {
		gn.Warn("Reference data %s: %s", w.Field, w.Message)
	}
	return &rd, nil
}

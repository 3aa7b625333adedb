package config

import (
	"fmt"

	"github.com/dshills/collections/internal/record"
)

// fixture is the on-disk shape of a record file.
type fixture struct {
	Items []map[string]any `toml:"items" yaml:"items"`
}

// LoadRecords reads the records of a fixture file from the OS file system.
func LoadRecords(path string) ([]*record.Record, error) {
	return LoadRecordsFS(DefaultFS(), path)
}

// LoadRecordsFS reads the records of a fixture file from fsys.
// A fixture without items yields an empty slice.
func LoadRecordsFS(fsys FileSystem, path string) ([]*record.Record, error) {
	var fx fixture
	if err := readFile(fsys, path, &fx); err != nil {
		return nil, err
	}

	records := make([]*record.Record, 0, len(fx.Items))
	for i, fields := range fx.Items {
		if fields == nil {
			return nil, fmt.Errorf("%w: %s: item %d is empty", ErrInvalidFixture, path, i)
		}
		records = append(records, record.New(fields))
	}
	return records, nil
}

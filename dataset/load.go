package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadFile reads one complex sample per record from the file at path.
// Only the first field of a record is used.
func LoadFile(path string) ([]complex128, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open data file")
	}
	defer f.Close()

	samples, err := readSamples(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return samples, nil
}

func readSamples(r io.Reader) ([]complex128, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var samples []complex128

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return samples, nil
		}

		if err != nil {
			return nil, errors.Wrap(err, "failed to read record")
		}

		value, err := ParseComplex(record[0])
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(err, "line %d", line)
		}

		samples = append(samples, value)
	}
}

// Load reads the four test files from dir.
//
// All series must be non-empty and of equal length.
func Load(dir string) (*Set, error) {
	set := &Set{
		InputX:  Series{Name: InputXFile},
		InputY:  Series{Name: InputYFile},
		OutputX: Series{Name: OutputXFile},
		OutputY: Series{Name: OutputYFile},
	}

	for _, series := range set.All() {
		samples, err := LoadFile(filepath.Join(dir, series.Name))
		if err != nil {
			return nil, err
		}

		series.Samples = samples
	}

	if err := set.check(); err != nil {
		return nil, err
	}

	return set, nil
}

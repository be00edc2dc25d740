// Package dataset loads the complex sample files written by the FFT filter
// test.
package dataset

import "github.com/pkg/errors"

// File names written by the FFT filter test.
const (
	InputXFile  = "sinusFFT_FilterTest_input_x.csv"
	InputYFile  = "sinusFFT_FilterTest_input_y.csv"
	OutputXFile = "sinusFFT_FilterTest_output_x.csv"
	OutputYFile = "sinusFFT_FilterTest_output_y.csv"
)

const (
	// Ext is the extension counted when scanning a data directory.
	Ext = ".csv"

	// FileCount is the number of data files a directory must hold.
	FileCount = 4
)

var (
	ErrNoDirectory    = errors.New("data directory does not exist")
	ErrFileCount      = errors.New("unexpected number of data files")
	ErrSyntax         = errors.New("invalid complex number")
	ErrEmpty          = errors.New("no samples")
	ErrLengthMismatch = errors.New("series lengths differ")
)

// Series is one loaded file.
type Series struct {
	Name    string
	Samples []complex128
}

// Len returns the number of samples
func (s Series) Len() int {
	return len(s.Samples)
}

// Real returns the real parts of the samples.
func (s Series) Real() []float64 {
	out := make([]float64, len(s.Samples))
	for i, v := range s.Samples {
		out[i] = real(v)
	}
	return out
}

// Imag returns the imaginary parts of the samples.
func (s Series) Imag() []float64 {
	out := make([]float64, len(s.Samples))
	for i, v := range s.Samples {
		out[i] = imag(v)
	}
	return out
}

// Set holds both polarizations of the test input and output.
type Set struct {
	InputX  Series
	InputY  Series
	OutputX Series
	OutputY Series
}

// Len returns the shared series length.
func (s *Set) Len() int {
	return s.InputX.Len()
}

// All returns the series in file order.
func (s *Set) All() []*Series {
	return []*Series{&s.InputX, &s.InputY, &s.OutputX, &s.OutputY}
}

func (s *Set) check() error {
	n := s.InputX.Len()
	for _, series := range s.All() {
		if series.Len() == 0 {
			return errors.Wrap(ErrEmpty, series.Name)
		}

		if series.Len() != n {
			return errors.Wrapf(ErrLengthMismatch, "%s has %d samples, %s has %d",
				series.Name, series.Len(), s.InputX.Name, n)
		}
	}

	return nil
}

package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/serialization"
)

// StateVector returns every parameter value of m in persistence order:
// for each layer, the weight row-major, then the bias.
func StateVector(m Module) []float64 {
	values := make([]float64, 0, NumParams(m))
	for _, p := range m.Parameters() {
		values = append(values, p.Value().RawData()...)
	}
	return values
}

// LoadStateVector overwrites the parameters of m with values laid out as
// StateVector returns them.
func LoadStateVector(m Module, values []float64) error {
	if want := NumParams(m); len(values) != want {
		return fmt.Errorf("state vector has %d values, model needs %d", len(values), want)
	}

	k := 0
	for _, p := range m.Parameters() {
		v := p.Value()
		for i := 0; i < v.Rows(); i++ {
			for j := 0; j < v.Cols(); j++ {
				v.Set(i, j, values[k])
				k++
			}
		}
	}
	return nil
}

// Save writes the parameters of m to a weight file at path.
func Save(m Module, path string) (err error) {
	writer, err := serialization.NewWeightWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := writer.WriteValues(StateVector(m)); err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}
	return nil
}

// Load reads the parameters of m from the weight file at path.
//
// The file must hold at least NumParams(m) values; the topology is not
// recorded in the file, so m must match the network that was saved.
func Load(m Module, path string) error {
	reader, err := serialization.NewWeightReader(path)
	if err != nil {
		return fmt.Errorf("failed to open weights: %w", err)
	}
	defer reader.Close()

	values, err := reader.ReadValues(NumParams(m))
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}
	return LoadStateVector(m, values)
}

package poly

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/polyuq/polyuq/basis"
	"github.com/polyuq/polyuq/param"
	"github.com/polyuq/polyuq/pkg/errors"
)

// snapshotVersion tags the on-disk format.
const snapshotVersion = 1

// parameterSnapshot records how a marginal was constructed. Bounds are
// stored per kind rather than as raw support limits: gaussian supports
// are infinite, which JSON cannot carry.
type parameterSnapshot struct {
	Kind    string      `json:"kind"`
	Order   int         `json:"order"`
	Bounds  *[2]float64 `json:"bounds,omitempty"`
	Shape   *[2]float64 `json:"shape,omitempty"`
	Moments *[2]float64 `json:"moments,omitempty"`
}

type basisSnapshot struct {
	Type   string  `json:"type"`
	Orders []int   `json:"orders"`
	Q      float64 `json:"q,omitempty"`
}

type surrogateSnapshot struct {
	Version      int                 `json:"version"`
	Parameters   []parameterSnapshot `json:"parameters"`
	Basis        basisSnapshot       `json:"basis"`
	Coefficients []float64           `json:"coefficients,omitempty"`
}

// Save writes the surrogate to w as a versioned JSON snapshot:
// parameters, basis and, when fitted, coefficients. The design matrix and
// any custom random source are not part of the snapshot; a loaded
// surrogate samples from the default source.
func (p *Poly) Save(w io.Writer) error {
	snap := surrogateSnapshot{
		Version:    snapshotVersion,
		Parameters: make([]parameterSnapshot, 0, len(p.params)),
		Basis: basisSnapshot{
			Type:   p.basis.Type(),
			Orders: p.basis.Orders(),
			Q:      p.basis.Q(),
		},
	}
	for _, marginal := range p.params {
		ps := parameterSnapshot{Kind: string(marginal.Kind()), Order: marginal.Order()}
		switch marginal.Kind() {
		case param.Uniform:
			ps.Bounds = &[2]float64{marginal.Lower(), marginal.Upper()}
		case param.Beta:
			ps.Bounds = &[2]float64{marginal.Lower(), marginal.Upper()}
			shapeA, shapeB := marginal.Shape()
			ps.Shape = &[2]float64{shapeA, shapeB}
		case param.Gaussian:
			mean, variance := marginal.Moments()
			ps.Moments = &[2]float64{mean, variance}
		}
		snap.Parameters = append(snap.Parameters, ps)
	}
	if p.coefficients != nil {
		snap.Coefficients = append([]float64(nil), p.coefficients.RawVector().Data...)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&snap); err != nil {
		return errors.Wrap(err, "Poly.Save")
	}
	return nil
}

// SaveFile writes the surrogate snapshot to a file.
func (p *Poly) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Poly.SaveFile")
	}
	defer file.Close()
	return p.Save(file)
}

// Load reads a surrogate snapshot written by Save and reconstructs the
// surrogate, including its fitted state when coefficients are present.
func Load(r io.Reader) (*Poly, error) {
	var snap surrogateSnapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "poly.Load")
	}
	if snap.Version != snapshotVersion {
		return nil, errors.NewUnsupportedOptionError("poly.Load",
			fmt.Sprintf("snapshot version %d", snap.Version),
			[]string{fmt.Sprintf("snapshot version %d", snapshotVersion)})
	}

	params := make([]*param.Parameter, len(snap.Parameters))
	for k, ps := range snap.Parameters {
		opts := []param.Option{param.WithOrder(ps.Order)}
		if ps.Bounds != nil {
			opts = append(opts, param.WithBounds(ps.Bounds[0], ps.Bounds[1]))
		}
		if ps.Shape != nil {
			opts = append(opts, param.WithShape(ps.Shape[0], ps.Shape[1]))
		}
		if ps.Moments != nil {
			opts = append(opts, param.WithMoments(ps.Moments[0], ps.Moments[1]))
		}
		marginal, err := param.New(param.Kind(ps.Kind), opts...)
		if err != nil {
			return nil, err
		}
		params[k] = marginal
	}

	b, err := rebuildBasis(snap.Basis)
	if err != nil {
		return nil, err
	}
	surrogate, err := New(params, b)
	if err != nil {
		return nil, err
	}
	if snap.Coefficients != nil {
		if err := surrogate.SetCoefficients(snap.Coefficients); err != nil {
			return nil, err
		}
	}
	return surrogate, nil
}

// LoadFile reads a surrogate snapshot from a file.
func LoadFile(path string) (*Poly, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "poly.LoadFile")
	}
	defer file.Close()
	return Load(file)
}

func rebuildBasis(snap basisSnapshot) (*basis.Basis, error) {
	switch snap.Type {
	case "tensor-grid":
		return basis.TensorGrid(snap.Orders)
	case "total-order":
		return basis.TotalOrder(snap.Orders)
	case "hyperbolic":
		return basis.Hyperbolic(snap.Orders, snap.Q)
	case "euclidean":
		return basis.Euclidean(snap.Orders)
	default:
		return nil, errors.NewUnsupportedOptionError("poly.Load", snap.Type,
			[]string{"tensor-grid", "total-order", "hyperbolic", "euclidean"})
	}
}

package basis

import (
	"reflect"
	"testing"

	"github.com/polyuq/polyuq/pkg/errors"
)

func TestTotalOrderOrdering(t *testing.T) {
	b, err := TotalOrder([]int{2, 2})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}

	want := [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
	if b.Cardinality() != 6 {
		t.Errorf("Cardinality() = %d, want 6", b.Cardinality())
	}
	if b.Dimensions() != 2 {
		t.Errorf("Dimensions() = %d, want 2", b.Dimensions())
	}
}

func TestTotalOrderAnisotropic(t *testing.T) {
	// The per-dimension cap 1 removes (0,2) even though max(orders) is 2.
	b, err := TotalOrder([]int{2, 1})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}

	want := [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
}

func TestTotalOrderThreeDimensions(t *testing.T) {
	b, err := TotalOrder([]int{1, 1, 1})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}

	want := [][]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
}

func TestTensorGridOrdering(t *testing.T) {
	b, err := TensorGrid([]int{1, 2})
	if err != nil {
		t.Fatalf("TensorGrid error = %v", err)
	}

	// The last dimension cycles fastest.
	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
}

func TestTensorGridCardinality(t *testing.T) {
	b, err := TensorGrid([]int{3, 2, 1})
	if err != nil {
		t.Fatalf("TensorGrid error = %v", err)
	}
	if b.Cardinality() != 24 {
		t.Errorf("Cardinality() = %d, want 24", b.Cardinality())
	}
	if got := b.MaxDegrees(); !reflect.DeepEqual(got, []int{3, 2, 1}) {
		t.Errorf("MaxDegrees() = %v, want [3 2 1]", got)
	}
}

func TestHyperbolicKeepsAxisIndices(t *testing.T) {
	// At q = 0.5 every interaction term fails the quasi-norm bound and
	// only the axis indices survive.
	b, err := Hyperbolic([]int{3, 3}, 0.5)
	if err != nil {
		t.Fatalf("Hyperbolic error = %v", err)
	}

	want := [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {0, 2}, {3, 0}, {0, 3}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
}

func TestHyperbolicMatchesTotalOrderAtQOne(t *testing.T) {
	h, err := Hyperbolic([]int{2, 2}, 1)
	if err != nil {
		t.Fatalf("Hyperbolic error = %v", err)
	}
	to, err := TotalOrder([]int{2, 2})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}
	if !reflect.DeepEqual(h.Elements(), to.Elements()) {
		t.Errorf("q=1 elements = %v, want %v", h.Elements(), to.Elements())
	}
}

func TestEuclideanFiltersBySquaredDegree(t *testing.T) {
	b, err := Euclidean([]int{3, 3})
	if err != nil {
		t.Fatalf("Euclidean error = %v", err)
	}

	// Sum of squares stays within 9: (2,2) is in (sum 8), (3,1) is out.
	want := [][]int{
		{0, 0},
		{1, 0}, {0, 1},
		{2, 0}, {1, 1}, {0, 2},
		{3, 0}, {2, 1}, {1, 2}, {0, 3},
		{2, 2},
	}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() = %v, want %v", got, want)
	}
}

func TestBasisType(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Basis, error)
		want string
	}{
		{"tensor", func() (*Basis, error) { return TensorGrid([]int{1}) }, "tensor-grid"},
		{"total", func() (*Basis, error) { return TotalOrder([]int{1}) }, "total-order"},
		{"hyperbolic", func() (*Basis, error) { return Hyperbolic([]int{1}, 0.5) }, "hyperbolic"},
		{"euclidean", func() (*Basis, error) { return Euclidean([]int{1}) }, "euclidean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.make()
			if err != nil {
				t.Fatalf("constructor error = %v", err)
			}
			if got := b.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Basis, error)
	}{
		{"empty orders", func() (*Basis, error) { return TotalOrder(nil) }},
		{"negative order", func() (*Basis, error) { return TensorGrid([]int{2, -1}) }},
		{"hyperbolic q zero", func() (*Basis, error) { return Hyperbolic([]int{2}, 0) }},
		{"hyperbolic q above one", func() (*Basis, error) { return Hyperbolic([]int{2}, 1.5) }},
		{"euclidean negative order", func() (*Basis, error) { return Euclidean([]int{-3}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.make()
			var valErr *errors.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestSetOrdersRebuilds(t *testing.T) {
	b, err := TotalOrder([]int{1, 1})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}
	if b.Cardinality() != 3 {
		t.Fatalf("Cardinality() = %d, want 3", b.Cardinality())
	}

	if err := b.SetOrders([]int{2, 2}); err != nil {
		t.Fatalf("SetOrders error = %v", err)
	}
	want := [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}
	if got := b.Elements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Elements() after SetOrders = %v, want %v", got, want)
	}
	if got := b.Orders(); !reflect.DeepEqual(got, []int{2, 2}) {
		t.Errorf("Orders() = %v, want [2 2]", got)
	}
}

func TestSetOrdersValidation(t *testing.T) {
	b, err := TotalOrder([]int{1, 1})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}

	err = b.SetOrders([]int{2})
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("length mismatch error = %v, want DimensionError", err)
	}

	err = b.SetOrders([]int{-1, 2})
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("negative order error = %v, want ValidationError", err)
	}
}

func TestAccessorsCopy(t *testing.T) {
	b, err := TotalOrder([]int{2, 2})
	if err != nil {
		t.Fatalf("TotalOrder error = %v", err)
	}

	row := b.Element(3)
	row[0] = 99
	all := b.Elements()
	all[3][1] = 99

	if got := b.Index(3, 0); got != 2 {
		t.Errorf("Index(3,0) = %d after mutating Element copy, want 2", got)
	}
	if got := b.Index(3, 1); got != 0 {
		t.Errorf("Index(3,1) = %d after mutating Elements copy, want 0", got)
	}
}


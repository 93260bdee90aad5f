package join_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/rcsp/bucket"
	"github.com/katalvlaran/rcsp/join"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/ref"
)

// TestRunResourceVectorWithinTolerance uses go-cmp's float tolerance
// rather than testify's exact equality, since the merge formula chains
// several floating additions/subtractions.
func TestRunResourceVectorWithinTolerance(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}

	fwd := bucket.NewStore(4, 0, false)
	fwd.Insert(&label.Label{Vertex: 1, Weight: 1, Res: []float64{1}, Path: []int{0, 1}, Dir: label.Forward})

	bwd := bucket.NewStore(4, 0, true)
	bwd.Insert(&label.Label{Vertex: 2, Weight: 1, Res: []float64{9}, Path: []int{3, 2}, Dir: label.Backward})

	ub := math.Inf(1)
	best := join.Run(g, fwd, bwd, 1, &ub, join.Config{
		Ext:      ref.Default{Critical: 0},
		Critical: 0,
		MaxRes:   maxRes,
		MinRes:   minRes,
	})

	want := []float64{3}
	if diff := cmp.Diff(want, best.Res, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("merged resource vector mismatch (-want +got):\n%s", diff)
	}
}

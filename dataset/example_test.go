package dataset_test

import (
	"fmt"
	"strings"

	"github.com/jobohobobobo/linmod/dataset"
	"github.com/jobohobobobo/linmod/ols"
)

// ExampleReadCSV parses a small dataset and fits a model against it.
func ExampleReadCSV() {
	raw := "x1,x2,y\n1,0,1\n0,1,2\n1,1,3\n2,1,5\n"

	tbl, err := dataset.ReadCSV(strings.NewReader(raw))
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}

	X, _ := tbl.Design([]string{"x1", "x2"})
	y, _ := tbl.Response("y")

	res, err := ols.Fit(X, y)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Printf("rows: %d\n", tbl.Rows())
	fmt.Printf("coeffs: [%.4f %.4f]\n", res.Coeffs[0], res.Coeffs[1])
	// Output:
	// rows: 4
	// coeffs: [1.3333 2.0000]
}

// ExampleTable_Describe prints per-column summaries.
func ExampleTable_Describe() {
	tbl, _ := dataset.NewTable(
		[]string{"a", "b"},
		[][]float64{
			{1, 2, 3, 4},
			{2, 4, 6, 8},
		},
	)

	for _, s := range tbl.Describe() {
		fmt.Printf("%s: n=%d mean=%.2f min=%.0f max=%.0f\n",
			s.Label, s.N, s.Mean, s.Min, s.Max)
	}
	// Output:
	// a: n=4 mean=2.50 min=1 max=4
	// b: n=4 mean=5.00 min=2 max=8
}

package orders

import "testing"

func rows(n int) []Row {
	out := make([]Row, n)
	for i := range out {
		out[i].Quantity = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name             string
		n, page, size    int
		wantNum, wantLen int
		wantPages        int
	}{
		{"first page", 25, 1, 10, 1, 10, 3},
		{"last partial page", 25, 3, 10, 3, 5, 3},
		{"past the end clamps", 25, 9, 10, 3, 5, 3},
		{"zero page clamps", 25, 0, 10, 1, 10, 3},
		{"empty", 0, 1, 10, 1, 0, 1},
		{"bad size uses default", 25, 1, 0, 1, 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(rows(tc.n), tc.page, tc.size)
			if p.Number != tc.wantNum || len(p.Rows) != tc.wantLen || p.TotalPages != tc.wantPages {
				t.Errorf("got page %d len %d of %d", p.Number, len(p.Rows), p.TotalPages)
			}
		})
	}
	p := Paginate(rows(25), 2, 10)
	if p.Rows[0].Quantity != 10 || !p.HasPrev() || !p.HasNext() {
		t.Errorf("page 2 = %+v", p)
	}
}

func TestNormalizePageSize(t *testing.T) {
	if NormalizePageSize(50, 10) != 50 {
		t.Error("allowed size rejected")
	}
	if NormalizePageSize(7, 20) != 20 {
		t.Error("disallowed size not replaced by default")
	}
	if NormalizePageSize(7, 0) != DefaultPageSize {
		t.Error("zero default not replaced")
	}
}

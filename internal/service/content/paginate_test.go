package content

import "testing"

func TestPaginate(t *testing.T) {
	twenty := make([]int, 20)
	for i := range twenty {
		twenty[i] = i
	}

	tests := []struct {
		name           string
		items          []int
		pageSize       int
		page           int
		wantLen        int
		wantTotalPages int
	}{
		{
			name:  "first full page",
			items: twenty, pageSize: 9, page: 1,
			wantLen: 9, wantTotalPages: 3,
		},
		{
			name:  "middle page",
			items: twenty, pageSize: 9, page: 2,
			wantLen: 9, wantTotalPages: 3,
		},
		{
			name:  "last partial page",
			items: twenty, pageSize: 9, page: 3,
			wantLen: 2, wantTotalPages: 3,
		},
		{
			name:  "empty list",
			items: []int{}, pageSize: 9, page: 1,
			wantLen: 0, wantTotalPages: 0,
		},
		{
			name:  "page past the end",
			items: twenty, pageSize: 9, page: 4,
			wantLen: 0, wantTotalPages: 3,
		},
		{
			name:  "page below one",
			items: twenty, pageSize: 9, page: 0,
			wantLen: 0, wantTotalPages: 3,
		},
		{
			name:  "exact multiple",
			items: twenty[:18], pageSize: 9, page: 2,
			wantLen: 9, wantTotalPages: 2,
		},
		{
			name:  "page size larger than list",
			items: twenty[:3], pageSize: 9, page: 1,
			wantLen: 3, wantTotalPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.pageSize, tt.page)

			if len(got.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(got.Items), tt.wantLen)
			}
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestPaginateWindowContents(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Paginate(items, 2, 2)
	if len(page.Items) != 2 || page.Items[0] != "c" || page.Items[1] != "d" {
		t.Errorf("page 2 = %v, want [c d]", page.Items)
	}

	page = Paginate(items, 2, 3)
	if len(page.Items) != 1 || page.Items[0] != "e" {
		t.Errorf("page 3 = %v, want [e]", page.Items)
	}
}

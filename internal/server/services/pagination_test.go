package services

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"limit capped", 1, 500, 1, 100, 0},
		{"custom limit", 3, 25, 3, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := normalizePage(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got (%d, %d, %d), want (%d, %d, %d)",
					page, limit, offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := newPagination(2, 10, 25)
	if p.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("unexpected flags: %+v", p)
	}

	last := newPagination(3, 10, 25)
	if last.HasNext {
		t.Fatalf("HasNext on last page: %+v", last)
	}

	empty := newPagination(1, 10, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("unexpected empty pagination: %+v", empty)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Steel Fibre Reinforcement", "steel-fibre-reinforcement"},
		{"  Anti--Stripping  Agent!  ", "anti-stripping-agent"},
		{"Already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

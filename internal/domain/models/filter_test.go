package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListFilter
		want ListFilter
	}{
		{
			name: "defaults",
			in:   ListFilter{},
			want: ListFilter{Page: 1, PageSize: 20, OrderBy: "order", OrderDirection: SortAsc},
		},
		{
			name: "negative values fall back",
			in:   ListFilter{Page: -3, PageSize: 0, OrderDirection: "DESC", Search: "  lila "},
			want: ListFilter{Page: 1, PageSize: 20, OrderBy: "order", OrderDirection: SortDesc, Search: "lila"},
		},
		{
			name: "large page size is kept",
			in:   ListFilter{Page: 2, PageSize: 500, OrderBy: "title", OrderDirection: "sideways"},
			want: ListFilter{Page: 2, PageSize: 500, OrderBy: "title", OrderDirection: SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(20))
		})
	}
}

func TestListFilterOffset(t *testing.T) {
	assert.Equal(t, uint64(0), ListFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, uint64(20), ListFilter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, uint64(0), ListFilter{}.Offset())
}

func TestListFilterOffset_Saturates(t *testing.T) {
	tests := []struct {
		name string
		f    ListFilter
		want uint64
	}{
		{"huge page", ListFilter{Page: 1 << 62, PageSize: 4}, math.MaxInt64},
		{"max page and size", ListFilter{Page: math.MaxInt, PageSize: math.MaxInt}, math.MaxInt64},
		{"exact bound", ListFilter{Page: 2, PageSize: math.MaxInt}, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.Offset()
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, uint64(math.MaxInt64))
		})
	}
}

func TestNewPage_HugePageSize(t *testing.T) {
	p := NewPage([]int{1, 2}, 2, ListFilter{Page: 1, PageSize: math.MaxInt})
	assert.Equal(t, 1, p.TotalPages)

	p = NewPage[int](nil, 0, ListFilter{Page: 1, PageSize: 10})
	assert.Equal(t, 0, p.TotalPages)
}

func TestNewPage(t *testing.T) {
	p := NewPage[int](nil, 25, ListFilter{Page: 2, PageSize: 10})
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.Total)

	p = NewPage([]int{1}, 0, ListFilter{Page: 1, PageSize: 10})
	assert.Equal(t, 0, p.TotalPages)
}

func TestParseAwardStatus(t *testing.T) {
	assert.Equal(t, AwardGanador, ParseAwardStatus("ganador"))
	assert.Equal(t, AwardMencion, ParseAwardStatus(" Mencion "))
	assert.Equal(t, AwardNominacion, ParseAwardStatus("NOMINACION"))
	assert.Equal(t, AwardNominacion, ParseAwardStatus("finalista"))
}

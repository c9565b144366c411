package listview_test

import (
	"fmt"
	"testing"

	"github.com/me1pik/admin-backoffice/listview"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Status string
	Name   string
	Brand  string
}

func rowPipeline(pageSize int) *listview.Pipeline[row] {
	return listview.New(
		func(r row) string { return r.Status },
		func(r row) []string { return []string{r.ID, r.Name, r.Brand} },
		pageSize,
	)
}

func makeRows(n int, status string) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, row{
			ID:     fmt.Sprintf("row-%02d", i),
			Status: status,
			Name:   fmt.Sprintf("상품 %d", i),
			Brand:  "brandX",
		})
	}
	return rows
}

func TestApplyTabFilter(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := append(makeRows(3, "등록완료"), makeRows(2, "등록대기")...)

	page := pipeline.Apply(rows, listview.Query{Tab: listview.Tab{Label: "등록대기", Path: "등록대기"}, Page: 1})
	require.Len(t, page.Items, 2)
	for _, r := range page.Items {
		require.Equal(t, "등록대기", r.Status)
	}

	all := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Page: 1})
	require.Equal(t, 5, all.TotalItems)
}

func TestUnclassifiedRowsOnlyUnderSentinel(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := []row{
		{ID: "a", Status: "등록완료"},
		{ID: "b", Status: ""}, // no classification
		{ID: "c", Status: "기타상태"},
	}

	registered := pipeline.Apply(rows, listview.Query{Tab: listview.Tab{Label: "등록완료", Path: "등록완료"}, Page: 1})
	require.Len(t, registered.Items, 1)
	require.Equal(t, "a", registered.Items[0].ID)

	pending := pipeline.Apply(rows, listview.Query{Tab: listview.Tab{Label: "등록대기", Path: "등록대기"}, Page: 1})
	require.Empty(t, pending.Items)

	all := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Page: 1})
	require.Len(t, all.Items, 3)
}

func TestSearchIsSubstringCaseInsensitiveAcrossFields(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := []row{{ID: "ABC123", Name: "dress", Brand: "brandX"}}

	matched := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Search: "abc", Page: 1})
	require.Len(t, matched.Items, 1)

	matchedOther := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Search: "BRANDX", Page: 1})
	require.Len(t, matchedOther.Items, 1)

	unmatched := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Search: "xyz", Page: 1})
	require.Empty(t, unmatched.Items)
}

func TestPaginationAppliedAfterFiltering(t *testing.T) {
	// 15 matching rows interleaved with 15 non-matching: paging the
	// filtered result must never surface a non-matching row, which would
	// happen if pagination ran before the filters.
	pipeline := rowPipeline(10)
	rows := make([]row, 0, 30)
	for i := 0; i < 15; i++ {
		rows = append(rows, row{ID: fmt.Sprintf("m-%02d", i), Status: "등록완료", Name: "match"})
		rows = append(rows, row{ID: fmt.Sprintf("x-%02d", i), Status: "등록대기", Name: "other"})
	}

	q := listview.Query{Tab: listview.Tab{Label: "등록완료", Path: "등록완료"}, Page: 2}
	page := pipeline.Apply(rows, q)
	require.Equal(t, 15, page.TotalItems)
	require.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 5)
	for _, r := range page.Items {
		require.Equal(t, "등록완료", r.Status)
	}
}

func TestPageClamp(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := makeRows(23, "등록완료")

	last := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Page: 3})
	require.Equal(t, 3, last.PageIndex)

	overshoot := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Page: 99})
	require.Equal(t, 3, overshoot.PageIndex)
	require.Equal(t, last.Items, overshoot.Items)

	undershoot := pipeline.Apply(rows, listview.Query{Tab: listview.SentinelTab(), Page: 0})
	require.Equal(t, 1, undershoot.PageIndex)
}

func TestEmptyResultHasOnePage(t *testing.T) {
	pipeline := rowPipeline(10)

	page := pipeline.Apply(nil, listview.Query{Tab: listview.SentinelTab(), Page: 5})
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 1, page.PageIndex)
	require.Empty(t, page.Items)
}

func TestTwentyThreeRowsAcrossThreePages(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := makeRows(23, "등록완료")
	tab := listview.Tab{Label: "등록완료", Path: "등록완료"}

	page1 := pipeline.Apply(rows, listview.Query{Tab: tab, Page: 1})
	require.Equal(t, 3, page1.TotalPages)
	require.Len(t, page1.Items, 10)
	require.Equal(t, "row-01", page1.Items[0].ID)
	require.Equal(t, "row-10", page1.Items[9].ID)

	page3 := pipeline.Apply(rows, listview.Query{Tab: tab, Page: 3})
	require.Len(t, page3.Items, 3)
	require.Equal(t, "row-21", page3.Items[0].ID)
	require.Equal(t, "row-23", page3.Items[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := append(makeRows(3, "등록완료"), makeRows(2, "등록대기")...)
	snapshot := make([]row, len(rows))
	copy(snapshot, rows)

	_ = pipeline.Apply(rows, listview.Query{
		Tab:    listview.Tab{Label: "등록대기", Path: "등록대기"},
		Search: "row",
		Page:   2,
	})
	require.Equal(t, snapshot, rows)
}

func TestFilterSkipsPaging(t *testing.T) {
	pipeline := rowPipeline(10)
	rows := makeRows(23, "등록완료")

	filtered := pipeline.Filter(rows, listview.Query{Tab: listview.SentinelTab(), Search: "row-2"})
	require.Len(t, filtered, 4) // row-20 .. row-23
}

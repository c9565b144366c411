package listview_test

import (
	"fmt"
	"testing"

	"github.com/me1pik/admin-backoffice/listview"
	"github.com/stretchr/testify/require"
)

func rowController(pageSize int) *listview.Controller[row] {
	return listview.NewController(rowPipeline(pageSize), func(r row) string { return r.ID })
}

func TestTabChangeResetsPage(t *testing.T) {
	c := rowController(10)
	rows := makeRows(23, "등록완료")

	c.SetPage(3)
	page := c.View(rows)
	require.Equal(t, 3, page.PageIndex)

	c.SelectTab(listview.Tab{Label: "등록완료", Path: "등록완료"})
	require.Equal(t, 1, c.Query().Page)

	// Even though page 3 would still be in range after the tab change,
	// the reset applies.
	page = c.View(rows)
	require.Equal(t, 1, page.PageIndex)
	require.Equal(t, 3, page.TotalPages)
}

func TestSearchResetsPageAndShrinksResult(t *testing.T) {
	c := rowController(10)
	rows := makeRows(23, "등록완료")

	c.SetPage(3)
	require.Equal(t, 3, c.View(rows).PageIndex)

	// A term matching only 5 rows (상품 2, 20..23): page resets to 1,
	// one page total, all matches visible.
	c.SetSearch("상품 2")
	page := c.View(rows)
	require.Equal(t, 1, page.PageIndex)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 5, page.TotalItems)
	require.Len(t, page.Items, 5)
}

func TestViewSyncsClampedPage(t *testing.T) {
	c := rowController(10)
	rows := makeRows(5, "등록완료")

	c.SetPage(9)
	page := c.View(rows)
	require.Equal(t, 1, page.PageIndex)
	require.Equal(t, 1, c.Query().Page)
}

func TestSameInputDoesNotResetPage(t *testing.T) {
	c := rowController(10)
	c.SetSearch("dress")
	c.SetPage(2)

	// Re-applying identical inputs must not reset the page.
	c.SetSearch("dress")
	c.SelectTab(listview.SentinelTab())
	require.Equal(t, 2, c.Query().Page)
}

func TestToggleAllSelectsFilteredSetNotVisiblePage(t *testing.T) {
	c := rowController(10)
	rows := makeRows(23, "등록완료")

	c.ToggleAll(rows)
	require.Equal(t, 23, c.Selection().Len())

	// Second toggle with everything selected clears.
	c.ToggleAll(rows)
	require.Equal(t, 0, c.Selection().Len())
}

func TestToggleAllScopedToSearch(t *testing.T) {
	c := rowController(10)
	rows := []row{
		{ID: "a", Status: "등록완료", Name: "dress"},
		{ID: "b", Status: "등록완료", Name: "coat"},
		{ID: "c", Status: "등록완료", Name: "dress"},
	}

	c.SetSearch("dress")
	c.ToggleAll(rows)
	require.Equal(t, 2, c.Selection().Len())
	require.True(t, c.Selection().Has("a"))
	require.True(t, c.Selection().Has("c"))
	require.False(t, c.Selection().Has("b"))
}

func TestSelectionClearedOnFilterChange(t *testing.T) {
	c := rowController(10)
	rows := makeRows(5, "등록완료")

	c.ToggleRow("row-01")
	c.ToggleRow("row-02")
	require.Equal(t, 2, c.Selection().Len())

	c.SelectTab(listview.Tab{Label: "등록대기", Path: "등록대기"})
	require.Equal(t, 0, c.Selection().Len())

	c.ToggleRow("row-03")
	c.SetSearch("무언가")
	require.Equal(t, 0, c.Selection().Len())
	_ = c.View(rows)
}

func TestToggleAllOnEmptyFilteredSet(t *testing.T) {
	c := rowController(10)
	c.SetSearch("없는검색어")
	c.ToggleAll(makeRows(5, "등록완료"))
	require.Equal(t, 0, c.Selection().Len())
}

func TestToggleRowFlipsMembership(t *testing.T) {
	c := rowController(10)
	require.True(t, c.ToggleRow("row-01"))
	require.False(t, c.ToggleRow("row-01"))
	require.Equal(t, 0, c.Selection().Len())
}

func TestPartialSelectionThenToggleAllSelectsAll(t *testing.T) {
	c := rowController(10)
	rows := makeRows(4, "등록완료")

	c.ToggleRow("row-01")
	c.ToggleAll(rows)
	require.Equal(t, 4, c.Selection().Len())
	for i := 1; i <= 4; i++ {
		require.True(t, c.Selection().Has(fmt.Sprintf("row-%02d", i)))
	}
}

package sizeguide_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/me1pik/admin-backoffice/sizeguide"
)

func TestLookupDressCategory(t *testing.T) {
	guide, ok := sizeguide.Lookup("미니원피스")
	require.True(t, ok)
	require.Equal(t, "/images/size-guide/dress-mini.png", guide.Image)
	require.Len(t, guide.Labels, 5)
	require.Equal(t, sizeguide.Label{Key: "A", Name: "어깨너비"}, guide.Labels[0])
	require.Equal(t, sizeguide.Label{Key: "E", Name: "총길이"}, guide.Labels[4])
}

func TestLookupBottomCategory(t *testing.T) {
	guide, ok := sizeguide.Lookup("팬츠")
	require.True(t, ok)
	require.Len(t, guide.Labels, 4)
	require.Equal(t, sizeguide.Label{Key: "A", Name: "허리둘레"}, guide.Labels[0])
}

func TestLookupUnknownCategory(t *testing.T) {
	guide, ok := sizeguide.Lookup("모자")
	require.False(t, ok)
	require.Empty(t, guide.Image)
	require.Empty(t, guide.Labels)
}

func TestSharedLabelSets(t *testing.T) {
	mini, ok := sizeguide.Lookup("미니원피스")
	require.True(t, ok)
	long, ok := sizeguide.Lookup("롱원피스")
	require.True(t, ok)
	require.Equal(t, mini.Labels, long.Labels)

	skirt, ok := sizeguide.Lookup("스커트")
	require.True(t, ok)
	pants, ok := sizeguide.Lookup("팬츠")
	require.True(t, ok)
	require.Equal(t, skirt.Labels, pants.Labels)
}

func TestCategoriesSortedAndComplete(t *testing.T) {
	categories := sizeguide.Categories()
	require.Len(t, categories, 12)
	require.True(t, sort.StringsAreSorted(categories))

	for _, category := range categories {
		_, ok := sizeguide.Lookup(category)
		require.True(t, ok)
	}
}

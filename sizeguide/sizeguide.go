// Package sizeguide maps a product category to the measurement fields the
// product forms render. The table is hand-authored; the field keys are the
// letters printed on the reference image, and saved product measurements are
// keyed by the same letters.
package sizeguide

import "sort"

// Label is one measurement field of a category's size grid.
type Label struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Guide describes the size grid for one category.
type Guide struct {
	Image  string  `json:"image"`
	Labels []Label `json:"labels"`
}

var dressLabels = []Label{
	{Key: "A", Name: "어깨너비"},
	{Key: "B", Name: "가슴둘레"},
	{Key: "C", Name: "허리둘레"},
	{Key: "D", Name: "팔길이"},
	{Key: "E", Name: "총길이"},
}

var topLabels = []Label{
	{Key: "A", Name: "어깨너비"},
	{Key: "B", Name: "가슴둘레"},
	{Key: "C", Name: "팔길이"},
	{Key: "D", Name: "총길이"},
}

var bottomLabels = []Label{
	{Key: "A", Name: "허리둘레"},
	{Key: "B", Name: "엉덩이둘레"},
	{Key: "C", Name: "밑위길이"},
	{Key: "D", Name: "총길이"},
}

var guides = map[string]Guide{
	"미니원피스": {Image: "/images/size-guide/dress-mini.png", Labels: dressLabels},
	"미디원피스": {Image: "/images/size-guide/dress-midi.png", Labels: dressLabels},
	"롱원피스":  {Image: "/images/size-guide/dress-long.png", Labels: dressLabels},
	"투피스":   {Image: "/images/size-guide/two-piece.png", Labels: dressLabels},
	"점프수트":  {Image: "/images/size-guide/jumpsuit.png", Labels: dressLabels},
	"블라우스":  {Image: "/images/size-guide/blouse.png", Labels: topLabels},
	"니트":    {Image: "/images/size-guide/knit.png", Labels: topLabels},
	"가디건":   {Image: "/images/size-guide/cardigan.png", Labels: topLabels},
	"자켓":    {Image: "/images/size-guide/jacket.png", Labels: topLabels},
	"코트":    {Image: "/images/size-guide/coat.png", Labels: topLabels},
	"스커트":   {Image: "/images/size-guide/skirt.png", Labels: bottomLabels},
	"팬츠":    {Image: "/images/size-guide/pants.png", Labels: bottomLabels},
}

// Lookup returns the guide for a category. Unknown categories return a zero
// Guide and false; callers render an empty grid rather than failing.
func Lookup(category string) (Guide, bool) {
	guide, ok := guides[category]
	return guide, ok
}

// Categories lists every category that has a guide.
func Categories() []string {
	categories := make([]string, 0, len(guides))
	for category := range guides {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestTrimmedText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<ul>
			<li class="a">
				2-3 <span>ft</span>
			</li>
			<li class="b">  second  </li>
		</ul>
	`))
	require.NoError(t, err)

	require.Equal(t, "2-3 ft", TrimmedText(doc.Find("li.a")))
	require.Equal(t, "2-3 ft", TrimmedText(doc.Find("li")))
	require.Equal(t, "second", TrimmedText(doc.Find("li.b")))
	require.Equal(t, "", TrimmedText(doc.Find("li.missing")))
}

package domquery

import (
	"strings"
	"testing"

	"github.com/npillmayer/domquery/dom"
	"golang.org/x/net/html"
)

const listDoc = `<html><body><div id="root"><ul>
<li class="a">1</li><li class="b">2</li><li class="a">3</li>
</ul></div></body></html>`

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := dom.Parse(doc)
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return root
}

// texts returns the trimmed text content of a node set.
func texts(nodes []*html.Node) []string {
	r := make([]string, len(nodes))
	for i, n := range nodes {
		r[i] = strings.TrimSpace(dom.TextContent(n))
	}
	return r
}

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("## Plans\n\nSee **Choose Plan**.\n\n<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, `<h2 id="plans">Plans</h2>`)
	assert.Contains(t, out, "<strong>Choose Plan</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()

	tests := []struct {
		in   string
		want string
	}{
		{"slow  internet", "slow  internet"},
		{"<b>no</b> signal", "no signal"},
		{"<script>x()</script>billing & data", "billing & data"},
		{"  <img src=x onerror=y>  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.StripTags(tt.in), tt.in)
	}
}

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMediaQueryPrint(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want bool
	}{
		{
			name: "plain print query",
			css:  "@media print { body { color: #000; } }",
			want: true,
		},
		{
			name: "only print",
			css:  "@media only print { body {} }",
			want: true,
		},
		{
			name: "print in media type list",
			css:  "@media screen, print { body {} }",
			want: true,
		},
		{
			name: "query spanning lines",
			css:  "@media\n  print\n{ body {} }",
			want: true,
		},
		{
			name: "screen only",
			css:  "@media screen { body {} }",
			want: false,
		},
		{
			name: "print outside a media query",
			css:  "@media screen { body {} } .print-button { display: none; }",
			want: false,
		},
		{
			name: "no media queries at all",
			css:  "body { color: #333; }",
			want: false,
		},
		{
			name: "print as part of a longer word",
			css:  "@media printer { body {} }",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme.css")
			require.NoError(t, os.WriteFile(path, []byte(tt.css), 0o644))
			assert.Equal(t, tt.want, HasMediaQueryPrint(path))
		})
	}
}

func TestHasMediaQueryPrint_ReadFailure(t *testing.T) {
	// A missing file degrades to false rather than failing the run.
	assert.False(t, HasMediaQueryPrint(filepath.Join(t.TempDir(), "missing.css")))
}

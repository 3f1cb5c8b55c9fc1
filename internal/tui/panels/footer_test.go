package panels

import (
	"strings"
	"testing"
)

func TestRenderFooterHints(t *testing.T) {
	tests := []struct {
		name  string
		props FooterProps
		want  []string
		not   []string
	}{
		{
			name:  "list focus with both tiers",
			props: FooterProps{Focus: "list", UndoRedo: true, BulkOps: true},
			want:  []string{"ctrl+z:undo", "ctrl+a:select all", "space:mark", "q:quit"},
		},
		{
			name:  "undo tier disabled",
			props: FooterProps{Focus: "list", BulkOps: true},
			want:  []string{"ctrl+a:select all"},
			not:   []string{"undo", "redo"},
		},
		{
			name:  "bulk tier disabled",
			props: FooterProps{Focus: "list", UndoRedo: true},
			want:  []string{"ctrl+z:undo"},
			not:   []string{"select all", "export"},
		},
		{
			name:  "filter focus",
			props: FooterProps{Focus: "filter", UndoRedo: true, BulkOps: true},
			want:  []string{"enter:apply", "esc:back"},
			not:   []string{"q:quit"},
		},
		{
			name:  "note shown",
			props: FooterProps{Focus: "list", Note: "deleted 2 items"},
			want:  []string{"deleted 2 items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderFooter(tt.props, 160)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("footer %q missing %q", got, want)
				}
			}
			for _, not := range tt.not {
				if strings.Contains(got, not) {
					t.Errorf("footer %q must not contain %q", got, not)
				}
			}
		})
	}
}

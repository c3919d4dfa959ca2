package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/civicsignal/remark/pkg/remark/internalerr"
)

func TestLinesBasic(t *testing.T) {
	text := "First comment\n\n  Second comment  \r\n\nThird comment\n"
	got, err := Lines(text, 0)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}

	want := []string{"First comment", "Second comment", "Third comment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestLinesBareCarriageReturns(t *testing.T) {
	got, err := Lines("First comment\rSecond comment\r\rThird comment", 0)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}

	want := []string{"First comment", "Second comment", "Third comment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestLinesCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&b, "comment %d\n", i)
	}

	got, err := Lines(b.String(), 0)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(got) != DefaultMaxComments {
		t.Errorf("len = %d, want %d", len(got), DefaultMaxComments)
	}

	got, err = Lines(b.String(), 10)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
	if got[0] != "comment 0" || got[9] != "comment 9" {
		t.Errorf("cap must keep the head of the sequence: %v", got)
	}
}

func TestLinesNoUsableComments(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n \t \n"} {
		_, err := Lines(text, 0)
		if !errors.Is(err, internalerr.ErrNoComments) {
			t.Errorf("Lines(%q) err = %v, want ErrNoComments", text, err)
		}
	}
}

func TestFromHTML(t *testing.T) {
	doc := `<html><head><title>ignored</title><style>p{}</style></head>
<body>
<h1>Consultation responses</h1>
<p>We support the amendment.</p>
<ul><li>Clarify the timeline.</li><li>Extend the deadline.</li></ul>
<script>var ignored = 1;</script>
</body></html>`

	got, err := FromHTML([]byte(doc), 0)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	want := []string{
		"Consultation responses",
		"We support the amendment.",
		"Clarify the timeline.",
		"Extend the deadline.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromHTML = %v, want %v", got, want)
	}
}

func TestFromHTMLCollapsesWhitespace(t *testing.T) {
	doc := "<p>We support\n   the\t amendment.</p>"

	got, err := FromHTML([]byte(doc), 0)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(got) != 1 || got[0] != "We support the amendment." {
		t.Errorf("FromHTML = %v", got)
	}
}

func TestFromHTMLEmpty(t *testing.T) {
	_, err := FromHTML([]byte("<html><body></body></html>"), 0)
	if !errors.Is(err, internalerr.ErrNoComments) {
		t.Errorf("err = %v, want ErrNoComments", err)
	}
}

func TestFromMarkdown(t *testing.T) {
	md := `# Responses

We support the amendment.

- Clarify the timeline.
- Extend the deadline.
`
	got, err := FromMarkdown([]byte(md), 0)
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}

	want := []string{
		"Responses",
		"We support the amendment.",
		"Clarify the timeline.",
		"Extend the deadline.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromMarkdown = %v, want %v", got, want)
	}
}

func TestFromFileDispatch(t *testing.T) {
	tmpDir := t.TempDir()

	txtPath := filepath.Join(tmpDir, "comments.txt")
	if err := os.WriteFile(txtPath, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile(txtPath, 0)
	if err != nil {
		t.Fatalf("FromFile txt: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("txt = %v", got)
	}

	mdPath := filepath.Join(tmpDir, "comments.md")
	if err := os.WriteFile(mdPath, []byte("- alpha\n- beta\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = FromFile(mdPath, 0)
	if err != nil {
		t.Fatalf("FromFile md: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("md = %v", got)
	}

	htmlPath := filepath.Join(tmpDir, "comments.html")
	if err := os.WriteFile(htmlPath, []byte("<p>gamma</p>"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = FromFile(htmlPath, 0)
	if err != nil {
		t.Fatalf("FromFile html: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"gamma"}) {
		t.Errorf("html = %v", got)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile("/nonexistent/comments.txt", 0); err == nil {
		t.Error("Expected error for missing file")
	}
}

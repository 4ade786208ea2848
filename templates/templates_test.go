package templates

import (
	"strings"
	"testing"
)

func TestRenderListenPage(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, "listen.html", ListenPage{
		Name:        "Lavender soap",
		Description: "First line\nSecond line",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Lavender soap") {
		t.Error("rendered page missing product name")
	}
	if !strings.Contains(out, "First line\nSecond line") {
		t.Error("rendered page missing description with newlines intact")
	}
	if !strings.Contains(out, "speechSynthesis") {
		t.Error("rendered page missing the read-aloud script")
	}
}

// Descriptions are user input; the template engine must escape them.
func TestRenderEscapesHTML(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, "listen.html", ListenPage{
		Name:        "safe",
		Description: `<script>alert("xss")</script>`,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(buf.String(), `<script>alert`) {
		t.Error("description rendered unescaped")
	}
}

func TestRenderStaticPages(t *testing.T) {
	for _, name := range []string{"home.html", "scan.html", "notfound.html"} {
		var buf strings.Builder
		if err := Render(&buf, name, nil); err != nil {
			t.Errorf("Render(%s): %v", name, err)
		}
		if !strings.Contains(buf.String(), "</html>") {
			t.Errorf("page %s looks truncated", name)
		}
	}
}

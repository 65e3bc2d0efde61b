package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallsBack(t *testing.T) {
	th := DevComfortDark()

	if th.GetStyle("keyword.control") != th.Styles["keyword"] {
		t.Errorf("dotted name did not fall back to its base")
	}
	if th.GetStyle("no-such-style") != th.Styles[StyleDefault] {
		t.Errorf("unknown name did not fall back to Default")
	}
	if th.GetStyle(StyleSelected) == th.GetStyle(StyleChar) {
		t.Errorf("selected characters look like plain ones")
	}
}

func TestTintKeepsBackground(t *testing.T) {
	th := DevComfortDark()
	base := th.GetStyle(StyleDropTarget)

	tinted := th.Tint(base, "string")
	fg, bg, _ := tinted.Decompose()
	wantFg, _, _ := th.Styles["string"].Decompose()
	_, wantBg, _ := base.Decompose()
	if fg != wantFg || bg != wantBg {
		t.Errorf("Tint = fg %v bg %v, want fg %v bg %v", fg, bg, wantFg, wantBg)
	}

	if th.Tint(base, "") != base || th.Tint(base, "unknown") != base {
		t.Errorf("empty or unknown class changed the style")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" RESET ", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"navy", tcell.ColorNavy, false},
		{"#fff", 0, true},
		{"chartreuse-ish", 0, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColorString(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestManagerLoadsThemeFiles(t *testing.T) {
	dir := t.TempDir()
	content := `
name = "Paper"
is_dark = false

[styles.Default]
fg = "#111111"
bg = "#fafafa"

[styles.Selected]
reverse = true
bold = true

[styles.keyword]
fg = "nonsense"
`
	if err := os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if m.Current().Name != DarkThemeName {
		t.Errorf("initial theme = %s", m.Current().Name)
	}
	if err := m.SetTheme("paper"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	paper := m.Current()
	if _, ok := paper.Styles["keyword"]; ok {
		t.Errorf("style with a bad color was kept")
	}
	_, bg, _ := paper.GetStyle(StyleSelected).Decompose()
	if bg != tcell.NewHexColor(0xfafafa) {
		t.Errorf("Selected did not inherit the Default background")
	}
	if _, ok := paper.Styles[StyleDropTarget]; !ok {
		t.Errorf("missing DropTarget style was not filled in")
	}

	want := []string{DarkThemeName, LightThemeName, "Paper"}
	got := m.ListThemes()
	if len(got) != len(want) {
		t.Fatalf("ListThemes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListThemes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSetThemeUnknown(t *testing.T) {
	m := NewManager("")
	err := m.SetTheme("missing")
	if !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("SetTheme(missing) = %v, want ErrThemeNotFound", err)
	}
	if m.Current().Name != DarkThemeName {
		t.Errorf("failed SetTheme changed the active theme")
	}
}

func TestManagerMissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	if len(m.ListThemes()) != 2 {
		t.Errorf("ListThemes() = %v, want the two built-ins", m.ListThemes())
	}
}

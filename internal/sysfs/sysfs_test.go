package sysfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestSocIDFallsBackToLegacyNode(t *testing.T) {
	root := t.TempDir()
	fs := New(root)

	if _, err := fs.SocID(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty tree, got %v", err)
	}

	writeFile(t, filepath.Join(root, "devices/system/soc/soc0/id"), "206\n")
	id, err := fs.SocID()
	if err != nil {
		t.Fatalf("SocID: %v", err)
	}
	if id != 206 {
		t.Fatalf("SocID = %d, want 206", id)
	}

	writeFile(t, filepath.Join(root, "devices/soc0/soc_id"), "318\n")
	if id, _ := fs.SocID(); id != 318 {
		t.Fatalf("soc0/soc_id should take precedence, got %d", id)
	}
}

func TestSocIDRejectsGarbage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "devices/soc0/soc_id"), "msm8916\n")
	if _, err := New(root).SocID(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestGovernorPerCPU(t *testing.T) {
	root := t.TempDir()
	writeFile(t, GovernorPath(root, 1), "interactive\n")
	fs := New(root)

	if _, err := fs.Governor(0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("offline cpu0 should report ErrNotFound, got %v", err)
	}
	governor, err := fs.Governor(1)
	if err != nil {
		t.Fatalf("Governor(1): %v", err)
	}
	if governor != "interactive" {
		t.Fatalf("Governor(1) = %q", governor)
	}
}

func TestWriteRemapsSysPrefixUnderRoot(t *testing.T) {
	root := t.TempDir()
	node := ScalingMinFreqPath(root, 0)
	writeFile(t, node, "960000\n")

	fs := New(root)
	if err := fs.Write(ScalingMinFreqPath(DefaultRoot, 0), "400000"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readFile(t, node); got != "400000" {
		t.Fatalf("node holds %q", got)
	}
}

func TestWriteMissingNodeFails(t *testing.T) {
	fs := New(t.TempDir())
	if err := fs.Write(ScalingMinFreqPath(DefaultRoot, 3), "400000"); err == nil {
		t.Fatal("expected an error writing a missing node")
	}
}

func TestPathJoin(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"/sys", "devices/system/cpu"}, "/sys/devices/system/cpu"},
		{[]string{"/sys/", "cpu0"}, "/sys/cpu0"},
		{[]string{"", "cpu0", "cpufreq"}, "cpu0/cpufreq"},
	}
	for _, tc := range cases {
		if got := pathJoin(tc.parts...); got != tc.want {
			t.Errorf("pathJoin(%q) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

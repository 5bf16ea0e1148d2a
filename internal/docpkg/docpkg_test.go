package docpkg

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeTestDocx creates a minimal container on disk.
func writeTestDocx(t *testing.T, path string) {
	t.Helper()
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	members := map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"_rels/.rels":         `<Relationships/>`,
		DocumentPath:          `<w:document xmlns:w="http://x"><w:body/></w:document>`,
	}
	for name, content := range members {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestUnpackAndPack(t *testing.T) {
	dir := t.TempDir()
	docx := filepath.Join(dir, "in.docx")
	writeTestDocx(t, docx)

	unpacked := filepath.Join(dir, "unpacked")
	if err := Unpack(docx, unpacked); err != nil {
		t.Fatalf("Unpack() error: %v", err)
	}

	docPath := filepath.Join(unpacked, filepath.FromSlash(DocumentPath))
	data, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("document.xml not extracted: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("document.xml is empty")
	}

	repacked := filepath.Join(dir, "out.docx")
	if err := Pack(unpacked, repacked); err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	r, err := zip.OpenReader(repacked)
	if err != nil {
		t.Fatalf("repacked file unreadable: %v", err)
	}
	defer r.Close()

	if len(r.File) != 3 {
		t.Fatalf("repacked container has %d members, want 3", len(r.File))
	}
	if r.File[0].Name != "[Content_Types].xml" {
		t.Errorf("first member = %s, want [Content_Types].xml", r.File[0].Name)
	}

	found := false
	for _, f := range r.File {
		if f.Name == DocumentPath {
			found = true
		}
	}
	if !found {
		t.Errorf("repacked container missing %s", DocumentPath)
	}
}

func TestUnpackRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	docx := filepath.Join(dir, "evil.docx")

	out, err := os.Create(docx)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(out)
	f, err := w.Create("../escape.txt")
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte("x"))
	w.Close()
	out.Close()

	if err := Unpack(docx, filepath.Join(dir, "dest")); err == nil {
		t.Error("Unpack() accepted a traversal member, want error")
	}
}

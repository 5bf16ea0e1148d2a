// Package docpkg unpacks and repacks the .docx zip container. The injection
// core edits word/document.xml inside an unpacked tree; this package moves
// between that tree and the packed file.
package docpkg

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DocumentPath is the body-text member inside the container.
const DocumentPath = "word/document.xml"

// Unpack extracts a .docx file into destDir, preserving member paths.
func Unpack(docxPath, destDir string) error {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", docxPath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := securePath(destDir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

// Pack zips the unpacked tree at srcDir into a .docx file at outPath.
// [Content_Types].xml goes first, matching how Office writes containers.
func Pack(srcDir, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	w := zip.NewWriter(out)

	var members []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		members = append(members, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		w.Close()
		return fmt.Errorf("walking %s: %w", srcDir, err)
	}

	// [Content_Types].xml first, then the rest in walk order.
	for i, m := range members {
		if m == "[Content_Types].xml" && i != 0 {
			members[0], members[i] = members[i], members[0]
			break
		}
	}

	for _, m := range members {
		if err := addMember(w, srcDir, m); err != nil {
			w.Close()
			return err
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", outPath, err)
	}
	return nil
}

// addMember writes one file from the unpacked tree into the archive.
func addMember(w *zip.Writer, srcDir, name string) error {
	f, err := os.Open(filepath.Join(srcDir, filepath.FromSlash(name)))
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	member, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	if _, err := io.Copy(member, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// extractFile writes one archive member to disk.
func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return nil
}

// securePath joins a member name under destDir, rejecting traversal.
func securePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive member escapes destination: %s", name)
	}
	return target, nil
}

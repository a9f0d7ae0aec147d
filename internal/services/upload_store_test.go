package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildFileHeader(t *testing.T, fileName string, contents string) *multipart.FileHeader {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("photo", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	reader := multipart.NewReader(&buffer, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["photo"][0]
}

func TestUploadStore_SaveAndRemove(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := NewUploadStore(root)
	if err != nil {
		t.Fatalf("create upload store: %v", err)
	}

	relativePath, err := store.Save(buildFileHeader(t, "belly.jpg", "not-really-a-jpeg"))
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}
	if !strings.HasPrefix(relativePath, "/uploads/") {
		t.Fatalf("expected relative URL under /uploads/, got %s", relativePath)
	}
	if !strings.HasSuffix(relativePath, ".jpg") {
		t.Fatalf("expected original extension preserved, got %s", relativePath)
	}

	storedName := strings.TrimPrefix(relativePath, "/uploads/")
	storedFile := filepath.Join(root, storedName)
	contents, err := os.ReadFile(storedFile)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(contents) != "not-really-a-jpeg" {
		t.Fatalf("stored contents mismatch: %q", contents)
	}

	if err := store.Remove(relativePath); err != nil {
		t.Fatalf("remove upload: %v", err)
	}
	if _, err := os.Stat(storedFile); !os.IsNotExist(err) {
		t.Fatalf("expected stored file gone, got %v", err)
	}

	// A second remove tolerates the missing file.
	if err := store.Remove(relativePath); err != nil {
		t.Fatalf("remove of missing file must succeed, got %v", err)
	}
}

func TestUploadStore_SaveGeneratesDistinctNames(t *testing.T) {
	t.Parallel()

	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("create upload store: %v", err)
	}

	first, err := store.Save(buildFileHeader(t, "scan.png", "a"))
	if err != nil {
		t.Fatalf("save first upload: %v", err)
	}
	second, err := store.Save(buildFileHeader(t, "scan.png", "b"))
	if err != nil {
		t.Fatalf("save second upload: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct stored names, both were %s", first)
	}
}

func TestUploadStore_RemoveRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("create upload store: %v", err)
	}

	for _, relativePath := range []string{"", "/uploads/", "/uploads/../secret", "../outside"} {
		if err := store.Remove(relativePath); err == nil {
			t.Fatalf("expected removal of %q to be rejected", relativePath)
		}
	}
}

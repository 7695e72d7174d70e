package core

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile drops content at dir/name and returns the full path.
func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", path, err)
	}
	return path
}

// writeTaggedClip builds a minimal ID3v2.3 file carrying only a TIT2 title
// frame, enough for tag.ReadFrom to resolve a title.
func writeTaggedClip(t *testing.T, dir, name, title string) string {
	t.Helper()

	body := append([]byte{0}, []byte(title)...) // 0x00 = ISO-8859-1 encoding

	frame := []byte{'T', 'I', 'T', '2'}
	frame = append(frame,
		byte(len(body)>>24), byte(len(body)>>16), byte(len(body)>>8), byte(len(body)))
	frame = append(frame, 0, 0) // frame flags
	frame = append(frame, body...)

	header := []byte{'I', 'D', '3', 3, 0, 0}
	size := len(frame) // syncsafe tag size
	header = append(header,
		byte(size>>21&0x7f), byte(size>>14&0x7f), byte(size>>7&0x7f), byte(size&0x7f))

	return writeTestFile(t, dir, name, append(header, frame...))
}

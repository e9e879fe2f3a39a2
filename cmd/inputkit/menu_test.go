package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gobeaver/inputkit"
	"github.com/gobeaver/inputkit/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegContent = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
	aviContent  = []byte{'R', 'I', 'F', 'F', 0x10, 0, 0, 0, 'A', 'V', 'I', ' ', 'L', 'I', 'S', 'T'}
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func newTestMenu(t *testing.T, input string) (*menu, *bytes.Buffer) {
	t.Helper()
	kit, err := inputkit.New(&inputkit.Config{CheckExtension: true, URLBase: "sec.upload"})
	require.NoError(t, err)

	store := upload.New(upload.Config{
		Namespace:      kit.Namespace(),
		CheckExtension: true,
		URLBase:        "sec.upload",
	})
	out := &bytes.Buffer{}
	return newMenu(store, kit, strings.NewReader(input), out), out
}

func newTestScanner(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestMenu_Exit(t *testing.T) {
	m, out := newTestMenu(t, lines("0"))
	require.NoError(t, m.run(context.Background()))
	assert.Contains(t, out.String(), "Welcome")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenu_EndOfInput(t *testing.T) {
	m, _ := newTestMenu(t, "")
	assert.NoError(t, m.run(context.Background()))
}

func TestMenu_InvalidChoice(t *testing.T) {
	m, out := newTestMenu(t, lines("9", "abc", "0"))
	require.NoError(t, m.run(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice"))
}

func TestMenu_CancelledContext(t *testing.T) {
	m, _ := newTestMenu(t, lines("0"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.run(ctx), context.Canceled)
}

func TestMenu_UploadVerifyAndLink(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, dir, "cat.jpg", jpegContent)
	bad := writeFile(t, dir, "cat.png", jpegContent)

	m, out := newTestMenu(t, lines("1", bad, img))
	require.NoError(t, m.run(context.Background()))
	assert.Contains(t, out.String(), "Invalid file contents !")
	assert.Contains(t, out.String(), "File uploaded successfully, UUID : ")

	recs, err := m.store.List("")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	id := recs[0].ID.String()

	m.in = newTestScanner(lines("2", "not-a-uuid", id, "3", id, "1", img, "0"))
	out.Reset()
	require.NoError(t, m.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Invalid UUID !")
	assert.Contains(t, text, "File "+id+" exists, kind : image.")
	assert.Contains(t, text, "Your link : sec.upload/images/")
	assert.Contains(t, text, "This file is already uploaded, UUID : "+id)
}

func TestMenu_VerifyChangedAndMissing(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, dir, "cat.jpg", jpegContent)

	m, out := newTestMenu(t, "")
	rec, err := m.store.Upload(context.Background(), img)
	require.NoError(t, err)
	id := rec.ID.String()
	unknown := m.kit.Derive([]byte("never uploaded")).String()

	require.NoError(t, os.WriteFile(img, append(append([]byte(nil), jpegContent...), 0x01), 0o600))
	m.in = newTestScanner(lines("2", id, "2", unknown, "3", unknown, "0"))
	require.NoError(t, m.run(context.Background()))
	assert.Contains(t, out.String(), "File "+id+" exists but its content has changed.")
	assert.Equal(t, 2, strings.Count(out.String(), "File "+unknown+" doesn't exist."))

	require.NoError(t, os.Remove(img))
	out.Reset()
	m.in = newTestScanner(lines("2", id, "0"))
	require.NoError(t, m.run(context.Background()))
	assert.Contains(t, out.String(), "is no longer on disk")
}

func TestMenu_List(t *testing.T) {
	dir := t.TempDir()
	m, out := newTestMenu(t, "")

	m.in = newTestScanner(lines("4", "", "0"))
	require.NoError(t, m.run(context.Background()))
	assert.Contains(t, out.String(), "No uploads.")

	_, err := m.store.Upload(context.Background(), writeFile(t, dir, "cat.jpg", jpegContent))
	require.NoError(t, err)
	_, err = m.store.Upload(context.Background(), writeFile(t, dir, "clip.avi", aviContent))
	require.NoError(t, err)

	out.Reset()
	m.in = newTestScanner(lines("4", "**/*.avi", "4", "[", "0"))
	require.NoError(t, m.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "clip.avi")
	assert.NotContains(t, text, "cat.jpg")
	assert.Contains(t, text, "Error : invalid pattern")
}

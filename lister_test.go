package listprops

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeLister(t *testing.T, store *fakeStore, resolver *fakeResolver) *Lister {
	t.Helper()
	l, err := New(
		WithStoreProvider(storeOf(store)),
		WithResolver(resolver),
		WithoutContainers(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestRunUnmatchedPatternAndFallbackRow(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.dat")

	store := &fakeStore{
		keys:   []Key{unknownKey, titleKey},
		values: map[Key]Value{titleKey: Text("Intro"), unknownKey: Int(7)},
	}
	resolver := &fakeResolver{descs: map[Key]Descriptor{
		titleKey: {DisplayName: "Title", CanonicalName: "System.Title", TypeFlags: FlagSystem | FlagViewable},
	}}
	l := newFakeLister(t, store, resolver)

	file := filepath.Join(dir, "one.dat")
	missing := filepath.Join(dir, "*.none")
	results := l.Run(context.Background(), []string{file, missing})
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Len(t, results[0].Files, 1)
	rows := results[0].Files[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "Title", rows[0].DisplayName)
	assert.Equal(t, unknownKey.String(), rows[1].DisplayName)
	assert.Equal(t, FlagsUnknown, rows[1].Flags)

	var prErr *PathResolutionError
	require.ErrorAs(t, results[1].Err, &prErr)
	assert.Empty(t, results[1].Files)

	var out bytes.Buffer
	require.NoError(t, WriteResults(&out, results, RenderConfig{}, false))

	want := file + "\n" +
		Indent + padForTest("Title:") + " Intro\n" +
		Indent + padForTest(unknownKey.String()+":") + " 7\n" +
		"\n" +
		results[1].Err.Error() + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunAllSegments(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.bin")

	store := &fakeStore{keys: []Key{titleKey}, values: map[Key]Value{titleKey: Text("x")}}
	resolver := &fakeResolver{descs: map[Key]Descriptor{
		titleKey: {DisplayName: "Title", CanonicalName: "System.Title", TypeFlags: FlagInnate | FlagViewable},
	}}
	l := newFakeLister(t, store, resolver)

	results := l.Run(context.Background(), []string{filepath.Join(dir, "*.bin")})

	var out bytes.Buffer
	require.NoError(t, WriteResults(&out, results, RenderConfig{UseBothNames: true, IncludeKeys: true, IncludeFlags: true}, false))

	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, Indent+"-I-V "+padForTest(titleKey.String())+padForTest("System.Title(Title):")+" x", lines[1])
	assert.Empty(t, lines[2])
}

func TestRunFileErrorContinues(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.bin", "b.bin")

	boom := errors.New("access denied")
	stores := StoreProviderFunc(func(path string) (PropertyStore, error) {
		if filepath.Base(path) == "a.bin" {
			return nil, &OpenError{Path: path, Op: "open", Err: boom}
		}
		return &fakeStore{keys: []Key{titleKey}, values: map[Key]Value{}}, nil
	})
	l, err := New(WithStoreProvider(stores), WithResolver(&fakeResolver{}), WithoutContainers())
	require.NoError(t, err)
	defer l.Close()

	results := l.Run(context.Background(), []string{filepath.Join(dir, "*.bin")})
	require.Len(t, results, 1)
	require.Len(t, results[0].Files, 2)
	assert.ErrorIs(t, results[0].Files[0].Err, boom)
	assert.NoError(t, results[0].Files[1].Err)
	assert.Len(t, results[0].Files[1].Rows, 1)

	var out bytes.Buffer
	require.NoError(t, WriteResults(&out, results, RenderConfig{}, false))
	assert.True(t, strings.HasPrefix(out.String(),
		filepath.Join(dir, "a.bin")+"\n"+results[0].Files[0].Err.Error()+"\n\n"+filepath.Join(dir, "b.bin")+"\n"))
}

func TestWriteResultsDetail(t *testing.T) {
	cause := errors.New("permission denied")
	results := []PathResult{{
		Pattern: "x",
		Files:   []FileResult{{Path: "x", Err: &OpenError{Path: "x", Op: "open", Err: cause}}},
	}}

	var out bytes.Buffer
	require.NoError(t, WriteResults(&out, results, RenderConfig{}, true))
	assert.Equal(t, "x\n*types.OpenError: x: open: permission denied\n"+
		Indent+"caused by: *errors.errorString: permission denied\n\n", out.String())
}

func TestListerClose(t *testing.T) {
	resolver := &fakeResolver{}
	l, err := New(WithStoreProvider(storeOf(&fakeStore{})), WithResolver(resolver))
	require.NoError(t, err)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	assert.Equal(t, 1, resolver.closed)

	fr := l.ListFile("anything")
	assert.ErrorIs(t, fr.Err, ErrClosed)
}

func TestNewBadOverlay(t *testing.T) {
	_, err := New(WithSchemaOverlay(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListDefaultStackTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	fr := l.ListFile(path)
	require.NoError(t, fr.Err)

	byName := rowsByCanonical(fr.Rows)
	assert.Equal(t, "notes.txt", byName["System.ItemNameDisplay"].Value)
	assert.Equal(t, "Name", byName["System.ItemNameDisplay"].DisplayName)
	assert.Equal(t, "SI-V", byName["System.ItemNameDisplay"].Flags)
	assert.Equal(t, "5", byName["System.Size"].Value)
	assert.Equal(t, ".txt", byName["System.FileExtension"].Value)
	assert.True(t, strings.HasPrefix(byName["System.MIMEType"].Value, "text/plain"))
	assert.NotContains(t, byName, IsomBrandName)

	for i := 1; i < len(fr.Rows); i++ {
		assert.LessOrEqual(t, CompareRows(fr.Rows[i-1], fr.Rows[i]), 0)
	}
}

func TestListDefaultStackMediaFile(t *testing.T) {
	// mvhd v0: created 2020-01-02T03:04:05Z, timescale 600, one hour.
	const created = 1577934245 + 2082844800
	mvhd := box("mvhd", []byte{0, 0, 0, 0}, u32(created, created, 600, 600*3600), make([]byte, 80))
	data := bytes.Join([][]byte{
		box("ftyp", []byte("M4A "), u32(0), []byte("isom")),
		box("moov", mvhd),
	}, nil)

	path := filepath.Join(t.TempDir(), "clip.m4a")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	fr := l.ListFile(path)
	require.NoError(t, fr.Err)

	byName := rowsByCanonical(fr.Rows)
	assert.Equal(t, "01:00:00", byName["System.Media.Duration"].Value)
	assert.Equal(t, "M4A ", byName[IsomBrandName].Value)
	assert.Equal(t, FlagsSynthetic, byName[IsomBrandName].Flags)
	assert.Equal(t, "2020-01-02T03:04:05.0000000Z", byName[IsomCreationTimeName].Value)
	assert.Equal(t, "2020-01-02T03:04:05.0000000Z", byName[IsomModificationTimeName].Value)
}

func rowsByCanonical(rows []Row) map[string]Row {
	m := make(map[string]Row, len(rows))
	for _, r := range rows {
		m[r.CanonicalName] = r
	}
	return m
}

func box(typ string, payload ...[]byte) []byte {
	body := bytes.Join(payload, nil)
	out := binary.BigEndian.AppendUint32(nil, uint32(8+len(body)))
	out = append(out, typ...)
	return append(out, body...)
}

func u32(vs ...uint32) []byte {
	var out []byte
	for _, v := range vs {
		out = binary.BigEndian.AppendUint32(out, v)
	}
	return out
}

package wordfreq

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/binary"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestExtractRankedOrderAndFilter(t *testing.T) {
	data := encodeTestMsgpack([]any{
		map[string]any{"format": "cB", "version": 1},
		[]any{"the", "Crane", "crane"},
		[]any{"slate", "x-ray", "crane"},
		[]any{},
		[]any{"think"},
	})
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/large_en.msgpack.gz": gzipBytes(t, data),
		"wordfreq/data/large_fr.msgpack.gz": gzipBytes(t, encodeTestMsgpack([]any{[]any{"le"}})),
	})

	words, err := ExtractRanked(wheelPath, "en", 10)
	if err != nil {
		t.Fatalf("ExtractRanked failed: %v", err)
	}
	want := []string{"the", "crane", "slate", "think"}
	if !slices.Equal(words, want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestExtractRankedLimit(t *testing.T) {
	data := encodeTestMsgpack([]any{
		[]any{"hello", "world", "again"},
		[]any{"more", "words"},
	})
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/large_en.msgpack": data,
	})

	words, err := ExtractRanked(wheelPath, "en", 2)
	if err != nil {
		t.Fatalf("ExtractRanked failed: %v", err)
	}
	if !slices.Equal(words, []string{"hello", "world"}) {
		t.Fatalf("unexpected words %v", words)
	}
}

func TestExtractRankedFallsBackToSmall(t *testing.T) {
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/small_en.msgpack": encodeTestMsgpack([]any{[]any{"small"}}),
	})
	words, err := ExtractRanked(wheelPath, "en", 5)
	if err != nil {
		t.Fatalf("ExtractRanked failed: %v", err)
	}
	if !slices.Equal(words, []string{"small"}) {
		t.Fatalf("unexpected words %v", words)
	}
	if _, err := ExtractRanked(wheelPath, "de", 5); err == nil {
		t.Fatalf("expected error for missing language")
	}
}

func TestMsgpackScalars(t *testing.T) {
	var buf bytes.Buffer
	writeMsgpack(&buf, []any{int64(-5), 2.5, true, nil, "hi", int64(300)})
	v, err := newMsgpackReader(&buf).value()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got, ok := v.([]any)
	if !ok || len(got) != 6 {
		t.Fatalf("unexpected value %#v", v)
	}
	if got[0] != int64(-5) || got[1] != 2.5 || got[2] != true || got[3] != nil || got[4] != "hi" || got[5] != int64(300) {
		t.Fatalf("unexpected scalars %#v", got)
	}
}

func TestPickWheel(t *testing.T) {
	files := []pypiFile{
		{URL: "u1", Filename: "wordfreq-3.1.1.tar.gz", Packagetype: "sdist"},
		{URL: "u2", Filename: "wordfreq-3.1.1-cp311-none.whl", Packagetype: "bdist_wheel"},
		{URL: "u3", Filename: "wordfreq-3.1.1-py3-none-any.whl", Packagetype: "bdist_wheel"},
	}
	got, ok := pickWheel(files)
	if !ok || got.URL != "u3" {
		t.Fatalf("expected pure wheel, got %+v", got)
	}
	got, ok = pickWheel(files[:2])
	if !ok || got.URL != "u2" {
		t.Fatalf("expected first wheel, got %+v", got)
	}
	if _, ok := pickWheel(files[:1]); ok {
		t.Fatalf("expected no wheel from sdist only")
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("wheel-bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "w.whl")
	if err := download(context.Background(), srv.URL+"/ok", dest); err != nil {
		t.Fatalf("download failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "wheel-bytes" {
		t.Fatalf("unexpected download contents %q (%v)", data, err)
	}
	if err := download(context.Background(), srv.URL+"/missing", dest+"2"); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestWriteAttribution(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAttribution(dir); err != nil {
		t.Fatalf("WriteAttribution failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ATTRIBUTION.txt")); err != nil {
		t.Fatalf("expected attribution file: %v", err)
	}
}

func writeTestWheel(t *testing.T, files map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordfreq-test.whl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wheel: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close wheel: %v", err)
	}
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func encodeTestMsgpack(value any) []byte {
	var buf bytes.Buffer
	writeMsgpack(&buf, value)
	return buf.Bytes()
}

func writeMsgpack(buf *bytes.Buffer, value any) {
	switch v := value.(type) {
	case nil:
		buf.WriteByte(0xc0)
	case bool:
		if v {
			buf.WriteByte(0xc3)
		} else {
			buf.WriteByte(0xc2)
		}
	case int:
		writeMsgpack(buf, int64(v))
	case int64:
		if v >= 0 && v <= 0x7f {
			buf.WriteByte(byte(v))
			return
		}
		buf.WriteByte(0xd3)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(v))
		buf.Write(tmp[:])
	case float64:
		buf.WriteByte(0xcb)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf.Write(tmp[:])
	case string:
		if len(v) <= 31 {
			buf.WriteByte(0xa0 | byte(len(v)))
		} else {
			buf.WriteByte(0xd9)
			buf.WriteByte(byte(len(v)))
		}
		buf.WriteString(v)
	case []any:
		if len(v) <= 15 {
			buf.WriteByte(0x90 | byte(len(v)))
		} else {
			buf.WriteByte(0xdc)
			var tmp [2]byte
			binary.BigEndian.PutUint16(tmp[:], uint16(len(v)))
			buf.Write(tmp[:])
		}
		for _, item := range v {
			writeMsgpack(buf, item)
		}
	case map[string]any:
		buf.WriteByte(0x80 | byte(len(v)))
		for k, item := range v {
			writeMsgpack(buf, k)
			writeMsgpack(buf, item)
		}
	default:
		panic("unsupported type in test msgpack encoder")
	}
}

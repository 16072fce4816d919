package shaderfs_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/spirv-reflect/errors"
	"github.com/wippyai/spirv-reflect/internal/spvtest"
	"github.com/wippyai/spirv-reflect/shaderfs"
	"github.com/wippyai/spirv-reflect/spirv"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func shader(components uint32) []byte {
	b, _ := spvtest.VertexShader("main", spvtest.Var{Location: 0, Components: components})
	return b.Bytes()
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.spv")
	writeFile(t, path, shader(3))

	m, err := shaderfs.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	counts, err := spirv.InputDescriptions(m, "")
	if err != nil {
		t.Fatalf("InputDescriptions: %v", err)
	}
	if len(counts) != 1 || counts[0] != 3 {
		t.Errorf("got %v, want [3]", counts)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := shaderfs.DecodeFile(filepath.Join(t.TempDir(), "missing.spv"))
	if !stderrors.Is(err, errors.Sentinel(errors.KindNotFound)) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist cause, got %v", err)
	}
}

func TestDecodeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.spv"), shader(2))
	writeFile(t, filepath.Join(dir, "a.spv"), shader(4))
	writeFile(t, filepath.Join(dir, "nested", "c.spv"), shader(1))
	writeFile(t, filepath.Join(dir, "bad.spv"), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not a shader"))

	results, err := shaderfs.DecodeDir(context.Background(), dir, shaderfs.Options{Workers: 2})
	if err != nil {
		t.Fatalf("DecodeDir: %v", err)
	}

	want := []string{"a.spv", "b.spv", "bad.spv", filepath.Join("nested", "c.spv")}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		rel, _ := filepath.Rel(dir, r.Path)
		if rel != want[i] {
			t.Errorf("result %d path = %s, want %s", i, rel, want[i])
		}
	}

	if results[2].Err == nil || results[2].Module != nil {
		t.Errorf("bad.spv: expected error, got %+v", results[2])
	}
	if !stderrors.Is(results[2].Err, spirv.ErrInvalidMagic) {
		t.Errorf("bad.spv: expected ErrInvalidMagic, got %v", results[2].Err)
	}
	for _, i := range []int{0, 1, 3} {
		if results[i].Err != nil || results[i].Module == nil {
			t.Errorf("%s: %v", results[i].Path, results[i].Err)
		}
		if results[i].Size == 0 {
			t.Errorf("%s: Size not recorded", results[i].Path)
		}
	}
}

func TestDecodeDirPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.vert.spv"), shader(2))
	writeFile(t, filepath.Join(dir, "a.frag.spv"), shader(2))

	results, err := shaderfs.DecodeDir(context.Background(), dir, shaderfs.Options{Pattern: "*.vert.spv"})
	if err != nil {
		t.Fatalf("DecodeDir: %v", err)
	}
	if len(results) != 1 || filepath.Base(results[0].Path) != "a.vert.spv" {
		t.Errorf("got %+v", results)
	}
}

func TestDecodeDirValidate(t *testing.T) {
	dir := t.TempDir()
	b := spvtest.New()
	b.TypeVoid()
	b.Bound = 1
	writeFile(t, filepath.Join(dir, "oob.spv"), b.Bytes())

	results, err := shaderfs.DecodeDir(context.Background(), dir, shaderfs.Options{})
	if err != nil {
		t.Fatalf("DecodeDir: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("without Validate: %v", results[0].Err)
	}

	results, err = shaderfs.DecodeDir(context.Background(), dir, shaderfs.Options{Validate: true})
	if err != nil {
		t.Fatalf("DecodeDir: %v", err)
	}
	if !stderrors.Is(results[0].Err, spirv.ErrIDOutOfBounds) {
		t.Errorf("expected ErrIDOutOfBounds, got %v", results[0].Err)
	}
}

func TestDecodeDirBadPattern(t *testing.T) {
	_, err := shaderfs.DecodeDir(context.Background(), t.TempDir(), shaderfs.Options{Pattern: "[a-"})
	if !stderrors.Is(err, errors.Sentinel(errors.KindInvalidInput)) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestDecodeDirMissing(t *testing.T) {
	_, err := shaderfs.DecodeDir(context.Background(), filepath.Join(t.TempDir(), "nope"), shaderfs.Options{})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDecodeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.spv"), shader(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := shaderfs.DecodeDir(ctx, dir, shaderfs.Options{})
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// Package shaderfs loads SPIR-V modules from disk.
package shaderfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/spirv-reflect/errors"
	"github.com/wippyai/spirv-reflect/spirv"
)

// DefaultPattern matches SPIR-V binaries by extension.
const DefaultPattern = "*.spv"

// Options configures DecodeDir.
type Options struct {
	// Pattern is matched against file base names. Empty means DefaultPattern.
	Pattern string
	// Workers bounds concurrent decodes. Zero or less means runtime.NumCPU().
	Workers int
	// Validate runs Module.Validate on every decoded module.
	Validate bool
}

// Result is the outcome of decoding one file. Exactly one of Module and Err
// is set.
type Result struct {
	Err    error
	Module *spirv.Module
	Path   string
	Size   int
}

// DecodeFile reads and decodes the module at path.
func DecodeFile(path string) (*spirv.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load(path, err)
	}
	return spirv.Decode(data)
}

// DecodeDir decodes every file under dir whose base name matches
// opts.Pattern. Files are decoded concurrently; results are ordered by path.
// A file that fails to decode is reported in its Result and does not stop
// the others. The returned error is set only when dir cannot be walked or
// ctx is cancelled.
func DecodeDir(ctx context.Context, dir string, opts Options) ([]Result, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "pattern "+pattern)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	paths, err := collect(dir, pattern)
	if err != nil {
		return nil, err
	}
	Logger().Debug("decoding directory",
		zap.String("dir", dir),
		zap.String("pattern", pattern),
		zap.Int("files", len(paths)),
		zap.Int("workers", workers))

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = decodeOne(path, opts.Validate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// collect returns matching regular files in lexical order.
func collect(dir, pattern string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Load(dir, err)
	}
	return paths, nil
}

func decodeOne(path string, validate bool) Result {
	res := Result{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = errors.Load(path, err)
		Logger().Warn("read failed", zap.String("path", path), zap.Error(err))
		return res
	}
	res.Size = len(data)

	m, err := spirv.Decode(data)
	if err == nil && validate {
		err = m.Validate()
	}
	if err != nil {
		res.Err = err
		Logger().Warn("decode failed", zap.String("path", path), zap.Error(err))
		return res
	}
	res.Module = m
	return res
}

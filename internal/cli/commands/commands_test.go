package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/conduit-lang/crudgen/internal/cli/config"
	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/generator"
)

type harness struct {
	dir    string
	config string
	logs   *observer.ObservedLogs
	opts   *globalOptions
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "crudgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("base_dir: %q\n", dir)), 0644))

	core, logs := observer.New(zapcore.InfoLevel)
	return &harness{
		dir:    dir,
		config: cfgPath,
		logs:   logs,
		opts:   &globalOptions{logger: zap.New(core)},
	}
}

func (h *harness) run(args ...string) (string, string, error) {
	cmd := newRootCommand(h.opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", h.config}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func (h *harness) path(parts ...string) string {
	return filepath.Join(append([]string{h.dir}, parts...)...)
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "crudgen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"version", "generate", "apply", "watch", "routes", "config", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"config", "verbose", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCommand(t *testing.T) {
	Version, GitCommit, BuildDate = "1.0.0-test", "abc123", "2025-01-01"
	t.Cleanup(func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" })

	h := newHarness(t)
	out, _, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "crudgen version: 1.0.0-test")
	assert.Contains(t, out, "Git commit: abc123")
	assert.Contains(t, out, "Go version: ")
}

func TestGenerateCommand(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("generate", "Product", "--columns", "id, name,cover_img,price,created_at")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ created  Product/CreateProductValidation")
	assert.Contains(t, out, "✓ created  ProductSerialization")
	assert.Contains(t, out, "+ appended 1 declaration  ProductRoutes")
	assert.Contains(t, out, "Product: 3 created, 0 skipped, 1 route declaration appended, 0 failed")

	assert.FileExists(t, h.path("app", "Http", "Requests", "ProductRequests", "StoreProductRequest.php"))
	assert.FileExists(t, h.path("app", "Http", "Requests", "ProductRequests", "UpdateProductRequest.php"))
	assert.FileExists(t, h.path("app", "Http", "Resources", "ProductResource.php"))
	assert.FileExists(t, h.path("routes", "api.php"))

	entries := h.logs.FilterMessage("artifact").All()
	require.Len(t, entries, 4)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Product", fields["entity"])
	assert.Equal(t, "create", fields["artifact"])
	assert.Equal(t, "created", fields["status"])

	out, _, err = h.run("generate", "Product", "--columns", "name,cover_img,price")
	require.NoError(t, err)
	assert.Contains(t, out, "Product: 0 created, 3 skipped, 0 route declarations appended, 0 failed")
	assert.Contains(t, out, "= no changes  ProductRoutes")
}

func TestGenerateCommandDryRun(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("generate", "Product", "--columns", "name,cover_img", "--dry-run", "--show", "--only", "serialization")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ would create  ProductSerialization")
	assert.Contains(t, out, "'cover_img' => asset($this->cover_img),")
	assert.Contains(t, out, "Product (dry run): 1 created")
	assert.NoFileExists(t, h.path("app", "Http", "Resources", "ProductResource.php"))
}

func TestGenerateCommandSoftDeleteFromConfig(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte(fmt.Sprintf("base_dir: %q\nsoft_delete_routes: true\n", h.dir)), 0644))

	_, _, err := h.run("generate", "Product", "--columns", "name", "--only", "routes")
	require.NoError(t, err)

	api, err := os.ReadFile(h.path("routes", "api.php"))
	require.NoError(t, err)
	assert.Contains(t, string(api), "Route::get('products/trashed', 'trashed');")
}

func TestGenerateCommandErrors(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("generate", "9bad", "--columns", "name")
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInvalidInput)
	assert.Contains(t, formatError(err, true), "INVALID INPUT")

	_, _, err = h.run("generate", "Product", "--columns", "Name")
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInvalidInput)

	_, _, err = h.run("generate", "Product", "--columns", "name,,price")
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInvalidInput)
	assert.Contains(t, formatError(err, true), "empty entry")

	_, _, err = h.run("generate", "Product", "--only", "serializaton")
	require.Error(t, err)
	var unknown *unknownArtifactError
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, formatError(err, true), "Did you mean: serialization?")

	_, _, err = h.run("generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity name required")

	entries, err := os.ReadDir(h.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the config file exists")
}

func TestGenerateCommandFilesystemError(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.path("routes"), []byte("not a directory"), 0644))

	out, _, err := h.run("generate", "Product", "--columns", "name")
	require.Error(t, err)
	assert.ErrorIs(t, err, emit.ErrFilesystem)
	assert.Contains(t, out, "✗ failed  ProductRoutes")
	assert.Contains(t, out, "3 created")
	assert.Contains(t, formatError(err, true), "WRITE FAILED")
}

func TestConfigErrorFormatting(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte("namespace: app\n"), 0644))

	_, _, err := h.run("generate", "Product")
	require.Error(t, err)
	assert.Contains(t, formatError(err, true), "CONFIGURATION ERROR")
}

func TestApplyCommand(t *testing.T) {
	h := newHarness(t)
	manifestPath := h.path("crudgen.manifest.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
entities:
  - name: Product
    columns: [id, name, cover_img, price]
  - name: Bad Name
    columns: [name]
  - name: Category
    columns: [name, banner_img]
    only: [serialization]
`), 0644))

	out, errOut, err := h.run("apply", manifestPath)
	require.Error(t, err)
	assert.Equal(t, "1 of 3 entities failed", err.Error())
	assert.Contains(t, errOut, "INVALID INPUT")
	assert.Contains(t, out, "Product: 3 created")
	assert.Contains(t, out, "Category: 1 created")

	assert.FileExists(t, h.path("app", "Http", "Resources", "CategoryResource.php"))
	assert.NoFileExists(t, h.path("app", "Http", "Requests", "CategoryRequests", "StoreCategoryRequest.php"))
	assert.Equal(t, 1, h.logs.FilterMessage("entity failed").Len())
}

func TestApplyCommandManifestError(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("apply", h.path("missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, formatError(err, true), "MANIFEST ERROR")
}

func TestRoutesCommand(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("generate", "Product", "--only", "routes")
	require.NoError(t, err)

	out, _, err := h.run("routes", "Product", "--soft-delete")
	require.NoError(t, err)
	assert.Contains(t, out, "ProductRoutes → "+h.path("routes", "api.php"))
	assert.Contains(t, out, "Route::get('products/trashed', 'trashed');")
	assert.Contains(t, out, "3 of 4 declarations missing. Run: crudgen generate Product --only routes --soft-delete")

	out, _, err = h.run("routes", "product")
	require.NoError(t, err)
	assert.Contains(t, out, "All declarations present.")
}

func TestConfigCommand(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("config")
	require.NoError(t, err)
	assert.Contains(t, out, h.config)
	assert.Contains(t, out, "paths.routes:")
	assert.Contains(t, out, "routes/api.php")
	assert.Contains(t, out, "(built-in)")
}

func TestCompletionCommand(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "crudgen")
}

func TestWatchManifest(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	cfg, err := config.Load(writeFile(t, dir, "crudgen.yaml", fmt.Sprintf("base_dir: %q\n", dir)))
	require.NoError(t, err)

	e := &env{cfg: cfg, logger: zap.NewNop(), out: io.Discard, errOut: io.Discard, noColor: true}
	gen, err := e.generator(false)
	require.NoError(t, err)

	manifestPath := writeFile(t, dir, "m.yaml", "entities:\n  - name: Product\n    columns: [name]\n")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.watchManifest(ctx, gen, manifestPath, 20*time.Millisecond) }()

	product := filepath.Join(dir, "app", "Http", "Resources", "ProductResource.php")
	category := filepath.Join(dir, "app", "Http", "Resources", "CategoryResource.php")
	require.Eventually(t, func() bool {
		_, err := os.Stat(product)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	updated := "entities:\n  - name: Product\n    columns: [name]\n  - name: Category\n    columns: [name]\n"
	assert.Eventually(t, func() bool {
		writeFile(t, dir, "m.yaml", updated)
		_, err := os.Stat(category)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestFormatErrorDefault(t *testing.T) {
	assert.Equal(t, "Error: boom\n", formatError(errors.New("boom"), true))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

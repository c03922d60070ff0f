package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/generator"
)

func sampleReport(dryRun bool) *generator.Report {
	return &generator.Report{
		Entity: "Product",
		DryRun: dryRun,
		Items: []generator.Item{
			{
				Kind:    artifact.CreateValidation,
				Name:    "Product/CreateProductValidation",
				Path:    "app/Http/Requests/ProductRequests/StoreProductRequest.php",
				Content: "<?php\n",
				Outcome: emit.Outcome{Status: emit.Created},
			},
			{
				Kind:    artifact.Serialization,
				Name:    "ProductSerialization",
				Path:    "app/Http/Resources/ProductResource.php",
				Outcome: emit.Outcome{Status: emit.Skipped},
			},
			{
				Kind:    artifact.Routes,
				Name:    "ProductRoutes",
				Path:    "routes/api.php",
				Outcome: emit.Outcome{Status: emit.Appended, Appended: 4},
			},
		},
	}
}

func TestStatusLine(t *testing.T) {
	r := sampleReport(false)

	assert.Equal(t,
		"✓ created  Product/CreateProductValidation → app/Http/Requests/ProductRequests/StoreProductRequest.php",
		StatusLine(r.Items[0], false, true))
	assert.Equal(t,
		"• skipped  ProductSerialization → app/Http/Resources/ProductResource.php",
		StatusLine(r.Items[1], false, true))
	assert.Equal(t,
		"+ appended 4 declarations  ProductRoutes → routes/api.php",
		StatusLine(r.Items[2], false, true))
}

func TestStatusLineFailed(t *testing.T) {
	item := generator.Item{
		Name:    "ProductRoutes",
		Path:    "routes/api.php",
		Err:     errors.New("permission denied"),
		Outcome: emit.Outcome{Status: emit.Failed},
	}
	assert.Equal(t, "✗ failed  ProductRoutes → routes/api.php (permission denied)", StatusLine(item, false, true))
}

func TestStatusLabelDryRun(t *testing.T) {
	assert.Equal(t, "would create", StatusLabel(emit.Outcome{Status: emit.Created}, true))
	assert.Equal(t, "exists, would skip", StatusLabel(emit.Outcome{Status: emit.Skipped}, true))
	assert.Equal(t, "would append 1 declaration", StatusLabel(emit.Outcome{Status: emit.Appended, Appended: 1}, true))
	assert.Equal(t, "no changes", StatusLabel(emit.Outcome{Status: emit.Unchanged}, true))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Product: 1 created, 1 skipped, 4 route declarations appended, 0 failed", Summary(sampleReport(false)))
	assert.Equal(t, "Product (dry run): 1 created, 1 skipped, 4 route declarations to append, 0 failed", Summary(sampleReport(true)))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, sampleReport(true), ReportOptions{NoColor: true, ShowContent: true})

	out := buf.String()
	assert.Contains(t, out, "✓ would create  Product/CreateProductValidation")
	assert.Contains(t, out, "<?php")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("─", 80)))
	assert.True(t, strings.HasSuffix(out, "0 failed\n"))
}

package synth

import (
	"github.com/conduit-lang/crudgen/internal/column"
	"github.com/conduit-lang/crudgen/internal/naming"
)

// LabelFor returns the attribute label of a column. Media columns lose their
// kind suffix first, so cover_img is labeled "Cover".
func LabelFor(c column.Column) string {
	return naming.Headline(c.Base())
}

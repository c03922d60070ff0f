// Package synth builds the per-column strings of a validation artifact:
// rule expressions and human-readable attribute labels.
package synth

import (
	"strconv"
	"strings"

	"github.com/conduit-lang/crudgen/internal/column"
)

// Mode selects the presence constraint of a rule.
type Mode int

const (
	// Create makes every field mandatory.
	Create Mode = iota
	// Update makes every field optional.
	Update
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// Presence returns the presence keyword for the mode.
func (m Mode) Presence() string {
	if m == Update {
		return "nullable"
	}
	return "required"
}

// Scope returns the column scope matching the mode.
func (m Mode) Scope() column.Scope {
	if m == Update {
		return column.UpdateValidation
	}
	return column.CreateValidation
}

// MaxUploadSize is the upper size bound for every media kind, in the host
// framework's size units (kilobytes).
const MaxUploadSize = 10000

type fileClause struct {
	image     bool
	mimes     []string
	mimetypes []string
}

var fileClauses = map[column.Kind]fileClause{
	column.Image: {
		image:     true,
		mimes:     []string{"png", "jpg", "jpeg", "gif"},
		mimetypes: []string{"image/jpeg", "image/png", "image/jpg", "image/gif"},
	},
	column.Video: {
		mimes:     []string{"mp4", "webm", "ogg", "mov", "wmv"},
		mimetypes: []string{"video/mp4", "video/webm", "video/ogg", "video/quicktime", "video/x-ms-wmv"},
	},
	column.Audio: {
		mimes:     []string{"mp3", "wav", "ogg", "aac"},
		mimetypes: []string{"audio/mpeg", "audio/wav", "audio/ogg", "audio/aac"},
	},
	column.Document: {
		mimes: []string{"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx"},
		mimetypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.ms-excel",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"application/vnd.ms-powerpoint",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		},
	},
}

// Rule is an ordered list of validation constraints for one column.
type Rule struct {
	Constraints []string
}

// String joins the constraints into the pipe-delimited rule expression.
func (r Rule) String() string {
	return strings.Join(r.Constraints, "|")
}

// RuleFor returns the validation rule for a column in the given mode.
// The result depends only on (column kind, mode).
func RuleFor(c column.Column, mode Mode) Rule {
	constraints := []string{mode.Presence()}

	clause, ok := fileClauses[c.Kind]
	if !ok {
		return Rule{Constraints: constraints}
	}

	constraints = append(constraints, "file")
	if clause.image {
		constraints = append(constraints, "image")
	}
	constraints = append(constraints,
		"mimes:"+strings.Join(clause.mimes, ","),
		"max:"+strconv.Itoa(MaxUploadSize),
		"mimetypes:"+strings.Join(clause.mimetypes, ","),
	)
	return Rule{Constraints: constraints}
}

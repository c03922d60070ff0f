package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"cover_img", Image},
		{"intro_vid", Video},
		{"theme_aud", Audio},
		{"report_docs", Document},
		{"report_doc", Plain},
		{"name", Plain},
		{"img", Plain},
		{"_img", Plain},
		{"image_url", Plain},
		{"cover_img_alt", Plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
			// classification is a pure function of the name
			assert.Equal(t, Classify(tt.name), Classify(tt.name))
		})
	}
}

func TestKindIsMedia(t *testing.T) {
	assert.False(t, Plain.IsMedia())
	for _, k := range []Kind{Image, Video, Audio, Document} {
		assert.True(t, k.IsMedia(), k.String())
	}
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "_img", Suffix(Image))
	assert.Equal(t, "_docs", Suffix(Document))
	assert.Equal(t, "", Suffix(Plain))
}

func TestColumnBase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cover_img", "cover"},
		{"intro_vid", "intro"},
		{"theme_aud", "theme"},
		{"annual_report_docs", "annual_report"},
		{"price", "price"},
		{"_img", "_img"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.name).Base())
		})
	}
}

func TestClassified(t *testing.T) {
	cols := Classified([]string{"name", "cover_img"})
	assert.Equal(t, []Column{{Name: "name", Kind: Plain}, {Name: "cover_img", Kind: Image}}, cols)
}

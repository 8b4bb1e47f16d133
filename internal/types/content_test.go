package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidContentType(t *testing.T) {
	assert.True(t, ValidContentType(ContentVideo))
	assert.True(t, ValidContentType(ContentDocument))
	assert.True(t, ValidContentType(ContentPDF))
	assert.True(t, ValidContentType(ContentWebsite))
	assert.False(t, ValidContentType("podcast"))
	assert.False(t, ValidContentType(""))
}

func TestNewContentItem_Validate(t *testing.T) {
	valid := NewContentItem{
		Title: "Kubernetes Fundamentals",
		Type:  ContentVideo,
		URL:   "https://example.com/k8s",
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	missingURL := valid
	missingURL.URL = ""
	assert.Error(t, missingURL.Validate())

	badType := valid
	badType.Type = "webinar"
	assert.Error(t, badType.Validate())
}

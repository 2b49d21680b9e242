package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techclub_backend/internals/features/documentations/model"
)

func sampleDocs() []model.DocumentationModel {
	return []model.DocumentationModel{
		{DocumentationCategory: "webinar", DocumentationEventTitle: "Webinar Cloud Computing", DocumentationYear: 2024},
		{DocumentationCategory: "open-class", DocumentationEventTitle: "Open Class Golang Dasar", DocumentationYear: 2024, DocumentationDescription: "Belajar goroutine dan channel"},
		{DocumentationCategory: "webinar", DocumentationEventTitle: "Webinar UI/UX", DocumentationYear: 2023},
		{DocumentationCategory: "bootcamp", DocumentationEventTitle: "Bootcamp Backend", DocumentationYear: 2023, DocumentationDescription: "Intensif dua minggu"},
	}
}

func TestFilterDocumentations_NoFilterReturnsAll(t *testing.T) {
	docs := sampleDocs()

	assert.Equal(t, docs, FilterDocumentations(docs, "", 0, ""))
	assert.Equal(t, docs, FilterDocumentations(docs, "all", 0, ""))
	assert.Equal(t, docs, FilterDocumentations(docs, "ALL", 0, ""))
}

func TestFilterDocumentations_ByCategory(t *testing.T) {
	got := FilterDocumentations(sampleDocs(), "webinar", 0, "")

	assert.Len(t, got, 2)
	assert.Equal(t, "Webinar Cloud Computing", got[0].DocumentationEventTitle)
	assert.Equal(t, "Webinar UI/UX", got[1].DocumentationEventTitle)
}

func TestFilterDocumentations_ByYear(t *testing.T) {
	got := FilterDocumentations(sampleDocs(), "", 2023, "")

	assert.Len(t, got, 2)
	for _, d := range got {
		assert.Equal(t, 2023, d.DocumentationYear)
	}
}

func TestFilterDocumentations_QueryMatchesTitleOrDescription(t *testing.T) {
	docs := sampleDocs()

	byTitle := FilterDocumentations(docs, "", 0, "GOLANG")
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "Open Class Golang Dasar", byTitle[0].DocumentationEventTitle)

	byDesc := FilterDocumentations(docs, "", 0, "goroutine")
	assert.Len(t, byDesc, 1)
	assert.Equal(t, "Open Class Golang Dasar", byDesc[0].DocumentationEventTitle)
}

func TestFilterDocumentations_Combined(t *testing.T) {
	got := FilterDocumentations(sampleDocs(), "webinar", 2024, "cloud")

	assert.Len(t, got, 1)
	assert.Equal(t, "Webinar Cloud Computing", got[0].DocumentationEventTitle)
}

func TestFilterDocumentations_NoMatchIsEmptyNonNil(t *testing.T) {
	got := FilterDocumentations(sampleDocs(), "seminar", 0, "")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDocumentations_Idempotent(t *testing.T) {
	once := FilterDocumentations(sampleDocs(), "webinar", 0, "webinar")
	twice := FilterDocumentations(once, "webinar", 0, "webinar")

	assert.Equal(t, once, twice)
}

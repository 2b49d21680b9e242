package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techclub_backend/internals/features/posters/model"
)

func TestNormalizeType(t *testing.T) {
	cases := map[string]string{
		"open-class":    "open class",
		"Open Class":    "open class",
		" OPEN_CLASS ":  "open class",
		"open -  class": "open class",
		"Webinar":       "webinar",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeType(in), "input %q", in)
	}
}

func samplePosters() []model.PosterModel {
	return []model.PosterModel{
		{PosterTitle: "Open Class September", PosterType: "Open Class"},
		{PosterTitle: "Webinar AI", PosterType: "webinar"},
		{PosterTitle: "Open Class Oktober", PosterType: "open-class"},
	}
}

func TestFilterPosters_NormalizedMatch(t *testing.T) {
	posters := samplePosters()

	for _, query := range []string{"open-class", "Open Class", " OPEN_CLASS "} {
		got := FilterPosters(posters, query)
		assert.Len(t, got, 2, "query %q", query)
		assert.Equal(t, "Open Class September", got[0].PosterTitle)
		assert.Equal(t, "Open Class Oktober", got[1].PosterTitle)
	}
}

func TestFilterPosters_EmptyOrAllReturnsAll(t *testing.T) {
	posters := samplePosters()

	assert.Equal(t, posters, FilterPosters(posters, ""))
	assert.Equal(t, posters, FilterPosters(posters, "all"))
	assert.Equal(t, posters, FilterPosters(posters, "ALL"))
}

func TestFilterPosters_NoMatchIsEmptyNonNil(t *testing.T) {
	got := FilterPosters(samplePosters(), "bootcamp")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterPosters_DoesNotMutateInput(t *testing.T) {
	posters := samplePosters()
	FilterPosters(posters, "webinar")

	assert.Equal(t, samplePosters(), posters)
}

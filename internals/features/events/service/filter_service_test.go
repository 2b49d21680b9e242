package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techclub_backend/internals/features/events/model"
)

func sampleEvents() []model.EventModel {
	return []model.EventModel{
		{EventCategory: "webinar", EventTitle: "Intro Golang", EventDescription: "Belajar dasar Go"},
		{EventCategory: "bootcamp", EventTitle: "Fullstack Bootcamp", EventDescription: "React dan Go"},
		{EventCategory: "webinar", EventTitle: "Cloud 101", EventDescription: ""},
		{EventCategory: "seminar", EventTitle: "AI di Industri", EventDescription: "Praktik golang untuk ML"},
	}
}

func TestFilterEventsAllEmptyIsIdentity(t *testing.T) {
	in := sampleEvents()
	assert.Equal(t, in, FilterEvents(in, "all", ""))
	assert.Equal(t, in, FilterEvents(in, "", ""))
}

func TestFilterEventsByCategory(t *testing.T) {
	out := FilterEvents(sampleEvents(), "webinar", "")
	assert.Len(t, out, 2)
	assert.Equal(t, "Intro Golang", out[0].EventTitle)
	assert.Equal(t, "Cloud 101", out[1].EventTitle)
}

func TestFilterEventsByQueryCaseInsensitive(t *testing.T) {
	// cocok di judul maupun deskripsi
	out := FilterEvents(sampleEvents(), "all", "GOLANG")
	assert.Len(t, out, 2)
	assert.Equal(t, "Intro Golang", out[0].EventTitle)
	assert.Equal(t, "AI di Industri", out[1].EventTitle)
}

func TestFilterEventsCategoryAndQuery(t *testing.T) {
	out := FilterEvents(sampleEvents(), "webinar", "golang")
	assert.Len(t, out, 1)
	assert.Equal(t, "Intro Golang", out[0].EventTitle)
}

func TestFilterEventsIdempotent(t *testing.T) {
	once := FilterEvents(sampleEvents(), "webinar", "go")
	twice := FilterEvents(once, "webinar", "go")
	assert.Equal(t, once, twice)
}

func TestFilterEventsNoMatch(t *testing.T) {
	out := FilterEvents(sampleEvents(), "open-class", "")
	assert.Empty(t, out)
	assert.NotNil(t, out) // list kosong, bukan nil, supaya JSON jadi []
}

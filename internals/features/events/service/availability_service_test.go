package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techclub_backend/internals/features/events/model"
)

func TestClassifyUnavailableDominates(t *testing.T) {
	// available == false selalu UNAVAILABLE, berapapun kapasitasnya
	assert.Equal(t, StatusUnavailable, Classify(false, 0, 150))
	assert.Equal(t, StatusUnavailable, Classify(false, 40, 40))
	assert.Equal(t, StatusUnavailable, Classify(false, 999, 10))
}

func TestClassifyCapacityBoundary(t *testing.T) {
	assert.Equal(t, StatusOpen, Classify(true, 32, 50))
	assert.Equal(t, StatusOpen, Classify(true, 39, 40))
	assert.Equal(t, StatusFull, Classify(true, 40, 40))
	assert.Equal(t, StatusFull, Classify(true, 41, 40))
}

func TestClassifyZeroQuota(t *testing.T) {
	// quota 0 (atau negatif) efektif selalu penuh
	assert.Equal(t, StatusFull, Classify(true, 0, 0))
	assert.Equal(t, StatusFull, Classify(true, 0, -1))
	assert.Equal(t, StatusFull, Classify(true, -5, 0))
}

func TestClassifyEventScenarios(t *testing.T) {
	open := &model.EventModel{EventQuota: 50, EventRegistered: 32, EventAvailable: true}
	assert.Equal(t, StatusOpen, ClassifyEvent(open))
	assert.Equal(t, "Tersedia", StatusLabel(ClassifyEvent(open)))

	full := &model.EventModel{EventQuota: 40, EventRegistered: 40, EventAvailable: true}
	assert.Equal(t, StatusFull, ClassifyEvent(full))
	assert.Equal(t, "Kuota Penuh", StatusLabel(ClassifyEvent(full)))

	closed := &model.EventModel{EventQuota: 150, EventRegistered: 0, EventAvailable: false}
	assert.Equal(t, StatusUnavailable, ClassifyEvent(closed))
	assert.Equal(t, "Event Belum Tersedia", StatusLabel(ClassifyEvent(closed)))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Gratis", FormatPrice("free", 0))
	assert.Equal(t, "Gratis", FormatPrice("free", 50000)) // harga hanya berarti saat paid
	assert.Equal(t, "Gratis", FormatPrice("paid", 0))
	assert.Equal(t, "Rp 500", FormatPrice("paid", 500))
	assert.Equal(t, "Rp 50.000", FormatPrice("paid", 50000))
	assert.Equal(t, "Rp 1.250.000", FormatPrice("paid", 1250000))
}

func TestRemainingQuota(t *testing.T) {
	assert.Equal(t, 18, RemainingQuota(&model.EventModel{EventQuota: 50, EventRegistered: 32}))
	assert.Equal(t, 0, RemainingQuota(&model.EventModel{EventQuota: 40, EventRegistered: 45}))
}

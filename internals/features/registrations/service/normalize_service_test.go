package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsapp(t *testing.T) {
	assert.Equal(t, "081234567890", NormalizeWhatsapp("081-234 567890abc"))
	assert.Equal(t, "6281234567890", NormalizeWhatsapp("+62 812-3456-7890"))
	assert.Equal(t, "", NormalizeWhatsapp("tidak ada angka"))
	assert.Equal(t, "", NormalizeWhatsapp(""))
}

func TestNormalizeWhatsappTruncatesTo15(t *testing.T) {
	assert.Equal(t, "123456789012345", NormalizeWhatsapp("1234567890123456789"))
	assert.Len(t, NormalizeWhatsapp("9-9-9-9-9-9-9-9-9-9-9-9-9-9-9-9-9-9"), 15)
}

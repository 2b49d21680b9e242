package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewRegistrationController(nil)
	app.Post("/api/registrations", ctrl.CreateRegistration)
	return app
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/registrations", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateRegistration_MissingFields(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"event_id": "9f1d4c2a-0b7e-4f7e-9a55-1d2c3b4a5e6f",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "whatsapp")
	assert.Contains(t, errs, "institution")
}

func TestCreateRegistration_InvalidEventID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"event_id":    "bukan-uuid",
		"name":        "Budi Santoso",
		"whatsapp":    "081234567890",
		"institution": "Universitas Telkom",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Event ID tidak valid", body["message"])
}

func TestCreateRegistration_WhatsappWithoutDigits(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"event_id":    "9f1d4c2a-0b7e-4f7e-9a55-1d2c3b4a5e6f",
		"name":        "Budi Santoso",
		"whatsapp":    "tidak-ada-angka",
		"institution": "Universitas Telkom",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "whatsapp")
}

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"can-kuruyemis-server/modules/common/store"
)

func doLogin(t *testing.T, h *Handler, username, password string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestLoginSuccess(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewHandler(st, "safak", "123654")

	rec, resp := doLogin(t, h, "safak", "123654")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.True(t, resp.Authenticated)

	// Oturum depoya yazılmış olmalı
	value, found, err := st.Get(t.Context(), store.KeyAuth)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}

func TestLoginWrongCredentials(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewHandler(st, "safak", "123654")

	rec, resp := doLogin(t, h, "safak", "yanlis")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Hatalı kullanıcı adı veya şifre!", resp.ErrorMessage)

	_, found, err := st.Get(t.Context(), store.KeyAuth)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLogoutClearsSession(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewHandler(st, "safak", "123654")

	_, _ = doLogin(t, h, "safak", "123654")

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Authenticated)
}

func TestStatusReflectsLogin(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewHandler(st, "safak", "123654")

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Authenticated)

	_, _ = doLogin(t, h, "safak", "123654")

	rec = httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Authenticated)
}

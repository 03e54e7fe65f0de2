package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/table-order-app/models"
)

func TestStartSessionOccupiesTable(t *testing.T) {
	db := setupTestDB(t, "sessionstart")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000001")
	table := seedTable(t, db, "T1")
	token := tokenFor(t, "+91-9200000001")

	sessionID, tableID := startSessionFor(t, r, token, "T1")
	assert.Equal(t, table.ID, tableID)

	var fresh models.Table
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableOccupied, fresh.Status)

	w := doRequest(t, r, http.MethodGet, "/tables/session/current", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(sessionID), dataOf(t, w)["id"])
}

func TestStartSessionUnknownTable(t *testing.T) {
	db := setupTestDB(t, "sessionnotable")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000002")
	token := tokenFor(t, "+91-9200000002")

	w := doRequest(t, r, http.MethodPost, "/tables/T99/start-session", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartSessionTableAlreadyOccupied(t *testing.T) {
	db := setupTestDB(t, "sessionoccupied")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000003")
	seedUser(t, db, "+91-9200000004")
	seedTable(t, db, "T2")

	first := tokenFor(t, "+91-9200000003")
	second := tokenFor(t, "+91-9200000004")

	startSessionFor(t, r, first, "T2")

	w := doRequest(t, r, http.MethodPost, "/tables/T2/start-session", nil, second)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sesi milik user pertama tidak terganggu, dan tidak ada sesi
	// baru yang sempat tertulis.
	var count int64
	db.Model(&models.TableSession{}).Where("is_active = ?", true).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStartSessionUserAlreadyInSession(t *testing.T) {
	db := setupTestDB(t, "sessionuserdup")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000005")
	seedTable(t, db, "T3")
	other := seedTable(t, db, "T4")
	token := tokenFor(t, "+91-9200000005")

	startSessionFor(t, r, token, "T3")

	w := doRequest(t, r, http.MethodPost, "/tables/T4/start-session", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Meja kedua tidak boleh ikut ter-flip
	var fresh models.Table
	require.NoError(t, db.First(&fresh, other.ID).Error)
	assert.Equal(t, models.TableAvailable, fresh.Status)
}

func TestEndSessionReleasesTable(t *testing.T) {
	db := setupTestDB(t, "sessionend")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000006")
	table := seedTable(t, db, "T5")
	token := tokenFor(t, "+91-9200000006")

	sessionID, _ := startSessionFor(t, r, token, "T5")

	w := doRequest(t, r, http.MethodPost, "/tables/T5/end-session", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session models.TableSession
	require.NoError(t, db.First(&session, sessionID).Error)
	assert.False(t, session.IsActive)
	require.NotNil(t, session.SessionEnd)

	var fresh models.Table
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableAvailable, fresh.Status)

	// Sesi sudah ditutup: current 404, end kedua juga 404
	w = doRequest(t, r, http.MethodGet, "/tables/session/current", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodPost, "/tables/T5/end-session", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEndSessionWrongUser(t *testing.T) {
	db := setupTestDB(t, "sessionendwrong")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000007")
	seedUser(t, db, "+91-9200000008")
	table := seedTable(t, db, "T6")

	owner := tokenFor(t, "+91-9200000007")
	intruder := tokenFor(t, "+91-9200000008")

	startSessionFor(t, r, owner, "T6")

	// Hanya pasangan (user, meja) yang persis yang boleh menutup
	w := doRequest(t, r, http.MethodPost, "/tables/T6/end-session", nil, intruder)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var fresh models.Table
	require.NoError(t, db.First(&fresh, table.ID).Error)
	assert.Equal(t, models.TableOccupied, fresh.Status)
}

func TestScanTableStartsSession(t *testing.T) {
	db := setupTestDB(t, "sessionscan")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000009")
	table := seedTable(t, db, "T7")
	token := tokenFor(t, "+91-9200000009")

	w := doRequest(t, r, http.MethodPost, "/tables/qr/T7/scan", nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(table.ID), dataOf(t, w)["table_id"])
}

func TestGetAvailableTablesFiltersStatus(t *testing.T) {
	db := setupTestDB(t, "tablesavailable")
	r := newRouter(db)

	seedUser(t, db, "+91-9200000010")
	seedTable(t, db, "T8")
	seedTable(t, db, "T9")
	token := tokenFor(t, "+91-9200000010")

	startSessionFor(t, r, token, "T8")

	w := doRequest(t, r, http.MethodGet, "/tables/available", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	tables := body["data"].([]interface{})
	require.Len(t, tables, 1)
	assert.Equal(t, "T9", tables[0].(map[string]interface{})["table_number"])
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/handler"
	"github.com/Boldmaa4421/raffle-app/internal/service"
	"github.com/Boldmaa4421/raffle-app/mocks"
)

func TestImportHandler_ImportRows(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	raffleID := uuid.New()
	summary := &domain.ImportSummary{
		RaffleID:          raffleID,
		ParsedGroups:      2,
		InsertedPurchases: 2,
		InsertedTickets:   4,
	}
	mockSvc.On("ImportRows", mock.Anything, mock.MatchedBy(func(in service.ImportInput) bool {
		return in.RaffleID == raffleID && in.SourceFile == "statement.xlsx" && len(in.Rows) == 2
	})).Return(summary, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"raffleId":   raffleID.String(),
		"sourceFile": "statement.xlsx",
		"rows": []map[string]interface{}{
			{"purchasedAt": "2025-01-05", "amount": 15000, "phone": "99019096"},
			{"purchasedAt": "2025-01-05", "amount": 5000, "phone": "88112233"},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ImportRows(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestImportHandler_ImportRows_DefaultSourceFile(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	raffleID := uuid.New()
	mockSvc.On("ImportRows", mock.Anything, mock.MatchedBy(func(in service.ImportInput) bool {
		return in.SourceFile == "manual-paste"
	})).Return(&domain.ImportSummary{}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"raffleId": raffleID.String(),
		"rows": []map[string]interface{}{
			{"purchasedAt": "2025-01-05", "amount": 5000, "phone": "99019096"},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ImportRows(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestImportHandler_ImportRows_InvalidRaffleID(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	body, _ := json.Marshal(map[string]interface{}{
		"raffleId": "not-a-uuid",
		"rows": []map[string]interface{}{
			{"purchasedAt": "2025-01-05", "amount": 5000, "phone": "99019096"},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ImportRows(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "ImportRows", mock.Anything, mock.Anything)
}

func TestImportHandler_ImportRows_EmptyImport(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	raffleID := uuid.New()
	mockSvc.On("ImportRows", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyImport)

	body, _ := json.Marshal(map[string]interface{}{
		"raffleId": raffleID.String(),
		"rows":     []map[string]interface{}{},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ImportRows(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_IMPORT", resp.Error.Code)
}

func multipartImportRequest(t *testing.T, raffleID, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("raffleId", raffleID))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake workbook bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImportHandler_ImportFile_RejectsNonXlsx(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	buf, contentType := multipartImportRequest(t, uuid.New().String(), "statement.csv")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import/file", buf)
	c.Request.Header.Set("Content-Type", contentType)

	h.ImportFile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "ImportSpreadsheet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportHandler_ImportFile(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	raffleID := uuid.New()
	mockSvc.On("ImportSpreadsheet", mock.Anything, raffleID, "statement.xlsx", mock.Anything).
		Return(&domain.ImportSummary{RaffleID: raffleID}, nil)

	buf, contentType := multipartImportRequest(t, raffleID.String(), "statement.xlsx")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import/file", buf)
	c.Request.Header.Set("Content-Type", contentType)

	h.ImportFile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestImportHandler_ImportFile_MissingFile(t *testing.T) {
	mockSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(mockSvc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("raffleId", uuid.New().String()))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/import/file", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	h.ImportFile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

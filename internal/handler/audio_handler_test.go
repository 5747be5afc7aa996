package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voxbill/internal/domain"
	"voxbill/internal/handler"
	"voxbill/internal/service"
	"voxbill/mocks"
)

func audioRouter(invoiceSvc *mocks.MockInvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/upload_audio", handler.NewAudioHandler(invoiceSvc).Upload)
	return r
}

func multipartAudio(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAudioHandler_Upload_Success(t *testing.T) {
	invoiceSvc := new(mocks.MockInvoiceService)
	invoiceSvc.On("GenerateFromAudio", mock.Anything, mock.MatchedBy(func(in service.AudioInput) bool {
		return in.FileName == "note.mp3" && string(in.Data) == "audio-bytes"
	})).Return(&service.GenerateOutput{
		Transcript: "bill Acme",
		Invoice:    &domain.InvoiceRecord{InvoiceNumber: "INV-001"},
	}, nil)

	r := audioRouter(invoiceSvc)

	body, contentType := multipartAudio(t, "audio", "note.mp3", []byte("audio-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload_audio", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	invoiceSvc.AssertExpectations(t)
}

func TestAudioHandler_Upload_LegacyFieldName(t *testing.T) {
	invoiceSvc := new(mocks.MockInvoiceService)
	invoiceSvc.On("GenerateFromAudio", mock.Anything, mock.Anything).
		Return(&service.GenerateOutput{Invoice: &domain.InvoiceRecord{}}, nil)

	r := audioRouter(invoiceSvc)

	body, contentType := multipartAudio(t, "file", "note.wav", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload_audio", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	invoiceSvc.AssertExpectations(t)
}

func TestAudioHandler_Upload_NoFile(t *testing.T) {
	r := audioRouter(new(mocks.MockInvoiceService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload_audio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "MISSING_AUDIO", resp.Error.Code)
}

func TestAudioHandler_Upload_TranscriptionFailure(t *testing.T) {
	invoiceSvc := new(mocks.MockInvoiceService)
	invoiceSvc.On("GenerateFromAudio", mock.Anything, mock.Anything).
		Return(nil, domain.ErrTranscriptionFailed)

	r := audioRouter(invoiceSvc)

	body, contentType := multipartAudio(t, "audio", "note.mp3", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload_audio", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "TRANSCRIPTION_FAILED", resp.Error.Code)
}

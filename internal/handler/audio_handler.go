package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"voxbill/internal/service"
)

// AudioHandler handles audio upload and transcription endpoints.
type AudioHandler struct {
	invoiceService service.InvoiceService
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(invoiceSvc service.InvoiceService) *AudioHandler {
	return &AudioHandler{invoiceService: invoiceSvc}
}

// Upload handles POST /api/v1/upload_audio
// @Summary Transcribe an audio recording and extract an invoice
// @Description Accepts a multipart recording under the "audio" or "file" field
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio recording (mp3, wav, ogg, m4a, webm)"
// @Success 200 {object} APIResponse{data=service.GenerateOutput} "Transcript and extracted invoice"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 502 {object} APIResponse "Transcription or extraction failed"
// @Router /upload_audio [post]
func (h *AudioHandler) Upload(c *gin.Context) {
	file, header := formAudioFile(c)
	if file == nil {
		RespondError(c, http.StatusBadRequest, "MISSING_AUDIO", "no audio file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_AUDIO", "could not read uploaded file")
		return
	}

	out, err := h.invoiceService.GenerateFromAudio(c.Request.Context(), service.AudioInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

// formAudioFile accepts the upload under either field name the frontend
// revisions used.
func formAudioFile(c *gin.Context) (multipart.File, *multipart.FileHeader) {
	for _, field := range []string{"audio", "file"} {
		if file, header, err := c.Request.FormFile(field); err == nil {
			return file, header
		}
	}
	return nil, nil
}

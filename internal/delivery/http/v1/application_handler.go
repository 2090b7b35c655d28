package v1

import (
	"mime/multipart"
	"net/http"

	"md-terceirizacao-api/internal/delivery/http/response"
	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ResumeFormField is the multipart field carrying the résumé.
const ResumeFormField = "curriculo"

// ResumeStager persists an uploaded résumé for the duration of a request.
type ResumeStager interface {
	Stage(fh *multipart.FileHeader) (*domain.UploadedFile, error)
}

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	stager        ResumeStager
}

// NewApplicationHandler registers the "trabalhe conosco" route (public, no auth required)
func NewApplicationHandler(public *gin.RouterGroup, applicationUC domain.ApplicationUsecase, stager ResumeStager) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		stager:        stager,
	}

	public.POST("/trabalheconosco", handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit Job Application
// @Description  Relays an application by email with the uploaded résumé attached.
// @Tags         application
// @Accept       multipart/form-data
// @Produce      json
// @Param        nome       formData  string  true  "Nome"
// @Param        email      formData  string  true  "Email"
// @Param        telefone   formData  string  true  "Telefone"
// @Param        curriculo  formData  file    true  "Currículo (PDF)"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /api/trabalheconosco [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req domain.ApplicationSubmission
	_ = c.ShouldBind(&req)

	// Staging happens while parsing, before validation. A missing or
	// unreadable file leaves Resume nil and validation rejects the request.
	if fh, err := c.FormFile(ResumeFormField); err == nil {
		staged, err := h.stager.Stage(fh)
		if err != nil {
			c.Error(apperror.Staging(domain.MsgSendFailed, err))
			return
		}
		req.Resume = staged
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgApplicationSent, nil)
}

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobshop/internal/domain/submission"
)

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	h.submit(c, &submission.ContactForm{})
}

// SubmitEmployer handles POST /api/employers
func (h *Handler) SubmitEmployer(c *gin.Context) {
	h.submit(c, &submission.EmployerRequirement{})
}

// SubmitResume handles POST /api/resume
func (h *Handler) SubmitResume(c *gin.Context) {
	h.submit(c, &submission.ResumeForm{})
}

func (h *Handler) submit(c *gin.Context, form submission.Form) {
	if err := c.ShouldBindJSON(form); err != nil {
		h.badRequest(c, "invalid request body", err)
		return
	}

	receipt, err := h.desk.Submit(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"talenthub/internal/errors"
	"talenthub/internal/export"
	"talenthub/internal/mapper"
	"talenthub/internal/service"
)

// CandidateHandler handles talent pool endpoints, including resume export.
type CandidateHandler struct {
	svc       service.CandidateService
	uploadDir string
}

// NewCandidateHandler creates a new candidate handler. uploadDir is where
// the exporter looks for an uploaded logo.
func NewCandidateHandler(svc service.CandidateService, uploadDir string) *CandidateHandler {
	return &CandidateHandler{svc: svc, uploadDir: uploadDir}
}

// CreateCandidate godoc
// @Summary Create candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body mapper.CandidateInput true "Candidate payload"
// @Success 201 {object} model.Candidate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /candidates [post]
func (h *CandidateHandler) CreateCandidate(c echo.Context) error {
	var in mapper.CandidateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	candidate, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, candidate)
}

// ListCandidates godoc
// @Summary List candidates
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Candidate
// @Failure 401 {object} errors.ErrorResponse
// @Router /candidates [get]
func (h *CandidateHandler) ListCandidates(c echo.Context) error {
	candidates, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, candidates)
}

// GetCandidate godoc
// @Summary Get candidate by id
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid candidate ID",
			Code:  "INVALID_UUID",
		})
	}

	candidate, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, candidate)
}

// UpdateCandidate godoc
// @Summary Update candidate (partial)
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param request body mapper.CandidatePatch true "Fields to update"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid candidate ID",
			Code:  "INVALID_UUID",
		})
	}

	var patch mapper.CandidatePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	candidate, err := h.svc.Update(c.Request().Context(), id, &patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, candidate)
}

// DeleteCandidate godoc
// @Summary Delete candidate
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid candidate ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "candidate deleted"})
}

// ExportResume godoc
// @Summary Export candidate resume as PDF
// @Tags candidates
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param template query string false "Template name (classic, modern, compact)"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /candidates/{id}/resume [get]
func (h *CandidateHandler) ExportResume(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid candidate ID",
			Code:  "INVALID_UUID",
		})
	}

	tpl, err := export.ParseTemplate(c.QueryParam("template"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	candidate, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	pdfBytes, err := export.Render(candidate, tpl, export.FindLogo(h.uploadDir))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	filename := fmt.Sprintf("%s_%s_resume.pdf", candidate.FirstName, candidate.LastName)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

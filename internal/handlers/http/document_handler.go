package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docdesk/internal/domain/errors"
	"github.com/rafabene/docdesk/internal/domain/ports"
	"github.com/rafabene/docdesk/internal/handlers/dto"
	"github.com/rafabene/docdesk/internal/handlers/middleware"
	"github.com/rafabene/docdesk/internal/services"
)

// DocumentHandler lida com requisições HTTP (JSON) relacionadas a documentos
type DocumentHandler struct {
	docService *services.DocumentService
	logger     ports.Logger
}

// NewDocumentHandler cria um novo DocumentHandler
func NewDocumentHandler(docService *services.DocumentService, logger ports.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// RegisterRoutes registra as rotas em /documents do grupo informado
func (h *DocumentHandler) RegisterRoutes(group *gin.RouterGroup) {
	docs := group.Group("/documents")
	{
		docs.GET("", h.ListDocuments)
		docs.POST("", h.CreateDocument)
		docs.GET("/:id", h.GetDocument)
		docs.PUT("/:id", h.UpdateDocument)
		docs.DELETE("/:id", h.DeleteDocument)
	}
}

// ListDocuments lista documentos ativos; ?q= filtra pelo nome
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.docService.ListDocuments(c.Request.Context(), c.Query("q"))
	if err != nil {
		middleware.Logger(c, h.logger).Error("failed to list documents", "error", err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// GetDocument busca um documento por ID
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	doc, err := h.docService.GetDocument(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrDocumentNotFound) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, errors.ErrDocumentNotFound.Error()))
			return
		}
		middleware.Logger(c, h.logger).Error("failed to get document", "id", id, "error", err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// CreateDocument cria um novo documento
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req dto.DocumentRequest
	if !h.bind(c, &req) {
		return
	}

	result := h.docService.CreateDocument(c.Request.Context(), req.ToInput())
	h.writeResult(c, result, http.StatusCreated)
}

// UpdateDocument substitui os campos de um documento
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.DocumentRequest
	if !h.bind(c, &req) {
		return
	}

	result := h.docService.UpdateDocument(c.Request.Context(), id, req.ToInput())
	h.writeResult(c, result, http.StatusOK)
}

// DeleteDocument faz soft delete de um documento
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result := h.docService.DeleteDocument(c.Request.Context(), id)
	if result.OK() {
		c.Status(http.StatusNoContent)
		return
	}
	h.writeResult(c, result, http.StatusNoContent)
}

func (h *DocumentHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, errors.ErrInvalidDocumentID.Error(), nil))
		return 0, false
	}
	return id, true
}

func (h *DocumentHandler) bind(c *gin.Context, req *dto.DocumentRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fieldErrs := dto.BindingErrors(c, err); len(fieldErrs) > 0 {
			dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, "", fieldErrs))
			return false
		}
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.validation.detail"))
		return false
	}
	return true
}

// writeResult mapeia cada variante de services.Result para um status HTTP
func (h *DocumentHandler) writeResult(c *gin.Context, result services.Result, successStatus int) {
	message := dto.ResultMessage(c, result)

	switch result.Outcome {
	case services.OutcomeSuccess:
		c.JSON(successStatus, dto.WriteResponse{ID: result.ID, Message: message})
	case services.OutcomeValidation:
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, result.Message, nil, result.Params))
	case services.OutcomeNotFound:
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, result.Message))
	case services.OutcomeDuplicateName:
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, result.Message, result.Params))
	default:
		middleware.Logger(c, h.logger).Error("document write failed", "error", result.Err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

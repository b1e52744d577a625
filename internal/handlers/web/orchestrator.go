package web

import (
	"context"
	"errors"

	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
	"github.com/rafabene/docdesk/internal/domain/ports"
	"github.com/rafabene/docdesk/internal/handlers/dto"
	"github.com/rafabene/docdesk/internal/services"
)

// Orchestrator traduz eventos da interface em chamadas ao DocumentService
type Orchestrator struct {
	docService *services.DocumentService
	logger     ports.Logger
}

// NewOrchestrator cria um novo Orchestrator
func NewOrchestrator(docService *services.DocumentService, logger ports.Logger) *Orchestrator {
	return &Orchestrator{docService: docService, logger: logger}
}

// Rows lista documentos para a tabela. Falhas do banco viram lista vazia.
func (o *Orchestrator) Rows(ctx context.Context, search string) []dto.DocumentRow {
	docs, err := o.docService.ListDocuments(ctx, search)
	if err != nil {
		o.logger.Error("failed to list documents", "search", search, "error", err)
		return []dto.DocumentRow{}
	}
	return dto.ToDocumentRows(docs)
}

// Select carrega o documento completo no formulário
func (o *Orchestrator) Select(ctx context.Context, id int64) (FormState, Notice) {
	doc, err := o.docService.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDocumentNotFound) || errors.Is(err, domainerrors.ErrInvalidDocumentID) {
			return FormState{}, Notice{Kind: NoticeError, Message: err.Error()}
		}
		o.logger.Error("failed to load document", "id", id, "error", err)
		return FormState{}, Notice{Kind: NoticeError, Message: domainerrors.ErrStorage.Error()}
	}

	form := FormState{
		EditingID: doc.ID,
		Name:      doc.Name.String(),
		Resume:    doc.Resume,
		JD:        doc.JD,
		Summary:   doc.Summary,
	}
	return form, Notice{Kind: NoticeSuccess, Message: "document.loaded", Params: map[string]interface{}{"Name": form.Name}}
}

// Submit cria ou atualiza conforme EditingID. Sucesso limpa o formulário;
// falha devolve o formulário como veio para correção.
func (o *Orchestrator) Submit(ctx context.Context, form FormState) (FormState, Notice) {
	input := services.DocumentInput{
		Name:    form.Name,
		Resume:  form.Resume,
		JD:      form.JD,
		Summary: form.Summary,
	}

	var result services.Result
	if form.IsEditing() {
		result = o.docService.UpdateDocument(ctx, form.EditingID, input)
	} else {
		result = o.docService.CreateDocument(ctx, input)
	}

	notice := noticeFor(result)
	if result.OK() {
		return FormState{}, notice
	}
	return form, notice
}

// Delete exclui o documento selecionado. O formulário é sempre limpo
// após a tentativa, inclusive quando não há seleção.
func (o *Orchestrator) Delete(ctx context.Context, form FormState) (FormState, Notice) {
	if !form.IsEditing() {
		return FormState{}, Notice{Kind: NoticeError, Message: domainerrors.ErrNoDocumentSelected.Error()}
	}

	result := o.docService.DeleteDocument(ctx, form.EditingID)
	return FormState{}, noticeFor(result)
}

func noticeFor(result services.Result) Notice {
	kind := NoticeError
	if result.OK() {
		kind = NoticeSuccess
	}
	return Notice{Kind: kind, Message: result.Message, Params: result.Params}
}

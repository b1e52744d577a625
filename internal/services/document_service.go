package services

import (
	"context"
	"errors"

	"github.com/rafabene/docdesk/internal/domain/entities"
	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
	"github.com/rafabene/docdesk/internal/domain/ports"
	"github.com/rafabene/docdesk/internal/domain/repositories"
)

// Message IDs de sucesso
const (
	MsgDocumentCreated = "document.created"
	MsgDocumentUpdated = "document.updated"
	MsgDocumentDeleted = "document.deleted"
)

// DocumentService contém a lógica de negócio para documentos
type DocumentService struct {
	docRepo  repositories.DocumentRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
	recorder ports.OperationRecorder
}

// NewDocumentService cria um novo DocumentService
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
	recorder ports.OperationRecorder,
) *DocumentService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &DocumentService{
		docRepo:  docRepo,
		uow:      uow,
		logger:   logger,
		recorder: recorder,
	}
}

// DocumentInput representa os dados editáveis de um documento
type DocumentInput struct {
	Name    string
	Resume  string
	JD      string
	Summary string
}

// ListDocuments lista documentos ativos, mais recentes primeiro
func (s *DocumentService) ListDocuments(ctx context.Context, search string) ([]*entities.Document, error) {
	docs, err := s.docRepo.List(ctx, repositories.DocumentFilters{Search: search})
	if err != nil {
		s.recorder.RecordOperation("list", string(OutcomeStorage))
		return nil, domainerrors.NewStorageError("list documents", err)
	}
	s.recorder.RecordOperation("list", string(OutcomeSuccess))
	return docs, nil
}

// GetDocument busca um documento ativo por ID
func (s *DocumentService) GetDocument(ctx context.Context, id int64) (*entities.Document, error) {
	if id <= 0 {
		return nil, domainerrors.ErrInvalidDocumentID
	}

	doc, err := s.docRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.NewStorageError("get document", err)
	}
	if doc == nil {
		return nil, domainerrors.ErrDocumentNotFound
	}
	return doc, nil
}

// CreateDocument cria um novo documento
func (s *DocumentService) CreateDocument(ctx context.Context, input DocumentInput) Result {
	doc, err := entities.NewDocument(input.Name, input.Resume, input.JD, input.Summary)
	if err != nil {
		return s.finish("create", failure(OutcomeValidation, err))
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.docRepo.Create(txCtx, doc)
	})
	if err != nil {
		return s.finish("create", s.writeFailure(doc, err))
	}

	s.logger.Info("document created", "id", doc.ID, "name", doc.Name.String())
	return s.finish("create", success(doc.ID, MsgDocumentCreated, map[string]interface{}{"Name": doc.Name.String()}))
}

// UpdateDocument substitui os campos de um documento ativo
func (s *DocumentService) UpdateDocument(ctx context.Context, id int64, input DocumentInput) Result {
	if id <= 0 {
		return s.finish("update", failure(OutcomeValidation, domainerrors.ErrInvalidDocumentID))
	}

	doc, err := entities.NewDocument(input.Name, input.Resume, input.JD, input.Summary)
	if err != nil {
		return s.finish("update", failure(OutcomeValidation, err))
	}
	doc.ID = id

	var matched bool
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		matched, err = s.docRepo.Update(txCtx, doc)
		return err
	})
	if err != nil {
		return s.finish("update", s.writeFailure(doc, err))
	}
	if !matched {
		return s.finish("update", failure(OutcomeNotFound, domainerrors.ErrDocumentNotFound))
	}

	s.logger.Info("document updated", "id", id, "name", doc.Name.String())
	return s.finish("update", success(id, MsgDocumentUpdated, map[string]interface{}{"Name": doc.Name.String()}))
}

// DeleteDocument faz soft delete de um documento ativo
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) Result {
	if id <= 0 {
		return s.finish("delete", failure(OutcomeValidation, domainerrors.ErrInvalidDocumentID))
	}

	var matched bool
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		matched, err = s.docRepo.SoftDelete(txCtx, id)
		return err
	})
	if err != nil {
		s.logger.Error("failed to delete document", "id", id, "error", err)
		return s.finish("delete", storageFailure(domainerrors.NewStorageError("delete document", err)))
	}
	if !matched {
		return s.finish("delete", failure(OutcomeNotFound, domainerrors.ErrDocumentNotFound))
	}

	s.logger.Info("document deleted", "id", id)
	return s.finish("delete", success(id, MsgDocumentDeleted, map[string]interface{}{"ID": id}))
}

// NameExists verifica se há documento ativo com o nome exato.
// É apenas informativo: a unicidade é garantida pelo índice do banco.
func (s *DocumentService) NameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	exists, err := s.docRepo.NameExists(ctx, name, excludeID)
	if err != nil {
		return false, domainerrors.NewStorageError("check document name", err)
	}
	return exists, nil
}

// writeFailure traduz erros de escrita já revertidos pelo UnitOfWork
func (s *DocumentService) writeFailure(doc *entities.Document, err error) Result {
	if errors.Is(err, domainerrors.ErrDocumentNameTaken) {
		r := failure(OutcomeDuplicateName, domainerrors.ErrDocumentNameTaken)
		r.Params = map[string]interface{}{"Name": doc.Name.String()}
		return r
	}

	s.logger.Error("failed to write document", "id", doc.ID, "error", err)
	return storageFailure(domainerrors.NewStorageError("write document", err))
}

func (s *DocumentService) finish(operation string, r Result) Result {
	s.recorder.RecordOperation(operation, string(r.Outcome))
	return r
}

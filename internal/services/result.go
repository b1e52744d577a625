package services

import domainerrors "github.com/rafabene/docdesk/internal/domain/errors"

// Outcome identifica a variante de resultado de uma operação de escrita
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeValidation    Outcome = "validation_error"
	OutcomeDuplicateName Outcome = "duplicate_name"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeStorage       Outcome = "storage_error"
)

// Result é o retorno de toda operação de escrita.
// Falhas de negócio viram variantes, nunca erros propagados.
type Result struct {
	Outcome Outcome
	Message string                 // message ID para i18n
	Params  map[string]interface{} // parâmetros de interpolação da mensagem
	ID      int64                  // ID do documento afetado, quando houver
	Err     error                  // causa original (só para log)
}

// OK indica sucesso
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

func success(id int64, message string, params map[string]interface{}) Result {
	return Result{Outcome: OutcomeSuccess, ID: id, Message: message, Params: params}
}

func failure(outcome Outcome, err error) Result {
	return Result{Outcome: outcome, Message: err.Error(), Err: err}
}

// storageFailure esconde a causa do usuário, mantendo-a em Err
func storageFailure(err error) Result {
	return Result{Outcome: OutcomeStorage, Message: domainerrors.ErrStorage.Error(), Err: err}
}

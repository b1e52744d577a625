package web

import "strings"

// NoticeKind classifica a mensagem exibida ao usuário
type NoticeKind string

const (
	NoticeNone    NoticeKind = ""
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice é uma mensagem já traduzível (message ID + parâmetros)
type Notice struct {
	Kind    NoticeKind
	Message string
	Params  map[string]interface{}
}

// FormState é o estado do formulário de uma sessão.
// EditingID > 0 indica o documento selecionado; ele viaja num campo oculto
// da página, nunca em estado global do processo.
type FormState struct {
	EditingID int64
	Name      string
	Resume    string
	JD        string
	Summary   string
}

// IsEditing indica se há um documento selecionado
func (f FormState) IsEditing() bool {
	return f.EditingID > 0
}

// HasContent indica se algum campo do formulário tem texto
func (f FormState) HasContent() bool {
	for _, v := range []string{f.Name, f.Resume, f.JD, f.Summary} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// CanDelete habilita o botão de excluir
func (f FormState) CanDelete() bool {
	return f.IsEditing()
}

// CanClear habilita o botão de limpar
func (f FormState) CanClear() bool {
	return f.IsEditing() || f.HasContent()
}

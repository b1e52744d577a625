package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docdesk/internal/handlers/dto"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const indexTemplate = "index.tmpl"

// Templates retorna os templates HTML embutidos
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// Page é o modelo da página única da interface.
// T traduz os rótulos no idioma da requisição.
type Page struct {
	Lang       string
	Search     string
	Rows       []dto.DocumentRow
	Form       FormState
	Notice     string
	NoticeKind NoticeKind
	T          func(key string) string
}

// Handler serve a interface HTML (formulário + tabela)
type Handler struct {
	orchestrator *Orchestrator
}

// NewHandler cria um novo Handler
func NewHandler(orchestrator *Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// RegisterRoutes registra templates e rotas da interface
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", h.Index)
	router.GET("/clear", h.Clear)
	router.POST("/documents", h.Submit)
	router.POST("/documents/delete", h.Delete)
}

// Index lista documentos; ?selected= carrega um documento no formulário
func (h *Handler) Index(c *gin.Context) {
	search := c.Query("q")

	var (
		form   FormState
		notice Notice
	)
	if raw := c.Query("selected"); raw != "" {
		id, _ := strconv.ParseInt(raw, 10, 64)
		form, notice = h.orchestrator.Select(c.Request.Context(), id)
	}

	h.render(c, search, form, notice)
}

// Submit cria ou atualiza o documento do formulário
func (h *Handler) Submit(c *gin.Context) {
	form, notice := h.orchestrator.Submit(c.Request.Context(), formFromRequest(c))
	h.render(c, c.PostForm("q"), form, notice)
}

// Delete exclui o documento selecionado e recarrega a lista
func (h *Handler) Delete(c *gin.Context) {
	form, notice := h.orchestrator.Delete(c.Request.Context(), formFromRequest(c))
	h.render(c, c.PostForm("q"), form, notice)
}

// Clear descarta seleção e campos, mantendo a busca
func (h *Handler) Clear(c *gin.Context) {
	target := "/"
	if q := c.Query("q"); q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) render(c *gin.Context, search string, form FormState, notice Notice) {
	page := Page{
		Lang:       dto.GetLanguage(c),
		Search:     search,
		Rows:       h.orchestrator.Rows(c.Request.Context(), search),
		Form:       form,
		NoticeKind: notice.Kind,
		T: func(key string) string {
			return dto.T(c, key)
		},
	}
	if notice.Message != "" {
		page.Notice = dto.T(c, notice.Message, notice.Params)
	}

	c.HTML(http.StatusOK, indexTemplate, page)
}

// formFromRequest lê o formulário postado; editing_id inválido vale zero
func formFromRequest(c *gin.Context) FormState {
	id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("editing_id")), 10, 64)
	if err != nil || id < 0 {
		id = 0
	}

	return FormState{
		EditingID: id,
		Name:      c.PostForm("name"),
		Resume:    c.PostForm("resume"),
		JD:        c.PostForm("jd"),
		Summary:   c.PostForm("summary"),
	}
}

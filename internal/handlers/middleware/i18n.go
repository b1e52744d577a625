package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docdesk/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// LanguageCookie guarda a escolha explícita de idioma feita na interface
	LanguageCookie = "lang"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito, gravado em cookie)
// 2. Cookie "lang"
// 3. Accept-Language header, respeitando os pesos q
// 4. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
			c.SetCookie(LanguageCookie, lang, 365*24*3600, "/", "", false, true)
		}

		if lang == "" {
			if cookieLang, err := c.Cookie(LanguageCookie); err == nil && m.i18nService.IsLanguageSupported(cookieLang) {
				lang = cookieLang
			}
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

type weightedLang struct {
	tag    string
	weight float64
}

// parseAcceptLanguage retorna o idioma suportado de maior peso
// Exemplo: "en;q=0.5,pt-BR;q=0.9" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLang
	for _, part := range strings.Split(acceptLang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, weight := part, 1.0
		if idx := strings.Index(part, ";"); idx != -1 {
			tag = strings.TrimSpace(part[:idx])
			if q, ok := strings.CutPrefix(strings.TrimSpace(part[idx+1:]), "q="); ok {
				if parsed, err := strconv.ParseFloat(q, 64); err == nil {
					weight = parsed
				}
			}
		}
		if weight <= 0 {
			continue
		}
		candidates = append(candidates, weightedLang{tag: tag, weight: weight})
	}

	// Estável: empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if m.i18nService.IsLanguageSupported(candidate.tag) {
			return candidate.tag
		}

		// Verificar variação sem região (pt-BR -> pt)
		if idx := strings.Index(candidate.tag, "-"); idx != -1 {
			if base := candidate.tag[:idx]; m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}

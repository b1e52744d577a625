package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/docdesk/internal/handlers/middleware"
	"github.com/rafabene/docdesk/internal/infrastructure/i18n"
	"github.com/rafabene/docdesk/internal/services"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.document.name_taken", map[string]interface{}{"Name": "CV"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// ResultMessage traduz a mensagem de um services.Result
func ResultMessage(c *gin.Context, r services.Result) string {
	if r.Params != nil {
		return T(c, r.Message, r.Params)
	}
	return T(c, r.Message)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "en" // Fallback
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}

package translate

import (
	"context"
	"fmt"
	"net/http"

	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/upstream"
	"golang.org/x/text/language"
)

var _ appcatalog.Translator = (*Client)(nil)

// Client colaborador de traducción de textos. Valida la etiqueta BCP 47 del
// idioma destino antes de salir a la red; reutiliza la política de reintento
// acotado del cliente upstream compartido.
type Client struct {
	client *upstream.Client
	path   string
}

// NewClient construye el colaborador. path vacío equivale a "/translate".
func NewClient(client *upstream.Client, path string) *Client {
	if path == "" {
		path = "/translate"
	}
	return &Client{client: client, path: path}
}

// Noop colaborador apagado: devuelve el texto sin traducir. Se usa cuando no
// hay endpoint de traducción configurado.
type Noop struct{}

// Translate devuelve text tal cual.
func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

type translateBody struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type translateReply struct {
	Text string `json:"text"`
}

// Translate traduce text al idioma lang.
func (c *Client) Translate(ctx context.Context, text, lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("translate: idioma inválido %q: %w", lang, err)
	}
	var reply translateReply
	body := translateBody{Text: text, Lang: tag.String()}
	if err := c.client.DoJSON(ctx, http.MethodPost, c.path, "", body, &reply); err != nil {
		return "", err
	}
	return reply.Text, nil
}

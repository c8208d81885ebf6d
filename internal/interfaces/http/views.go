package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"strings"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine motor de plantillas sobre las vistas embebidas en el binario.
// reload relee los archivos en cada render (solo development).
func NewViewEngine(reload bool) *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.Reload(reload)
	engine.AddFuncMap(map[string]interface{}{
		"dict":  dict,
		"join":  strings.Join,
		"lower": strings.ToLower,
		"pkr":   money.PKR,
		"human": entity.HumanizeEnum,
		"badge": badge,
	})
	return engine
}

// dict arma un mapa para pasar varios valores a un partial: dict "F" .Field "Err" .ErrorField.
func dict(pairs ...interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if k, ok := pairs[i].(string); ok {
			out[k] = pairs[i+1]
		}
	}
	return out
}

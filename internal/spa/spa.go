// Package spa serve os arquivos estáticos do frontend com fallback para o
// index.html, permitindo que o roteamento do lado do cliente funcione em
// qualquer rota não atendida pela API.
package spa

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Handler serve arquivos a partir de dir. Se o caminho pedido não existir
// (ou for um diretório), responde o index.html.
func Handler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// path.Clean em cima de "/" + URL evita escapar de dir via "..".
		clean := path.Clean("/" + r.URL.Path)
		target := filepath.Join(dir, filepath.FromSlash(clean))

		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			http.ServeFile(w, r, target)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}

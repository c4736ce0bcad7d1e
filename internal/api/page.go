package api

import (
	"html/template"
	"net/http"
)

// snippetLimit caps how much clause text the table shows before the
// full text moves behind the modal.
const snippetLimit = 220

type pageData struct {
	MaxUploadMiB int64
	Message      string
	Headers      []string
	Rows         []tableRow
	JSONB64      string
	ExcelB64     string
	Filename     string
}

type tableRow struct {
	Cells     []string // all columns except the trailing text column
	Snippet   string
	Full      string
	Truncated bool
}

func (d pageData) JSONHref() template.URL {
	return template.URL("data:application/json;base64," + d.JSONB64)
}

func (d pageData) ExcelHref() template.URL {
	return template.URL("data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;base64," + d.ExcelB64)
}

func tableRows(rows [][]string) []tableRow {
	out := make([]tableRow, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		text := row[len(row)-1]
		snippet, truncated := truncateText(text, snippetLimit)
		out = append(out, tableRow{
			Cells:     row[:len(row)-1],
			Snippet:   snippet,
			Full:      text,
			Truncated: truncated,
		})
	}
	return out
}

func truncateText(value string, limit int) (string, bool) {
	runes := []rune(value)
	if len(runes) <= limit {
		return value, false
	}
	return string(runes[:limit]) + "…", true
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("render page", "error", err)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Clause Extractor</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 2rem; background: #f7f7f9; color: #222; }
    h1 { margin-bottom: 1rem; }
    form { background: #fff; padding: 1.5rem; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); margin-bottom: 1.5rem; }
    .status { margin-bottom: 1rem; color: #444; }
    .downloads { display: flex; gap: 1rem; margin-bottom: 1rem; }
    .downloads a { background: #005eb8; color: #fff; padding: 0.5rem 1rem; text-decoration: none; border-radius: 4px; }
    .downloads a:hover { background: #004a91; }
    .table-wrap { overflow-x: auto; background: #fff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
    table { border-collapse: collapse; width: 100%; min-width: 60rem; }
    th, td { padding: 0.75rem; border-bottom: 1px solid #e0e0e0; vertical-align: top; text-align: left; }
    th { background: #f0f4f8; }
    .text-cell { max-width: 24rem; }
    .text-cell span { display: inline-block; white-space: pre-wrap; }
    .more-btn { margin-left: 0.5rem; background: #007a3d; border: none; color: #fff; padding: 0.25rem 0.75rem; border-radius: 4px; cursor: pointer; }
    .more-btn:hover { background: #006030; }
    .modal { position: fixed; inset: 0; background: rgba(0,0,0,0.6); display: flex; align-items: center; justify-content: center; }
    .modal.hidden { display: none; }
    .modal-content { background: #fff; padding: 1.5rem; max-width: 50rem; max-height: 80vh; overflow-y: auto; border-radius: 8px; box-shadow: 0 4px 12px rgba(0,0,0,0.3); }
    .modal-content header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
    .modal-content button { background: #005eb8; color: #fff; border: none; padding: 0.4rem 0.9rem; border-radius: 4px; cursor: pointer; }
    .modal-content button:hover { background: #004a91; }
    pre { white-space: pre-wrap; margin: 0; font-family: inherit; }
  </style>
</head>
<body>
  <h1>Standards Clause Extractor</h1>
  <form method="post" action="/" enctype="multipart/form-data">
    <label for="pdf">Select standards PDF:</label>
    <input type="file" id="pdf" name="pdf" accept="application/pdf" required>
    <button type="submit">Extract</button>
    <p class="hint">Maximum upload size: {{.MaxUploadMiB}} MiB</p>
  </form>
  {{if .Message}}<p class="status">{{.Message}}</p>{{end}}
  {{if and .JSONB64 .ExcelB64}}
  <div class="downloads">
    <a download="{{.Filename}}.json" href="{{.JSONHref}}">Download JSON</a>
    <a download="{{.Filename}}.xlsx" href="{{.ExcelHref}}">Download Excel</a>
  </div>
  {{end}}
  {{if .Rows}}
  <div class="table-wrap">
    <table>
      <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
      <tbody>
        {{range .Rows}}
        <tr>
          {{range .Cells}}<td>{{.}}</td>{{end}}
          <td class="text-cell"><span>{{.Snippet}}</span>{{if .Truncated}} <button type="button" class="more-btn" data-full="{{.Full}}">More</button>{{end}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}
  <div id="modal" class="modal hidden">
    <div class="modal-content">
      <header>
        <h2>Clause Text</h2>
        <button type="button" id="modal-close">Close</button>
      </header>
      <pre id="modal-text"></pre>
    </div>
  </div>
  <script>
    (function() {
      const modal = document.getElementById('modal');
      const modalText = document.getElementById('modal-text');
      const closeBtn = document.getElementById('modal-close');
      document.querySelectorAll('.more-btn').forEach(btn => {
        btn.addEventListener('click', () => {
          modalText.textContent = btn.dataset.full || '';
          modal.classList.remove('hidden');
        });
      });
      if (closeBtn) {
        closeBtn.addEventListener('click', () => modal.classList.add('hidden'));
      }
      modal.addEventListener('click', (event) => {
        if (event.target === modal) {
          modal.classList.add('hidden');
        }
      });
      document.addEventListener('keydown', (event) => {
        if (event.key === 'Escape') {
          modal.classList.add('hidden');
        }
      });
    })();
  </script>
</body>
</html>
`))

// Package views renders the competitor pages and the HTML fragments swapped
// into them.
package views

import "html/template"

const (
	EmptyListMessage = "No competitors being tracked yet."
	AddedLabel       = "Added!"
)

var fragments = template.Must(template.New("fragments").Parse(`
{{define "competitor-list"}}{{if not .}}<p>` + EmptyListMessage + `</p>{{else}}{{range .}}<div class="competitor-item">
    <div class="competitor-info"><span>{{.URL}}</span></div>
    <div class="actions">
        <a href="/scan-result/{{.ID}}" class="action-btn scan-btn">Scan Now</a>
        <button class="action-btn delete-btn" data-id="{{.ID}}">Delete</button>
    </div>
</div>{{end}}{{end}}{{end}}

{{define "suggestion-list"}}<ul>{{range .}}<li><span>{{.}}</span><button class="action-btn add-suggestion-btn" data-url="{{.}}">+ Add</button></li>{{end}}</ul>{{end}}

{{define "suggestion-error"}}<p style="color: red;">{{.}}</p>{{end}}

{{define "added-button"}}<button class="action-btn add-suggestion-btn" data-url="{{.}}" disabled>` + AddedLabel + `</button>{{end}}

{{define "log-line"}}{{if .Error}}<p style="color: red;">{{.Text}}</p>{{else}}<p>{{.Text}}</p>{{end}}{{end}}
`))

const pageStyle = `
    <style>
      body { font-family: system-ui, sans-serif; max-width: 760px; margin: 2rem auto; color: #1f2933; }
      .card { border: 1px solid #d9e2ec; border-radius: 8px; padding: 1rem 1.25rem; margin-bottom: 1.5rem; }
      .competitor-item { display: flex; justify-content: space-between; align-items: center; padding: .5rem 0; border-bottom: 1px solid #f0f4f8; }
      .action-btn { margin-left: .5rem; padding: .3rem .7rem; border-radius: 4px; border: 1px solid #9fb3c8; background: #fff; cursor: pointer; text-decoration: none; color: inherit; font-size: .9rem; }
      .delete-btn { border-color: #e12d39; color: #e12d39; }
      .add-suggestion-btn[disabled] { opacity: .6; cursor: default; }
      #suggestions-result li { display: flex; justify-content: space-between; padding: .3rem 0; }
      #progress-log p { font-family: ui-monospace, monospace; margin: .2rem 0; }
    </style>`

var indexPage = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Competitor Watch</title>` + pageStyle + `
  </head>
  <body>
    <h1>Competitor Watch</h1>

    <section class="card">
      <h2>Find competitors</h2>
      <form id="suggest-form">
        <input type="url" id="user-url" name="url" placeholder="https://your-store.com" />
        <button type="submit" class="action-btn">Suggest</button>
      </form>
      <p id="suggestions-loader" style="display: none;">Searching for competitors...</p>
      <div id="suggestions-result"></div>
    </section>

    <section class="card">
      <h2>Tracked competitors</h2>
      <form id="add-competitor-form">
        <input type="url" id="competitor-url" name="url" placeholder="https://competitor.com" />
        <button type="submit" class="action-btn">Add</button>
      </form>
      <div id="competitor-list">{{.}}</div>
    </section>

    <script>
      document.addEventListener('DOMContentLoaded', () => {
        const competitorList = document.getElementById('competitor-list');
        const suggestionsResult = document.getElementById('suggestions-result');
        const suggestionsLoader = document.getElementById('suggestions-loader');

        function apply(fragments) {
          if (!fragments) return;
          if (fragments.competitors !== undefined) competitorList.innerHTML = fragments.competitors;
          if (fragments.suggestions !== undefined) suggestionsResult.innerHTML = fragments.suggestions;
        }

        async function send(method, path, fields) {
          const body = new URLSearchParams(fields || {});
          const response = await fetch(path, { method: method, body: method === 'GET' ? undefined : body, cache: 'no-store' });
          if (response.status === 204 || !response.ok) return null;
          return response.json();
        }

        document.getElementById('add-competitor-form').addEventListener('submit', async (event) => {
          event.preventDefault();
          const input = document.getElementById('competitor-url');
          const url = input.value;
          input.value = '';
          apply(await send('POST', '/fragments/competitors', { url: url }));
        });

        document.getElementById('suggest-form').addEventListener('submit', async (event) => {
          event.preventDefault();
          const url = document.getElementById('user-url').value;
          if (!url.trim()) return;
          suggestionsLoader.style.display = 'block';
          suggestionsResult.innerHTML = '';
          try {
            apply(await send('POST', '/fragments/suggestions', { url: url }));
          } catch (error) {
            suggestionsResult.innerHTML = '<p style="color: red;">An error occurred.</p>';
          } finally {
            suggestionsLoader.style.display = 'none';
          }
        });

        competitorList.addEventListener('click', async (event) => {
          if (!event.target.classList.contains('delete-btn')) return;
          if (!confirm('Are you sure?')) return;
          apply(await send('POST', '/fragments/competitors/' + encodeURIComponent(event.target.dataset.id) + '/delete'));
        });

        suggestionsResult.addEventListener('click', async (event) => {
          const button = event.target;
          if (!button.classList.contains('add-suggestion-btn') || button.disabled) return;
          const url = button.dataset.url;
          button.textContent = '` + AddedLabel + `';
          button.disabled = true;
          apply(await send('POST', '/fragments/suggestions/add', { url: url }));
        });
      });
    </script>
  </body>
</html>
`))

var scanPage = template.Must(template.New("scan").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Scan: {{.URL}}</title>` + pageStyle + `
  </head>
  <body>
    <p><a href="/">&larr; Back to competitors</a></p>
    <h1>Scanning {{.URL}}</h1>

    <section class="card">
      <div id="progress-log"></div>
      <div id="report-content" style="display: none;"></div>
    </section>

    <script>
      document.addEventListener('DOMContentLoaded', () => {
        const progressLog = document.getElementById('progress-log');
        const reportContent = document.getElementById('report-content');
        const eventSource = new EventSource(window.location.pathname + '/events');

        eventSource.addEventListener('log', (event) => {
          progressLog.insertAdjacentHTML('beforeend', event.data);
        });
        eventSource.addEventListener('report', (event) => {
          progressLog.style.display = 'none';
          reportContent.innerHTML = event.data;
          reportContent.style.display = 'block';
        });
        eventSource.addEventListener('close', () => {
          eventSource.close();
        });
        eventSource.onerror = () => {
          eventSource.close();
          progressLog.insertAdjacentHTML('beforeend', {{.ConnectionLost}});
        };
      });
    </script>
  </body>
</html>
`))

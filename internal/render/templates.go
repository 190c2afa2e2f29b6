package render

const cardsTemplate = `{{if .Cards}}<div class="projects-grid">
{{range .Cards}}<div class="project-card" data-source-id="{{.SourceID}}">
  <div class="project-content">
    <h3>{{.Title}}</h3>
    {{if .Tags}}<div class="tag-chips">{{range .Tags}}<button class="tag-chip" data-tag="{{.}}">{{.}}</button>{{end}}</div>
    {{end}}{{if .Unavailable}}<p class="card-error">This project could not be loaded.</p>
    {{else}}<div class="md-preview">{{.PreviewHTML}}</div>
    <button class="btn view-full" data-source-id="{{.SourceID}}">View Full</button>
    {{end}}</div>
</div>
{{end}}</div>
{{else}}<p class="no-results">No projects found.</p>
{{end}}<div class="pagination">
  <button class="page-prev"{{if not .HasPrev}} disabled{{end}}>Previous</button>
  <span class="page-status" data-page="{{.CurrentPage}}">Page {{.CurrentPage}} of {{.TotalPages}}</span>
  <button class="page-next"{{if not .HasNext}} disabled{{end}}>Next</button>
</div>
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/gallery.css">
</head>
<body>
<main class="gallery">
  <h1>{{.Title}}</h1>
  <div class="gallery-controls">
    <input id="search" type="search" placeholder="Search projects…" autocomplete="off">
    <select id="tag-filter">
      <option value="">All tags</option>
      {{range .Tags}}<option value="{{.}}">{{.}}</option>
      {{end}}</select>
    <select id="sort-order">
      {{range .SortOrders}}<option value="{{.}}">{{.}}</option>
      {{end}}</select>
  </div>
  <div id="cards">
{{.CardsHTML}}</div>
</main>
<script src="/static/gallery.js"></script>
</body>
</html>
`

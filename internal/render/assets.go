package render

// GalleryCSS is served at /static/gallery.css.
const GalleryCSS = `body { font-family: system-ui, sans-serif; margin: 0; background: #f7f7f9; color: #1d1d21; }
.gallery { max-width: 960px; margin: 0 auto; padding: 2rem 1rem; }
.gallery-controls { display: flex; gap: 0.5rem; margin-bottom: 1.5rem; flex-wrap: wrap; }
.gallery-controls input { flex: 1; min-width: 12rem; padding: 0.5rem; }
.projects-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1rem; }
.project-card { background: #fff; border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,0.12); opacity: 0; transform: translateY(8px); transition: opacity 0.3s, transform 0.3s; }
.project-card.visible { opacity: 1; transform: none; }
.tag-chips { margin: 0.25rem 0; }
.tag-chip { border: none; background: #e5e7f0; border-radius: 999px; padding: 0.15rem 0.6rem; margin-right: 0.25rem; cursor: pointer; font-size: 0.8rem; }
.card-error { color: #a33; font-style: italic; }
.no-results { text-align: center; color: #666; padding: 3rem 0; }
.pagination { display: flex; justify-content: center; align-items: center; gap: 1rem; margin-top: 1.5rem; }
.pagination button[disabled] { opacity: 0.4; cursor: default; }
.popup-markdown { position: fixed; inset: 0; background: rgba(0,0,0,0.55); display: flex; align-items: center; justify-content: center; opacity: 0; transition: opacity 0.3s; }
.popup-markdown.open { opacity: 1; }
.popup-content { background: #fff; border-radius: 8px; max-width: 720px; max-height: 80vh; overflow-y: auto; padding: 1.5rem; transform: scale(0.95); transition: transform 0.3s; }
.popup-markdown.open .popup-content { transform: scale(1); }
.close-popup { float: right; border: none; background: none; font-size: 1.5rem; cursor: pointer; }
`

// GalleryJS is served at /static/gallery.js. It is the browser glue over
// the JSON/partials API: view-parameter controls, card affordances, the
// overlay lifecycle, and the SSE reload hook.
const GalleryJS = `(() => {
  const cards = document.getElementById('cards');
  const search = document.getElementById('search');
  const tagFilter = document.getElementById('tag-filter');
  const sortOrder = document.getElementById('sort-order');
  let page = 1;

  async function refresh() {
    const params = new URLSearchParams({ q: search.value, tag: tagFilter.value, sort: sortOrder.value, page: String(page) });
    const res = await fetch('/partials/gallery?' + params);
    if (!res.ok) { cards.innerHTML = '<p class="no-results">Could not load projects. Try again later.</p>'; return; }
    cards.innerHTML = await res.text();
    page = Number(cards.querySelector('.page-status').dataset.page || page);
    bind();
    requestAnimationFrame(() => {
      cards.querySelectorAll('.project-card').forEach(c => c.classList.add('visible'));
    });
  }

  function bind() {
    cards.querySelectorAll('.tag-chip').forEach(chip => chip.addEventListener('click', () => {
      tagFilter.value = chip.dataset.tag; page = 1; refresh();
    }));
    cards.querySelectorAll('.view-full').forEach(btn => btn.addEventListener('click', () => openFull(btn.dataset.sourceId)));
    const prev = cards.querySelector('.page-prev');
    const next = cards.querySelector('.page-next');
    if (prev) prev.addEventListener('click', () => { page -= 1; refresh(); });
    if (next) next.addEventListener('click', () => { page += 1; refresh(); });
  }

  async function openFull(sourceId) {
    const res = await fetch('/api/viewer/open', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ source_id: sourceId }),
    });
    if (!res.ok) { alert('Could not open this project.'); return; }
    const body = await res.json();
    closeOverlay(true);
    const popup = document.createElement('div');
    popup.className = 'popup-markdown';
    popup.innerHTML = '<div class="popup-content"><button class="close-popup">&times;</button><div class="markdown-content"></div></div>';
    popup.querySelector('.markdown-content').innerHTML = body.content_html;
    document.body.appendChild(popup);
    requestAnimationFrame(() => popup.classList.add('open'));
    popup.querySelector('.close-popup').addEventListener('click', () => closeOverlay());
    popup.addEventListener('click', e => { if (e.target === popup) closeOverlay(); });
  }

  function closeOverlay(immediate) {
    const popup = document.querySelector('.popup-markdown');
    if (!popup) return;
    fetch('/api/viewer/dismiss', { method: 'POST' });
    if (immediate) { popup.remove(); fetch('/api/viewer/done', { method: 'POST' }); return; }
    popup.classList.remove('open');
    setTimeout(() => { popup.remove(); fetch('/api/viewer/done', { method: 'POST' }); }, 300);
  }

  document.addEventListener('keydown', e => { if (e.key === 'Escape') closeOverlay(); });
  search.addEventListener('input', () => { page = 1; refresh(); });
  tagFilter.addEventListener('change', () => { page = 1; refresh(); });
  sortOrder.addEventListener('change', () => { page = 1; refresh(); });

  if (window.EventSource) {
    const es = new EventSource('/api/events');
    es.addEventListener('gallery.reloaded', () => refresh());
  }

  bind();
  cards.querySelectorAll('.project-card').forEach(c => c.classList.add('visible'));
})();
`

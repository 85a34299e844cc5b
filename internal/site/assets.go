package site

import (
	"net/http"
	"path"
	"strings"
	"time"
)

// cssContent holds the transitions the utility classes do not cover.
const cssContent = `html { scroll-behavior: smooth; }
body.loading main, body.loading section { opacity: 0; }
body.loaded section { opacity: 1; transition: opacity .4s ease; }

#main-nav.scrolled { background: #fff; box-shadow: 0 4px 12px rgba(15, 23, 42, .08); padding-top: .75rem; padding-bottom: .75rem; }

.reveal { opacity: 0; transform: translateY(32px); transition: opacity .8s ease, transform .8s ease; }
.reveal.active { opacity: 1; transform: none; }

#zoom-modal { opacity: 0; transition: opacity .4s ease; }
#zoom-modal.active { opacity: 1; }
#zoom-modal img { transform: scale(.95); transition: transform .4s ease; }
#zoom-modal.active img { transform: scale(1); }

.chat-turn { max-width: 85%; padding: .5rem .75rem; border-radius: .75rem; font-size: .875rem; line-height: 1.4; }
.chat-user { margin-left: auto; background: #1e3a8a; color: #fff; }
.chat-assistant { margin-right: auto; background: #f1f5f9; color: #0f172a; }
.chat-assistant p + p { margin-top: .5rem; }
.chat-turn.pending { opacity: .6; font-style: italic; }
`

// jsContent forwards browser events to the page view and applies the
// patches it answers with.
const jsContent = `(function () {
  'use strict';
  var body = document.getElementById('app-body');
  var pageId = body.getAttribute('data-page-id');
  var api = '/api/pages/' + pageId;
  var socket = null;

  function markLoaded() {
    body.classList.remove('loading');
    body.classList.add('loaded');
  }

  function apply(patch) {
    if (!patch) return;
    if (patch.lang) document.documentElement.lang = patch.lang;
    if (patch.translations) {
      document.querySelectorAll('[data-i18n]').forEach(function (el) {
        var v = patch.translations[el.getAttribute('data-i18n')];
        if (!v) return;
        if (el.tagName === 'INPUT' || el.tagName === 'TEXTAREA') el.placeholder = v;
        else el.innerText = v;
      });
    }
    (patch.changes || []).forEach(function (c) {
      var el = document.getElementById(c.id);
      if (!el) return;
      Object.keys(c.attrs || {}).forEach(function (k) {
        if (k === 'value') el.value = c.attrs[k];
        else el.setAttribute(k, c.attrs[k]);
      });
      if (c.html !== undefined && c.html !== null) el.innerHTML = c.html;
    });
    if (patch.scroll_chat) {
      var m = document.getElementById('chat-messages');
      if (m) m.scrollTop = m.scrollHeight;
    }
  }

  function send(events) {
    return fetch(api + '/events', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ events: events })
    }).then(function (r) {
      if (!r.ok) throw new Error('status ' + r.status);
      return r.json();
    }).then(function (resp) {
      apply(resp.patch);
    }).catch(function (err) {
      console.warn('page update failed', err);
      markLoaded();
    });
  }

  function snapshot() {
    var seen = {};
    var elements = [];
    document.querySelectorAll('.reveal, [data-speed]').forEach(function (el) {
      if (!el.id || seen[el.id]) return;
      seen[el.id] = true;
      elements.push({
        id: el.id,
        top: el.getBoundingClientRect().top,
        speed: parseFloat(el.getAttribute('data-speed') || '0')
      });
    });
    return { offset: window.scrollY, viewport_height: window.innerHeight, elements: elements };
  }

  var frame = null;
  window.addEventListener('scroll', function () {
    if (frame) return;
    frame = window.requestAnimationFrame(function () {
      frame = null;
      send([{ type: 'scroll', scroll: snapshot() }]);
    });
  }, { passive: true });

  function chatInput() { return document.getElementById('chat-input'); }

  function sendChat() {
    var input = chatInput();
    if (!input) return;
    var value = input.value;
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify({ type: 'send', content: value }));
    } else {
      send([{ type: 'send', value: value }]);
    }
  }

  document.addEventListener('click', function (e) {
    var el = e.target.closest('[data-action]');
    if (!el) return;
    var action = el.getAttribute('data-action');
    switch (action) {
      case 'toggle':
        e.preventDefault();
        send([{ type: 'toggle', target: el.getAttribute('data-target') }]);
        break;
      case 'close-menu':
        send([{ type: 'close_menu' }]);
        break;
      case 'zoom':
        send([{ type: 'zoom', src: el.getAttribute('data-src') }]);
        break;
      case 'zoom-close':
        if (e.target === el || el.tagName === 'BUTTON') send([{ type: 'zoom_close' }]);
        break;
      case 'send':
        sendChat();
        break;
    }
  });

  document.addEventListener('input', function (e) {
    if (e.target.id === 'chat-input') {
      send([{ type: 'input', target: 'chat-input', value: e.target.value }]);
    }
  });

  window.addEventListener('keydown', function (e) {
    if (e.key === 'Escape') {
      send([{ type: 'key', key: 'Escape' }]);
    } else if (e.key === 'Enter' && e.target.id === 'chat-input') {
      e.preventDefault();
      sendChat();
    }
  });

  function connect() {
    if (!window.WebSocket) return;
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(proto + location.host + '/ws/pages/' + pageId);
    socket.onmessage = function (msg) {
      var data;
      try { data = JSON.parse(msg.data); } catch (err) { return; }
      if (data.type === 'patch') apply(data.patch);
      else if (data.type === 'error') console.warn('chat:', data.content);
    };
    socket.onclose = function () { socket = null; };
  }

  document.addEventListener('DOMContentLoaded', function () {
    connect();
    send([{ type: 'scroll', scroll: snapshot() }]);
  });
})();
`

var assetTypes = map[string]string{
	"style.css": "text/css; charset=utf-8",
	"app.js":    "application/javascript; charset=utf-8",
}

var assetBodies = map[string]string{
	"style.css": cssContent,
	"app.js":    jsContent,
}

var assetsModified = time.Now()

// AssetHandler serves the stylesheet and the page script. Mount it with
// the prefix stripped.
func AssetHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(strings.TrimPrefix(r.URL.Path, "/"))
		body, ok := assetBodies[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", assetTypes[name])
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, name, assetsModified, strings.NewReader(body))
	})
}

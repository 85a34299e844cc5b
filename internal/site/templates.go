package site

// pageTemplate is the html/template for the single page site. Every
// translatable element carries data-i18n and is pre-filled with the text of
// the rendering language.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Dr. Romana Wass, PhD | {{t "hero.role"}}</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body id="app-body" class="loading font-sans text-slate-800" data-page-id="{{.PageID}}">
  <nav id="main-nav" class="fixed w-full z-50 transition-all duration-300 py-6">
    <div class="container mx-auto px-6 flex justify-between items-center">
      <a href="#" class="flex items-center space-x-2">
        <span class="text-2xl font-serif font-bold text-blue-900">Dr. Romana Wass<span class="text-blue-500">.</span></span>
        <span class="text-xs uppercase tracking-widest text-slate-600 hidden md:block">PhD</span>
      </a>
      <div class="hidden lg:flex items-center space-x-8">
        {{range .Nav}}<a href="{{.Href}}" class="text-sm font-medium hover:text-blue-600" data-i18n="{{.Key}}">{{t .Key}}</a>
        {{end}}
        <button id="lang-toggle" class="border border-slate-300 rounded-full px-3 py-1 text-xs font-bold" data-action="toggle" data-target="language"><span id="lang-toggle-label">{{.ToggleLabel}}</span></button>
      </div>
      <button id="mobile-menu-toggle" class="lg:hidden text-slate-900" data-action="toggle" data-target="menu" aria-label="Menu">&#9776;</button>
    </div>
  </nav>

  <div id="mobile-menu" class="fixed inset-0 z-[60] bg-white p-8 transform translate-x-full transition-transform duration-300 lg:hidden">
    <button class="absolute top-6 right-6 text-2xl" data-action="toggle" data-target="menu" aria-label="Close">&times;</button>
    <div class="flex flex-col space-y-6 mt-16">
      {{range .Nav}}<a href="{{.Href}}" class="text-2xl font-serif text-slate-800" data-action="close-menu" data-i18n="{{.Key}}">{{t .Key}}</a>
      {{end}}
      <button class="text-left text-blue-700 font-bold" data-action="toggle" data-target="language"><span id="mobile-lang-label">{{.MobileLabel}}</span></button>
    </div>
  </div>

  <section id="hero" class="relative min-h-[90vh] flex items-center pt-20 overflow-hidden bg-gradient-to-br from-slate-50 to-blue-50">
    <div id="hero-bg" class="absolute top-0 right-0 w-1/3 h-full bg-blue-100/30 -skew-x-12 hidden lg:block" data-speed="0.3"></div>
    <div class="container mx-auto px-6 grid lg:grid-cols-2 gap-12 items-center relative z-10">
      <div id="reveal-hero" class="reveal">
        <span class="inline-block px-4 py-1 rounded-full bg-blue-100 text-blue-700 text-xs font-bold uppercase tracking-wider mb-6" data-i18n="hero.role">{{t "hero.role"}}</span>
        <h1 class="text-5xl md:text-7xl font-serif font-bold text-slate-900 leading-tight mb-6">Dr. Romana <span class="text-blue-900">Wass</span>, PhD</h1>
        <p class="text-xl text-slate-600 mb-8 max-w-xl leading-relaxed" data-i18n="hero.sub">{{t "hero.sub"}}</p>
        <div class="flex flex-wrap gap-4">
          <a href="#consultation" class="bg-blue-900 text-white px-8 py-4 rounded-lg font-semibold" data-i18n="hero.cta1">{{t "hero.cta1"}}</a>
          <a href="#lectures" class="bg-white border border-slate-200 text-slate-700 px-8 py-4 rounded-lg font-semibold" data-i18n="hero.cta2">{{t "hero.cta2"}}</a>
        </div>
        <div class="mt-12 flex items-center space-x-8 text-slate-400">
          <div class="flex flex-col"><span class="text-2xl font-bold text-slate-800">10+</span><span class="text-xs uppercase tracking-widest" data-i18n="hero.stat1">{{t "hero.stat1"}}</span></div>
          <div class="w-px h-8 bg-slate-200"></div>
          <div class="flex flex-col"><span class="text-2xl font-bold text-slate-800">50+</span><span class="text-xs uppercase tracking-widest" data-i18n="hero.stat2">{{t "hero.stat2"}}</span></div>
        </div>
      </div>
      <div class="relative">
        <img src="https://picsum.photos/seed/docwass/800/1000" alt="Dr. Romana Wass" class="relative z-10 w-full rounded-2xl shadow-2xl aspect-[4/5] object-cover">
      </div>
    </div>
  </section>

  <section id="expertise" class="py-24 bg-white">
    <div id="reveal-expertise" class="reveal container mx-auto px-6 text-center mb-16">
      <span class="text-blue-600 text-xs font-bold uppercase tracking-widest" data-i18n="expertise.tag">{{t "expertise.tag"}}</span>
      <h2 class="text-3xl md:text-4xl font-serif font-bold text-blue-900 mb-4" data-i18n="expertise.title">{{t "expertise.title"}}</h2>
    </div>
    <div class="container mx-auto px-6 grid md:grid-cols-2 lg:grid-cols-4 gap-8">
      {{range $i := seq (count "expertise.items")}}
      <div id="reveal-expertise-{{$i}}" class="reveal p-8 rounded-2xl border border-slate-100 bg-slate-50">
        <h3 class="text-xl font-bold mb-3 text-slate-900" data-i18n="{{key "expertise.items" $i "title"}}">{{t (key "expertise.items" $i "title")}}</h3>
        <p class="text-slate-600 leading-relaxed text-sm" data-i18n="{{key "expertise.items" $i "desc"}}">{{t (key "expertise.items" $i "desc")}}</p>
      </div>
      {{end}}
    </div>
  </section>

  <section id="about" class="py-24 bg-slate-50">
    <div id="reveal-about" class="reveal container mx-auto px-6 grid lg:grid-cols-2 gap-16 items-center">
      <div>
        <h2 class="text-4xl font-serif font-bold text-blue-900 mb-6 italic" data-i18n="about.quote">{{t "about.quote"}}</h2>
        <p class="mb-6 text-slate-700 leading-relaxed" data-i18n="about.p1">{{t "about.p1"}}</p>
        <p class="mb-6 text-slate-700 leading-relaxed" data-i18n="about.p2">{{t "about.p2"}}</p>
        <div class="grid sm:grid-cols-2 gap-4 mt-8">
          <div class="p-4 bg-white rounded-lg shadow-sm font-medium text-sm" data-i18n="about.label1">{{t "about.label1"}}</div>
          <div class="p-4 bg-white rounded-lg shadow-sm font-medium text-sm" data-i18n="about.label2">{{t "about.label2"}}</div>
        </div>
      </div>
      <div class="relative">
        <img src="https://picsum.photos/seed/linz/1000/700" alt="JKU Linz" class="rounded-2xl shadow-lg border-4 border-white">
        <div class="absolute -bottom-8 -right-8 bg-blue-900 text-white p-8 rounded-2xl shadow-2xl hidden md:block">
          <div class="text-3xl font-bold mb-1" data-i18n="about.researchTag">{{t "about.researchTag"}}</div>
          <div class="text-sm opacity-80" data-i18n="about.researchSub">{{t "about.researchSub"}}</div>
        </div>
      </div>
    </div>
  </section>

  <section id="science" class="py-24 bg-white">
    <div id="reveal-science" class="reveal container mx-auto px-6">
      <h2 class="text-4xl font-serif font-bold text-blue-900 mb-4" data-i18n="science.title">{{t "science.title"}}</h2>
      <p class="text-slate-600 max-w-lg mb-12" data-i18n="science.sub">{{t "science.sub"}}</p>
      <div class="grid lg:grid-cols-3 gap-8">
        <div class="lg:col-span-2 space-y-4">
          {{range .Publications}}
          <div class="p-6 border border-slate-100 rounded-xl flex items-start gap-4">
            <div class="text-blue-600 font-bold">{{.Year}}</div>
            <div><h4 class="font-bold text-slate-900">{{.Title}}</h4><p class="text-sm text-slate-500 italic">{{.Journal}}</p></div>
          </div>
          {{end}}
        </div>
        <div class="bg-blue-900 text-white p-8 rounded-2xl">
          <h3 class="text-2xl font-bold mb-4" data-i18n="science.habTitle">{{t "science.habTitle"}}</h3>
          <p class="text-blue-100 mb-6 text-sm leading-relaxed" data-i18n="science.habDesc">{{t "science.habDesc"}}</p>
          <ul class="space-y-3 text-xs">
            <li data-i18n="science.habItem1">{{t "science.habItem1"}}</li>
            <li data-i18n="science.habItem2">{{t "science.habItem2"}}</li>
          </ul>
        </div>
      </div>
    </div>
  </section>

  <section id="lectures" class="py-24 bg-slate-900 text-white overflow-hidden">
    <div class="container mx-auto px-6">
      <span class="text-blue-300 text-xs font-bold uppercase tracking-widest" data-i18n="lectures.lectureTag">{{t "lectures.lectureTag"}}</span>
      <div class="grid md:grid-cols-3 gap-8 mt-8">
        {{range $i, $l := .Lectures}}
        <div id="reveal-lecture-{{$i}}" class="reveal group relative rounded-2xl overflow-hidden aspect-video shadow-2xl cursor-zoom-in" data-action="zoom" data-src="{{$l.Image}}">
          <img src="{{$l.Image}}" alt="{{$l.Title}}" class="w-full h-full object-cover opacity-60">
          <div class="absolute inset-0 p-6 flex flex-col justify-end">
            <span class="text-xs uppercase tracking-widest text-blue-300">{{$l.Type}} | {{$l.Date}}</span>
            <h3 class="text-lg font-bold">{{$l.Title}}</h3>
            <p class="text-sm text-slate-300">{{$l.Event}}</p>
          </div>
        </div>
        {{end}}
      </div>
    </div>
  </section>

  <section id="media" class="py-24 bg-white">
    <div id="reveal-media" class="reveal container mx-auto px-6">
      <span class="text-blue-600 text-xs font-bold uppercase tracking-widest" data-i18n="lectures.mediaTag">{{t "lectures.mediaTag"}}</span>
      <h2 class="text-4xl font-serif font-bold text-blue-900 mb-12" data-i18n="lectures.mediaTitle">{{t "lectures.mediaTitle"}}</h2>
      <div class="grid md:grid-cols-3 gap-8">
        {{range .Media}}
        <a href="{{.Link}}" class="block p-6 border border-slate-100 rounded-xl hover:shadow-md">
          <span class="text-xs uppercase tracking-widest text-slate-400">{{.Type}} | {{.Platform}} | {{.Date}}</span>
          <h3 class="font-bold text-slate-900 mt-2">{{.Title}}</h3>
          <span class="text-blue-600 text-sm font-bold" data-i18n="lectures.mediaCta">{{t "lectures.mediaCta"}}</span>
        </a>
        {{end}}
      </div>
    </div>
  </section>

  <section id="consultation" class="py-24 bg-slate-50">
    <div id="reveal-consultation" class="reveal container mx-auto px-6 max-w-4xl bg-white rounded-3xl shadow-2xl p-12">
      <span class="text-blue-600 text-xs font-bold uppercase tracking-widest" data-i18n="consultation.tag">{{t "consultation.tag"}}</span>
      <h2 class="text-4xl font-serif font-bold text-blue-900 mb-6" data-i18n="consultation.title">{{t "consultation.title"}}</h2>
      <p class="text-slate-600 mb-6" data-i18n="consultation.desc">{{t "consultation.desc"}}</p>
      <ul class="space-y-2 mb-8 text-sm font-medium">
        <li data-i18n="consultation.item1">{{t "consultation.item1"}}</li>
        <li data-i18n="consultation.item2">{{t "consultation.item2"}}</li>
        <li data-i18n="consultation.item3">{{t "consultation.item3"}}</li>
      </ul>
      <a href="#contact" class="bg-blue-900 text-white px-8 py-4 rounded-lg font-semibold" data-i18n="consultation.cta">{{t "consultation.cta"}}</a>
      <p class="mt-8 italic text-slate-500" data-i18n="consultation.quote">{{t "consultation.quote"}}</p>
    </div>
  </section>

  <section id="links" class="py-16 bg-white">
    <div class="container mx-auto px-6">
      <h2 class="text-2xl font-serif font-bold text-blue-900 mb-8" data-i18n="links.title">{{t "links.title"}}</h2>
      <div class="grid md:grid-cols-5 gap-4">
        {{range .Links}}<a href="{{.URL}}" target="_blank" rel="noopener" class="p-4 border border-slate-100 rounded-xl" title="{{.Description}}"><span class="font-bold">{{.Name}}</span><span class="block text-xs text-slate-500">{{.Description}}</span></a>
        {{end}}
      </div>
    </div>
  </section>

  <section id="contact" class="py-24 bg-slate-50">
    <div id="reveal-contact" class="reveal container mx-auto px-6 grid lg:grid-cols-2 gap-16">
      <div>
        <span class="text-blue-600 text-xs font-bold uppercase tracking-widest" data-i18n="contact.tag">{{t "contact.tag"}}</span>
        <h2 class="text-4xl font-serif font-bold text-blue-900 mb-6" data-i18n="contact.title">{{t "contact.title"}}</h2>
        <p class="text-slate-600 mb-8" data-i18n="contact.desc">{{t "contact.desc"}}</p>
        <h4 class="font-bold" data-i18n="contact.office">{{t "contact.office"}}</h4>
        <p class="text-sm text-slate-500" data-i18n="contact.officeAddress">{{t "contact.officeAddress"}}</p>
      </div>
      <form id="contact-form" method="post" action="/contact" class="bg-white p-8 rounded-2xl shadow-xl space-y-4">
        {{if eq .Contact "sent"}}<p id="contact-status" class="text-green-700" data-i18n="contact.sent">{{t "contact.sent"}}</p>{{end}}
        {{if eq .Contact "failed"}}<p id="contact-status" class="text-red-700" data-i18n="contact.failed">{{t "contact.failed"}}</p>{{end}}
        <input type="hidden" name="lang" value="{{.Lang}}">
        <label class="block text-xs font-bold uppercase" for="contact-name" data-i18n="contact.labelName">{{t "contact.labelName"}}</label>
        <input id="contact-name" name="name" required maxlength="200" class="w-full border rounded-lg p-3" data-i18n="contact.placeholderName" placeholder="{{t "contact.placeholderName"}}">
        <label class="block text-xs font-bold uppercase" for="contact-email" data-i18n="contact.labelEmail">{{t "contact.labelEmail"}}</label>
        <input id="contact-email" name="email" type="email" required class="w-full border rounded-lg p-3" data-i18n="contact.placeholderEmail" placeholder="{{t "contact.placeholderEmail"}}">
        <label class="block text-xs font-bold uppercase" for="contact-subject" data-i18n="contact.labelSubject">{{t "contact.labelSubject"}}</label>
        <select id="contact-subject" name="subject" class="w-full border rounded-lg p-3">
          {{range $i := seq (count "contact.subjects")}}<option value="{{$i}}" data-i18n="{{key "contact.subjects" $i}}">{{t (key "contact.subjects" $i)}}</option>
          {{end}}
        </select>
        <label class="block text-xs font-bold uppercase" for="contact-message" data-i18n="contact.labelMessage">{{t "contact.labelMessage"}}</label>
        <textarea id="contact-message" name="message" rows="5" required maxlength="5000" class="w-full border rounded-lg p-3" data-i18n="contact.placeholderMessage" placeholder="{{t "contact.placeholderMessage"}}"></textarea>
        <button type="submit" class="w-full bg-blue-900 text-white py-4 rounded-lg font-semibold" data-i18n="contact.cta">{{t "contact.cta"}}</button>
      </form>
    </div>
  </section>

  <footer class="py-12 bg-slate-900 text-slate-400 text-sm">
    <div class="container mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-4">
      <div><span class="text-white font-serif font-bold">Dr. Romana Wass</span> | <span data-i18n="footer.tag">{{t "footer.tag"}}</span></div>
      <div>&copy; {{.Year}} <span data-i18n="footer.rights">{{t "footer.rights"}}</span></div>
      <button class="underline" data-action="toggle" data-target="modal" data-i18n="footer.impressum">{{t "footer.impressum"}}</button>
    </div>
  </footer>

  <div id="modal-overlay" class="hidden fixed inset-0 z-[70] bg-slate-900/60 backdrop-blur-sm flex items-center justify-center p-6">
    <div class="bg-white w-full max-w-2xl max-h-[80vh] overflow-y-auto rounded-2xl shadow-2xl p-10 relative">
      <h2 class="text-3xl font-serif font-bold text-blue-900 mb-8" data-i18n="impressum.title">{{t "impressum.title"}}</h2>
      <div class="space-y-6 text-sm text-slate-700">
        <div><h4 class="font-bold" data-i18n="impressum.ownerTitle">{{t "impressum.ownerTitle"}}</h4><p data-i18n="impressum.owner">{{t "impressum.owner"}}</p></div>
        <div><h4 class="font-bold" data-i18n="impressum.purposeTitle">{{t "impressum.purposeTitle"}}</h4><p data-i18n="impressum.purpose">{{t "impressum.purpose"}}</p></div>
        <div><h4 class="font-bold" data-i18n="impressum.chamberTitle">{{t "impressum.chamberTitle"}}</h4><p data-i18n="impressum.chamber">{{t "impressum.chamber"}}</p></div>
        <div><h4 class="font-bold" data-i18n="impressum.professionTitle">{{t "impressum.professionTitle"}}</h4><p data-i18n="impressum.profession">{{t "impressum.profession"}}</p></div>
        <div><h4 class="font-bold" data-i18n="impressum.disclaimerTitle">{{t "impressum.disclaimerTitle"}}</h4><p data-i18n="impressum.disclaimer">{{t "impressum.disclaimer"}}</p></div>
        <div><h4 class="font-bold" data-i18n="impressum.privacyTitle">{{t "impressum.privacyTitle"}}</h4><p data-i18n="impressum.privacy">{{t "impressum.privacy"}}</p></div>
      </div>
      <button class="mt-8 bg-blue-900 text-white px-6 py-3 rounded-lg" data-action="toggle" data-target="modal" data-i18n="impressum.close">{{t "impressum.close"}}</button>
    </div>
  </div>

  <div id="zoom-modal" class="hidden fixed inset-0 z-[80] bg-black/90 flex items-center justify-center p-6" data-action="zoom-close">
    <img id="zoom-img" src="" alt="" class="max-w-full max-h-full rounded-lg shadow-2xl">
    <button class="absolute top-6 right-6 text-white text-sm" data-action="zoom-close" data-i18n="zoom.close">{{t "zoom.close"}}</button>
  </div>

  {{if .ChatEnabled}}
  <button id="chat-toggle" class="fixed bottom-6 right-6 z-[65] bg-blue-900 text-white px-5 py-3 rounded-full shadow-2xl" data-action="toggle" data-target="chat" data-i18n="chat.open">{{t "chat.open"}}</button>
  <div id="chat-panel" class="hidden fixed bottom-24 right-6 z-[65] w-[22rem] max-w-[calc(100vw-3rem)] bg-white rounded-2xl shadow-2xl flex flex-col">
    <div class="p-4 border-b flex justify-between items-center">
      <h3 class="font-bold text-blue-900" data-i18n="chat.title">{{t "chat.title"}}</h3>
      <button class="text-xs text-slate-500" data-action="toggle" data-target="chat" data-i18n="chat.close">{{t "chat.close"}}</button>
    </div>
    <p class="px-4 pt-3 text-xs text-slate-500" data-i18n="chat.intro">{{t "chat.intro"}}</p>
    <div id="chat-messages" class="p-4 space-y-3 overflow-y-auto max-h-80"></div>
    <div class="p-4 border-t flex gap-2">
      <input id="chat-input" class="flex-1 border rounded-lg p-2 text-sm" autocomplete="off" data-i18n="chat.placeholder" placeholder="{{t "chat.placeholder"}}">
      <button id="chat-send" class="bg-blue-900 text-white px-4 rounded-lg text-sm" data-action="send" data-i18n="chat.send">{{t "chat.send"}}</button>
    </div>
  </div>
  {{end}}

  <script src="/assets/app.js"></script>
</body>
</html>`

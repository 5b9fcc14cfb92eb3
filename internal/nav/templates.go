package nav

import "html/template"

var menuTemplates = template.Must(template.New("menus").Parse(menuTemplateText))

const menuTemplateText = `
{{- define "links" -}}
{{- if . -}}
<ul class="nav-list">
{{- range . }}
<li><a href="{{.URL}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a>{{template "links" .Children}}</li>
{{- end }}
</ul>
{{- end -}}
{{- end -}}

{{- define "sections" -}}
{{- range . }}
<div class="nav-section">
{{- if .Children }}
<h3 class="nav-heading{{if .HasActiveChild}} active{{end}}">{{.Title}}</h3>
{{template "links" .Children}}
{{- else }}
<a href="{{.URL}}" class="nav-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a>
{{- end }}
</div>
{{- end }}
{{- end -}}

{{- define "sidebar" -}}
<aside class="sidebar">
<a href="{{.HomeURL}}" class="brand"><span class="brand-mark">{{printf "%.1s" .Brand}}</span><span class="brand-name">{{.Brand}}</span></a>
<nav aria-label="Documentation">
{{- template "sections" .Sections }}
</nav>
{{- if .Footer }}
<div class="sidebar-footer">
{{- range .Footer }}
<a href="{{.URL}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Title}}</a>
{{- end }}
</div>
{{- end }}
</aside>
{{- end -}}

{{- define "drawer" -}}
<header class="drawer" data-state="{{if .Open}}open{{else}}closed{{end}}">
<div class="drawer-bar">
<a href="{{.HomeURL}}" class="brand"><span class="brand-mark">{{printf "%.1s" .Brand}}</span><span class="brand-name">{{.Brand}}</span></a>
<button type="button" class="drawer-toggle" aria-label="Toggle navigation" aria-controls="drawer-menu" aria-expanded="{{.Open}}">{{if .Open}}Close{{else}}Menu{{end}}</button>
</div>
<nav id="drawer-menu" class="drawer-menu" aria-label="Documentation"{{if not .Open}} hidden{{end}}>
{{- template "sections" .Sections }}
</nav>
</header>
{{- end -}}
`
